package csl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/csl/render"
	"github.com/npillmayer/csl/xmltree"
)

// compileNames translates a names element. Unlike the generic
// translation, names carries suppression, substitution-fallback and
// name-counting semantics:
//
// Under an author-suppressed render the result is empty. Otherwise the
// listed name variables render through the runtime's NameVars
// primitive; if that comes up empty, the declared substitutions are
// tried lazily, in declaration order, and the first non-empty one wins,
// marked as substituted. If the name form is "count", the textual
// result is discarded for the decimal count of rendered names, with
// zero rendered as the empty string.
func (c *compiler) compileNames(node *xmltree.Node) (render.Fn, error) {
	vars := strings.Fields(node.Attr("variable"))
	args := render.NamesArgs{Names: render.Attrs(node.Attrs)}
	var substitutes []render.Fn
	sawName, sawLabel := false, false
	for _, ch := range node.Elements() {
		switch ch.Tag {
		case "name":
			sawName = true
			args.Name = render.Attrs(ch.Attrs)
			for _, part := range ch.FindAll("name-part") {
				args.NameParts = append(args.NameParts, render.NamePart{
					Part:  part.Attr("name"),
					Attrs: render.Attrs(part.Attrs),
				})
			}
		case "et-al":
			args.EtAl = render.Attrs(ch.Attrs)
		case "label":
			sawLabel = true
			args.Label = render.Attrs(ch.Attrs)
		case "substitute":
			for _, alt := range ch.Elements() {
				fn, err := c.compile(alt)
				if err != nil {
					return nil, err
				}
				substitutes = append(substitutes, fn)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected <%s> inside a names element", ErrStructure, ch.Tag)
		}
	}
	// A label written as an explicit child follows the name form, so it
	// renders after the names. Without an explicit label the language's
	// implicit ordering puts the label first. A names element with
	// neither label nor name form is ill-formed.
	switch {
	case sawLabel:
		args.LabelFirst = false
	case sawName:
		args.LabelFirst = true
	default:
		return nil, fmt.Errorf("%w: names element without name or label child", ErrStructure)
	}
	countForm := args.Name.Get("form") == "count"

	return func(ctx *render.Context) render.Value {
		if ctx.SuppressAuthor {
			return render.EmptyVars()
		}
		v := c.rt.NameVars(vars, args, ctx)
		if v.IsEmpty() {
			v = render.EmptyVars()
			for _, sub := range substitutes {
				if sv := sub(ctx); !sv.IsEmpty() {
					sv.Substituted = true
					v = sv
					break
				}
			}
		}
		if countForm {
			n := c.rt.CountNames(v, ctx)
			if n == 0 {
				return render.Value{Kind: render.KindText}
			}
			return render.Value{Kind: render.KindText, Text: strconv.Itoa(n), NameCount: n, Substituted: v.Substituted}
		}
		return v
	}, nil
}
