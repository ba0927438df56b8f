package csl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/csl/locale"
	"github.com/npillmayer/csl/render"
	"github.com/npillmayer/csl/xmltree"
)

// Compile compiles a bibliographic style into a Style. source is either
// inline XML or a path to a style file; requestedLocale selects which
// embedded locale block, if any, gets merged. The rendering primitives
// the compiled closures will call are supplied as rt.
//
// Compile either returns a completely assembled, defaulted Style, or an
// error; partial styles never escape.
func Compile(source, requestedLocale string, rt render.Runtime) (*Style, error) {
	usesYearSuffix, root, err := ingest(source)
	if err != nil {
		return nil, err
	}
	sty, err := assemble(root, usesYearSuffix, requestedLocale, rt)
	if err != nil {
		return nil, err
	}
	sty.applyDefaults()
	return sty, nil
}

// assemble walks the direct children of the parsed style in document
// order and routes each fragment to its updater. Only the locale
// routing is order-sensitive: the first locale block compatible with
// the requested locale wins, all later ones are ignored.
func assemble(root *xmltree.Node, usesYearSuffix bool, requestedLocale string, rt render.Runtime) (*Style, error) {
	sty := newStyle()
	sty.UsesYearSuffix = usesYearSuffix
	sty.Options.SetAll(root.Attrs)
	c := &compiler{rt: rt}

	localeLoaded := false
	for _, ch := range root.Elements() {
		switch ch.Tag {
		case "info":
			sty.Info = ch
			for _, cat := range ch.FindAll("category") {
				if cat.Attr("citation-format") == "note" {
					sty.CiteNote = true
				}
			}
		case "locale":
			lang := ch.Attr("xml:lang")
			if localeLoaded || !locale.Compatible(lang, requestedLocale) {
				tracer().Debugf("skipping locale block %q", lang)
				continue
			}
			mergeLocale(sty, ch)
			localeLoaded = true
		case "citation":
			frag, err := c.parseFragment(ch)
			if err != nil {
				return nil, err
			}
			sty.CiteOptions = frag.options
			sty.CiteLayout = frag.layout
			sty.CiteLayoutAttrs = frag.layoutAttrs
			sty.CiteSort = frag.sort
			sty.CiteSortOrders = frag.sortOrders
		case "bibliography":
			frag, err := c.parseFragment(ch)
			if err != nil {
				return nil, err
			}
			sty.BibOptions = frag.options
			sty.BibLayout = frag.layout
			sty.BibLayoutAttrs = frag.layoutAttrs
			sty.BibSort = frag.sort
			sty.BibSortOrders = frag.sortOrders
		case "macro":
			name := ch.Attr("name")
			if name == "" {
				return nil, fmt.Errorf("%w: macro without name", ErrStructure)
			}
			// macros have no renderable attributes of their own; the
			// body compiles with the macro's attributes discarded
			body := &xmltree.Node{Kind: xmltree.ElementNode, Tag: "macro", Children: ch.Children}
			fn, err := c.compile(body)
			if err != nil {
				return nil, err
			}
			sty.Macros[name] = fn
		default:
			return nil, fmt.Errorf("%w: unexpected <%s> in style body", ErrStructure, ch.Tag)
		}
	}
	if sty.CiteLayout == nil {
		return nil, fmt.Errorf("%w: style defines no citation layout", ErrStructure)
	}
	return sty, nil
}

// mergeLocale merges an in-style locale block into the style under
// assembly: style options, date formats and term definitions.
func mergeLocale(sty *Style, block *xmltree.Node) {
	for _, ch := range block.Elements() {
		switch ch.Tag {
		case "style-options":
			// appended after whatever already exists: entries already
			// present keep winning on lookup
			for k, v := range ch.Attrs {
				sty.LocaleOptions.Add(k, Option(v))
			}
		case "date":
			df := &DateFormat{Attrs: render.Attrs(ch.Attrs)}
			for _, part := range ch.FindAll("date-part") {
				df.Parts = append(df.Parts, DatePartFormat{
					Name:  part.Attr("name"),
					Attrs: render.Attrs(part.Attrs),
				})
			}
			// first writer wins for each of the two forms
			if ch.Attr("form") == "text" {
				if sty.DateText == nil {
					sty.DateText = df
				}
			} else if sty.DateNumeric == nil {
				sty.DateNumeric = df
			}
		case "terms":
			defs := locale.ParseTerms(ch.Elements())
			if sty.Terms == nil {
				sty.Terms = defs
			} else {
				sty.Terms = sty.Terms.Merge(defs)
			}
		}
	}
}
