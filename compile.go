package csl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/csl/render"
	"github.com/npillmayer/csl/xmltree"
)

// compiler translates style-language fragments into rendering closures
// over a fixed rendering runtime.
type compiler struct {
	rt render.Runtime
}

// compile is the generic structural translation of a style node into a
// rendering function. A text leaf compiles to a constant. An element
// compiles to a render-time call of the runtime primitive for its tag,
// closing over the element's attributes and compiled children; the
// rendering context is never captured, it is supplied fresh at each
// render invocation. The names element has semantics of its own and is
// intercepted before generic translation.
func (c *compiler) compile(node *xmltree.Node) (render.Fn, error) {
	if node.Kind == xmltree.TextNode {
		return render.Constant(node.Text), nil
	}
	tag, ok := render.ParseTag(node.Tag)
	if !ok {
		return nil, fmt.Errorf("%w: unknown style element <%s>", ErrStructure, node.Tag)
	}
	if tag == render.TagNames {
		return c.compileNames(node)
	}
	prim, err := c.primitive(tag)
	if err != nil {
		return nil, err
	}
	children := make([]render.Fn, 0, len(node.Children))
	for _, ch := range node.Children {
		fn, err := c.compile(ch)
		if err != nil {
			return nil, err
		}
		children = append(children, fn)
	}
	attrs := render.Attrs(node.Attrs)
	return func(ctx *render.Context) render.Value {
		return prim(attrs, ctx, children)
	}, nil
}

// primitive selects the runtime primitive for a tag. The match is
// exhaustive over the closed tag set; names never reaches it.
func (c *compiler) primitive(tag render.Tag) (func(render.Attrs, *render.Context, []render.Fn) render.Value, error) {
	switch tag {
	case render.TagLayout:
		return c.rt.Layout, nil
	case render.TagSort:
		return c.rt.Sort, nil
	case render.TagKey:
		return c.rt.Key, nil
	case render.TagMacro:
		return c.rt.Macro, nil
	case render.TagText:
		return c.rt.Text, nil
	case render.TagDate:
		return c.rt.Date, nil
	case render.TagDatePart:
		return c.rt.DatePart, nil
	case render.TagNumber:
		return c.rt.Number, nil
	case render.TagLabel:
		return c.rt.Label, nil
	case render.TagGroup:
		return c.rt.Group, nil
	case render.TagChoose:
		return c.rt.Choose, nil
	case render.TagIf:
		return c.rt.If, nil
	case render.TagElseIf:
		return c.rt.ElseIf, nil
	case render.TagElse:
		return c.rt.Else, nil
	case render.TagName, render.TagEtAl, render.TagSubstitute:
		// consumed by the names compiler, not renderable on their own
		return nil, fmt.Errorf("%w: <%s> outside a names element", ErrStructure, tag)
	}
	return nil, fmt.Errorf("%w: no primitive for element <%s>", ErrStructure, tag)
}
