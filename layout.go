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

// fragment is the decomposition of a citation or bibliography element:
// its scope options, the compiled layout with the layout element's own
// attributes, and an optional sort specification with per-key
// ascending/descending flags.
type fragment struct {
	options     *OptionSet
	layout      render.Fn
	layoutAttrs render.Attrs
	sort        render.Fn // nil without a sort specification
	sortOrders  []bool    // one flag per sort key, true = ascending
}

// parseFragment decomposes a citation or bibliography element. The
// element's children are fixed-position: an optional sort element
// first, then exactly one layout element.
func (c *compiler) parseFragment(node *xmltree.Node) (fragment, error) {
	frag := fragment{options: NewOptionSet()}
	frag.options.SetAll(node.Attrs)

	els := node.Elements()
	var sortNode, layoutNode *xmltree.Node
	switch {
	case len(els) == 0:
		return frag, fmt.Errorf("%w: <%s> without layout child", ErrStructure, node.Tag)
	case els[0].Tag == "sort":
		sortNode = els[0]
		if len(els) < 2 {
			return frag, fmt.Errorf("%w: <%s> without layout child", ErrStructure, node.Tag)
		}
		layoutNode = els[1]
	default:
		layoutNode = els[0]
	}
	if layoutNode.Tag != "layout" {
		return frag, fmt.Errorf("%w: <%s> has <%s> where layout was expected",
			ErrStructure, node.Tag, layoutNode.Tag)
	}

	layout, err := c.compile(layoutNode)
	if err != nil {
		return frag, err
	}
	frag.layout = layout
	frag.layoutAttrs = render.Attrs(layoutNode.Attrs)

	if sortNode != nil {
		// a sort specification is itself a sequence of key expressions
		sort, err := c.compile(sortNode)
		if err != nil {
			return frag, err
		}
		frag.sort = sort
		keys := sortNode.Elements()
		frag.sortOrders = make([]bool, len(keys))
		for i, key := range keys {
			frag.sortOrders[i] = key.Attr("sort") != "descending"
		}
	}
	return frag, nil
}
