/*
Package xmltree holds a generic parsed-XML node tree.

The style compiler operates on plain nodes of tag + attributes + ordered
children; it neither knows nor cares about namespaces, entities or any
other XML subtlety. Package xmltree is the thin boundary that turns raw
XML text into that shape.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csl.xml'.
func tracer() tracing.Trace {
	return tracing.Select("csl.xml")
}

// NodeKind discriminates node variants.
type NodeKind uint8

// Kinds of nodes.
const (
	ElementNode NodeKind = iota
	TextNode
	CommentNode
)

// Node is a generic parsed-XML node: an element with a tag name, an
// attribute mapping and ordered children, or a text/comment leaf with
// its character data. Nodes are not modified after parsing, except for
// comment stripping.
type Node struct {
	Kind     NodeKind
	Tag      string            // element name; empty for leaves
	Attrs    map[string]string // nil when an element has no attributes
	Text     string            // character data for text/comment leaves
	Children []*Node
}

// Attr returns the value of an attribute, or "" if unset.
func (n *Node) Attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// HasAttr tells if an attribute is present, distinguishing an unset
// attribute from one set to the empty string.
func (n *Node) HasAttr(key string) bool {
	if n == nil || n.Attrs == nil {
		return false
	}
	_, ok := n.Attrs[key]
	return ok
}

// Elements returns the element children of n, skipping text leaves.
func (n *Node) Elements() []*Node {
	if n == nil {
		return nil
	}
	var els []*Node
	for _, ch := range n.Children {
		if ch.Kind == ElementNode {
			els = append(els, ch)
		}
	}
	return els
}

// FindAll returns all element children with a given tag, in document
// order.
func (n *Node) FindAll(tag string) []*Node {
	var els []*Node
	for _, ch := range n.Elements() {
		if ch.Tag == tag {
			els = append(els, ch)
		}
	}
	return els
}

// StripComments removes comment nodes from the tree rooted at n,
// recursively, and returns n. Comments must not reach the style
// compiler.
func (n *Node) StripComments() *Node {
	if n == nil {
		return nil
	}
	kept := n.Children[:0]
	for _, ch := range n.Children {
		if ch.Kind == CommentNode {
			continue
		}
		kept = append(kept, ch.StripComments())
	}
	n.Children = kept
	return n
}
