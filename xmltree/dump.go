package xmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Dump returns a textual tree diagram of the node tree rooted at n,
// intended for tracing and test output.
func Dump(n *Node) string {
	printer := tp.New()
	dumpNode(printer, n)
	return printer.String()
}

func dumpNode(printer tp.Tree, n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case TextNode:
		printer.AddNode(fmt.Sprintf("%q", n.Text))
	case CommentNode:
		printer.AddNode(fmt.Sprintf("<!-- %s -->", strings.TrimSpace(n.Text)))
	case ElementNode:
		label := "<" + n.Tag + ">"
		if len(n.Attrs) > 0 {
			label = fmt.Sprintf("<%s> %v", n.Tag, n.Attrs)
		}
		branch := printer.AddBranch(label)
		for _, ch := range n.Children {
			dumpNode(branch, ch)
		}
	}
}
