package xmltree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseSimpleDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csl.xml")
	defer teardown()
	//
	root, err := Parse(`<style class="in-text"><info xml:lang="en-US"/><citation/></style>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if root.Tag != "style" {
		t.Errorf("expected root tag 'style', is %q", root.Tag)
	}
	if root.Attr("class") != "in-text" {
		t.Errorf("expected class attribute, attrs are %v", root.Attrs)
	}
	els := root.Elements()
	if len(els) != 2 || els[0].Tag != "info" || els[1].Tag != "citation" {
		t.Fatalf("expected children [info citation], are %v", els)
	}
	if els[0].Attr("xml:lang") != "en-US" {
		t.Errorf("expected xml:lang to keep its prefix, attrs are %v", els[0].Attrs)
	}
}

func TestParseKeepsTextLeaves(t *testing.T) {
	root, err := Parse(`<terms><term name="and">und</term></terms>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	term := root.Elements()[0]
	if len(term.Children) != 1 || term.Children[0].Kind != TextNode {
		t.Fatalf("expected one text leaf, children are %v", term.Children)
	}
	if term.Children[0].Text != "und" {
		t.Errorf("expected text 'und', is %q", term.Children[0].Text)
	}
}

func TestParseDropsIndentation(t *testing.T) {
	root, err := Parse("<style>\n  <citation>\n    <layout/>\n  </citation>\n</style>")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, ch := range root.Children {
		if ch.Kind == TextNode {
			t.Errorf("whitespace-only leaf survived parsing: %q", ch.Text)
		}
	}
}

func TestParseEmptyDocument(t *testing.T) {
	for _, src := range []string{"", "   \n  "} {
		_, err := Parse(src)
		if !errors.Is(err, ErrEmptyDocument) {
			t.Errorf("expected ErrEmptyDocument for %q, got %v", src, err)
		}
	}
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse("<style><citation></style>")
	if err == nil {
		t.Error("expected parse error for mismatched tags, got none")
	}
	if errors.Is(err, ErrEmptyDocument) {
		t.Error("malformed input must fail distinctly from empty input")
	}
}

func TestStripComments(t *testing.T) {
	root, err := Parse(`<style><!-- a --><citation><!-- b --><layout/></citation></style>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	root.StripComments()
	var count func(n *Node) int
	count = func(n *Node) int {
		c := 0
		for _, ch := range n.Children {
			if ch.Kind == CommentNode {
				c++
			}
			c += count(ch)
		}
		return c
	}
	if n := count(root); n != 0 {
		t.Errorf("expected all comments stripped, %d left", n)
	}
	if len(root.Elements()) != 1 {
		t.Errorf("expected element children to survive stripping, are %v", root.Elements())
	}
}

func TestDump(t *testing.T) {
	root, err := Parse(`<style><citation><layout delimiter="; "/></citation></style>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	out := Dump(root)
	t.Logf("tree:\n%s", out)
	for _, tag := range []string{"<style>", "<citation>", "<layout>"} {
		if !strings.Contains(out, tag) {
			t.Errorf("expected dump to contain %s", tag)
		}
	}
}
