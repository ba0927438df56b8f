package locale

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/csl/xmltree"
)

// Term is one localized term: a name, an optional form variant, and the
// word forms to render it with. Either Text is set, or Single/Multiple
// for terms with grammatical number.
type Term struct {
	Name     string
	Form     string // "long" (the default), "short", "verb", …
	Text     string
	Single   string
	Multiple string
}

// TermList maps term identifiers to their definitions. Lookup is by
// name and form.
type TermList map[string]Term

func termKey(name, form string) string {
	if form == "" || form == "long" {
		return name
	}
	return name + "/" + form
}

// Lookup finds the definition for a term name and form. The empty form
// means the default ("long") form.
func (tl TermList) Lookup(name, form string) (Term, bool) {
	t, ok := tl[termKey(name, form)]
	return t, ok
}

// ParseTerms reads term definitions from the element children of a
// terms block. Definitions for the same name and form later in the
// sequence override earlier ones.
func ParseTerms(defs []*xmltree.Node) TermList {
	tl := make(TermList, len(defs))
	for _, def := range defs {
		if def.Kind != xmltree.ElementNode || def.Tag != "term" {
			continue
		}
		term := Term{
			Name: def.Attr("name"),
			Form: def.Attr("form"),
		}
		for _, ch := range def.Children {
			switch {
			case ch.Kind == xmltree.TextNode:
				term.Text += ch.Text
			case ch.Tag == "single":
				term.Single = textContent(ch)
			case ch.Tag == "multiple":
				term.Multiple = textContent(ch)
			}
		}
		tl[termKey(term.Name, term.Form)] = term
	}
	return tl
}

// Merge folds newer term definitions into tl, overriding definitions
// for the same name and form. tl is modified and returned; list
// identity is preserved.
func (tl TermList) Merge(newer TermList) TermList {
	if tl == nil {
		return newer
	}
	for k, t := range newer {
		tl[k] = t
	}
	return tl
}

func textContent(n *xmltree.Node) string {
	var sb strings.Builder
	for _, ch := range n.Children {
		if ch.Kind == xmltree.TextNode {
			sb.WriteString(ch.Text)
		}
	}
	return sb.String()
}
