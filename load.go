package csl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/npillmayer/csl/xmltree"
)

// yearSuffixPattern is searched for in the raw style text, before any
// structural parsing. Styles referencing the year-suffix variable make
// the formatter run suffix disambiguation.
const yearSuffixPattern = `variable="year-suffix"`

// containsYearSuffix scans raw style text, case-insensitively, for a
// year-suffix variable reference.
func containsYearSuffix(text string) bool {
	return strings.Contains(strings.ToLower(text), yearSuffixPattern)
}

// loadSource obtains a style's raw text. source is either inline XML
// (recognized by a '<' after optional leading whitespace) or a file
// path.
func loadSource(source string) (string, error) {
	if strings.HasPrefix(strings.TrimLeftFunc(source, unicode.IsSpace), "<") {
		return source, nil
	}
	raw, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInput, err)
	}
	return string(raw), nil
}

// ingest performs the complete style ingestion: read the raw text, scan
// it for the year-suffix variable reference, parse it into a node tree
// and strip comments from the tree.
func ingest(source string) (usesYearSuffix bool, root *xmltree.Node, err error) {
	text, err := loadSource(source)
	if err != nil {
		return false, nil, err
	}
	usesYearSuffix = containsYearSuffix(text)
	root, xerr := xmltree.Parse(text)
	if xerr != nil {
		return false, nil, fmt.Errorf("%w: %v", ErrParse, xerr)
	}
	tracer().Debugf("ingested style <%s>, year-suffix=%v", root.Tag, usesYearSuffix)
	return usesYearSuffix, root.StripComments(), nil
}
