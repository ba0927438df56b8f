package csl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/csl/locale"
	"github.com/npillmayer/csl/render"
	"github.com/npillmayer/csl/xmltree"
)

// Style is a compiled bibliographic style, the unit the rendering
// runtime consumes. It is constructed field by field in a single pass
// over the parsed style document, finalized by option defaulting, and
// immutable afterwards. Sharing a Style between concurrent renders is
// safe; render contexts are not shared.
type Style struct {
	// Info is the style's info fragment, passed through uninterpreted.
	Info *xmltree.Node

	// Option scopes. After compilation each contains every key of the
	// default table for its scope, explicit settings taking precedence.
	Options       *OptionSet // style-global options
	CiteOptions   *OptionSet
	BibOptions    *OptionSet
	LocaleOptions *OptionSet

	// Compiled layouts with the layout elements' own attributes. The
	// citation layout's delimiter attribute feeds collapse defaulting.
	CiteLayout      render.Fn
	CiteLayoutAttrs render.Attrs
	BibLayout       render.Fn
	BibLayoutAttrs  render.Attrs

	// Compiled sort-key functions, nil when the style defines no sort.
	// The order slices carry one flag per sort key, true = ascending.
	CiteSort       render.Fn
	CiteSortOrders []bool
	BibSort        render.Fn
	BibSortOrders  []bool

	// CiteNote is true iff the style's declared citation format is
	// "note".
	CiteNote bool

	// UsesYearSuffix is set by a raw-text scan of the style source,
	// independent of the structural parse.
	UsesYearSuffix bool

	// First-seen date formats for the textual and the numeric form.
	DateText    *DateFormat
	DateNumeric *DateFormat

	// Macros maps macro names to their compiled bodies.
	Macros map[string]render.Fn

	// Terms is the style's effective term list: locale terms merged
	// with in-style overrides.
	Terms locale.TermList
}

// DateFormat is a date element's attribute mapping together with the
// ordered formats of its date parts.
type DateFormat struct {
	Attrs render.Attrs
	Parts []DatePartFormat
}

// DatePartFormat is the format of one named date part (year, month,
// day).
type DatePartFormat struct {
	Name  string
	Attrs render.Attrs
}

// newStyle creates an empty style with all four option scopes
// initialized.
func newStyle() *Style {
	return &Style{
		Options:       NewOptionSet(),
		CiteOptions:   NewOptionSet(),
		BibOptions:    NewOptionSet(),
		LocaleOptions: NewOptionSet(),
		Macros:        make(map[string]render.Fn),
	}
}

// Option returns a style-global option value, or "" if unset.
func (sty *Style) Option(key string) Option {
	o, _ := sty.Options.Get(key)
	return o
}

// CiteOption returns a citation-scope option value, or "" if unset.
func (sty *Style) CiteOption(key string) Option {
	o, _ := sty.CiteOptions.Get(key)
	return o
}

// BibOption returns a bibliography-scope option value, or "" if unset.
func (sty *Style) BibOption(key string) Option {
	o, _ := sty.BibOptions.Get(key)
	return o
}

// LocaleOption returns a locale-scope option value, or "" if unset.
func (sty *Style) LocaleOption(key string) Option {
	o, _ := sty.LocaleOptions.Get(key)
	return o
}
