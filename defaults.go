package csl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// optionScope selects one of the four option scopes of a style.
type optionScope uint8

const (
	scopeStyle optionScope = iota
	scopeCite
	scopeBib
	scopeLocale
)

// optionDefault is one entry of the static default table: scope, option
// key, and the value the option takes when a style leaves it unset.
type optionDefault struct {
	scope optionScope
	key   string
	value Option
}

// defaultOptions lists defaults for the independent options across all
// four scopes, per the style-language specification. Options whose
// defaults depend on other options (the collapse-driven delimiters) are
// resolved by a separate pass.
var defaultOptions = []optionDefault{
	{scopeStyle, "initialize-with-hyphen", "true"},
	{scopeStyle, "demote-non-dropping-particle", "display-and-sort"},
	{scopeCite, "disambiguate-add-names", "false"},
	{scopeCite, "disambiguate-add-givenname", "false"},
	{scopeCite, "disambiguate-add-year-suffix", "false"},
	{scopeCite, "givenname-disambiguation-rule", "by-cite"},
	{scopeCite, "near-note-distance", "5"},
	{scopeBib, "hanging-indent", "false"},
	{scopeBib, "line-spacing", "1"},
	{scopeBib, "entry-spacing", "1"},
	{scopeLocale, "limit-day-ordinals-to-day-1", "false"},
	{scopeLocale, "punctuation-in-quote", "false"},
}

func (sty *Style) scopeSet(s optionScope) *OptionSet {
	switch s {
	case scopeCite:
		return sty.CiteOptions
	case scopeBib:
		return sty.BibOptions
	case scopeLocale:
		return sty.LocaleOptions
	}
	return sty.Options
}

// applyDefaults finalizes a style's option scopes. It runs after all
// structural parsing so that explicit style settings always win, and is
// idempotent: a second run finds every key present and changes nothing.
func (sty *Style) applyDefaults() {
	for _, d := range defaultOptions {
		sty.scopeSet(d.scope).Add(d.key, d.value)
	}
	sty.resolveCollapse()
}

// resolveCollapse fills the options whose defaults depend on the
// resolved collapse mode and on the citation layout's delimiter
// attribute. It has to run after the independent defaults and after the
// citation layout attributes are known.
func (sty *Style) resolveCollapse() {
	collapse, ok := sty.CiteOptions.Get("collapse")
	if !ok || collapse.IsEmpty() || collapse == "citation-number" {
		return
	}
	layoutDelim := Option(sty.CiteLayoutAttrs.Get("delimiter"))
	sty.CiteOptions.Add("cite-group-delimiter", ", ")
	sty.CiteOptions.Add("after-collapse-delimiter", layoutDelim)
	if collapse == "year-suffix" || collapse == "year-suffix-ranged" {
		sty.CiteOptions.Add("year-suffix-delimiter", layoutDelim)
	}
}
