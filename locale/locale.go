/*
Package locale provides locale matching and localized term lists for
bibliographic styles.

A style may embed locale blocks for several languages; the compiler asks
this package which of them fits the locale a client requested. Term
definitions (localized words like "and", "edition", "page") live in term
lists, merged from the active locale and in-style overrides.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package locale

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'csl.locale'.
func tracer() tracing.Trace {
	return tracing.Select("csl.locale")
}

// Compatible tells if a locale block declared for candidate may serve a
// request for the requested locale. A candidate without a language
// declaration serves any request. Otherwise the base languages have to
// agree, and a region-qualified candidate additionally has to agree on
// the region ("en-GB" will not serve "en-US", but "en" serves both).
func Compatible(candidate, requested string) bool {
	if candidate == "" {
		return true
	}
	if strings.EqualFold(candidate, requested) {
		return true
	}
	ctag, cerr := language.Parse(candidate)
	rtag, rerr := language.Parse(requested)
	if cerr != nil || rerr != nil {
		tracer().Infof("unparsable locale tag, candidate=%q requested=%q", candidate, requested)
		return false
	}
	cbase, _ := ctag.Base()
	rbase, _ := rtag.Base()
	if cbase != rbase {
		return false
	}
	if creg, conf := ctag.Region(); conf == language.Exact {
		rreg, _ := rtag.Region()
		return creg == rreg
	}
	return true
}
