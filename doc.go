/*
Package csl compiles declarative bibliographic styles (CSL, the Citation
Style Language) into directly executable rendering programs.

A style is an XML document: layouts for citations and bibliography
entries, named macros, sort specifications, locale overrides and a pile
of options. Compile turns one style into an immutable Style value whose
layouts, sort keys and macros are closures over a rendering runtime;
a citation/bibliography formatter invokes them per entry with a fresh
rendering context.

The compiler owns parsing, locale merging, option defaulting and the
translation of style fragments into render closures. It does not render
anything itself: the primitives that produce text are supplied by the
client as a render.Runtime. Entry-data handling, disambiguation and
final output formatting live downstream as well.

Compilation is a single synchronous pass. A compiled Style is read-only
and safe to share between concurrent renders, as long as each render
call owns its render.Context.

Status

Working draft. The compiler implements the style surface our formatter
needs; API may still change without notice. Please be patient.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package csl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'csl.style'.
func tracer() tracing.Trace {
	return tracing.Select("csl.style")
}
