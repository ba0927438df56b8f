package csl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// The error kinds a compilation can fail with. All of them abort the
// whole compile; a partially built Style never escapes. Callers match
// with errors.Is.
var (
	// ErrInput flags a style identifier that is neither inline XML nor
	// a readable file path.
	ErrInput = errors.New("csl: cannot read style input")

	// ErrParse flags malformed style XML.
	ErrParse = errors.New("csl: malformed style XML")

	// ErrStructure flags a structurally ill-formed style, e.g. a
	// citation element without a layout child, or an element outside
	// the style language.
	ErrStructure = errors.New("csl: ill-formed style structure")

	// ErrOptionValue flags a recognized option key holding a value
	// outside its accepted domain.
	ErrOptionValue = errors.New("csl: option value out of domain")
)
