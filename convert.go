package csl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
)

// Align is the two-valued second-field alignment, plus the explicit
// disabled state.
type Align uint8

// Alignment values for second-field-align.
const (
	AlignNone Align = iota // alignment disabled
	AlignFlush
	AlignMargin
)

func (a Align) String() string {
	switch a {
	case AlignFlush:
		return "flush"
	case AlignMargin:
		return "margin"
	}
	return "none"
}

// BibFormat holds the typed bibliography formatting parameters derived
// from the resolved bibliography options. SecondFieldAlign is always
// carried, AlignNone meaning explicitly disabled.
type BibFormat struct {
	HangingIndent    bool
	LineSpacing      float64
	EntrySpacing     float64
	SecondFieldAlign Align
}

// FormatParams converts the resolved bibliography options of a style
// into typed formatting parameters. Only hanging-indent, line-spacing,
// entry-spacing and second-field-align participate; values outside
// their accepted domain abort with ErrOptionValue.
func FormatParams(bibOptions *OptionSet) (BibFormat, error) {
	format := BibFormat{LineSpacing: 1, EntrySpacing: 1}
	if o, ok := bibOptions.Get("hanging-indent"); ok {
		b, err := boolOption("hanging-indent", o)
		if err != nil {
			return BibFormat{}, err
		}
		format.HangingIndent = b
	}
	if o, ok := bibOptions.Get("line-spacing"); ok {
		n, err := numOption("line-spacing", o)
		if err != nil {
			return BibFormat{}, err
		}
		format.LineSpacing = n
	}
	if o, ok := bibOptions.Get("entry-spacing"); ok {
		n, err := numOption("entry-spacing", o)
		if err != nil {
			return BibFormat{}, err
		}
		format.EntrySpacing = n
	}
	switch o, _ := bibOptions.Get("second-field-align"); o {
	case "", "false":
		format.SecondFieldAlign = AlignNone
	case "flush":
		format.SecondFieldAlign = AlignFlush
	case "margin":
		format.SecondFieldAlign = AlignMargin
	default:
		return BibFormat{}, fmt.Errorf("%w: second-field-align=%q", ErrOptionValue, o)
	}
	return format, nil
}

func boolOption(key string, o Option) (bool, error) {
	switch o {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s=%q", ErrOptionValue, key, o)
}

func numOption(key string, o Option) (float64, error) {
	n, err := strconv.ParseFloat(string(o), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrOptionValue, key, o)
	}
	return n, nil
}
