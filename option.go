package csl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Option is a raw value for a style option. For example, with
//
//     collapse="year-suffix"
//
// an option value of "year-suffix" is set. Wrapping the raw string into
// type Option gives us a home for conversion helpers.
type Option string

// NullOption is an empty option value.
const NullOption Option = ""

func (o Option) String() string {
	return string(o)
}

// IsEmpty checks wether an option is empty, i.e. the null-string.
func (o Option) IsEmpty() bool {
	return o == ""
}

// KeyValue is a container for a single style option.
type KeyValue struct {
	Key   string
	Value Option
}

// OptionSet is an override-ordered option mapping: when the same key is
// set more than once, the most recently set value is the one observed
// on lookup. Styles carry four of these, one per option scope (style,
// citation, bibliography, locale).
type OptionSet struct {
	optsDict map[string]Option
}

// NewOptionSet creates a new empty option set.
func NewOptionSet() *OptionSet {
	return &OptionSet{}
}

// Len returns the number of options set.
func (os *OptionSet) Len() int {
	if os == nil {
		return 0
	}
	return len(os.optsDict)
}

// IsSet is a predicate wether an option is set within this set.
func (os *OptionSet) IsSet(key string) bool {
	if os == nil || os.optsDict == nil {
		return false
	}
	v, ok := os.optsDict[key]
	return ok && !v.IsEmpty()
}

// Get an option's value.
func (os *OptionSet) Get(key string) (Option, bool) {
	if os == nil || os.optsDict == nil {
		return NullOption, false
	}
	o, ok := os.optsDict[key]
	return o, ok
}

// Set an option's value. Overwrites an existing value, if present.
func (os *OptionSet) Set(key string, o Option) {
	if os.optsDict == nil {
		os.optsDict = make(map[string]Option)
	}
	os.optsDict[key] = o
}

// Add an option's value. Does not overwrite an existing value, i.e.,
// does nothing if a value is already set. This is what option
// defaulting and locale merging rely on: explicit settings win.
func (os *OptionSet) Add(key string, o Option) {
	if os.optsDict == nil {
		os.optsDict = make(map[string]Option)
	}
	if _, exists := os.optsDict[key]; !exists {
		os.optsDict[key] = o
	}
}

// SetAll copies every entry of an attribute mapping into the set,
// overwriting existing values.
func (os *OptionSet) SetAll(attrs map[string]string) {
	for k, v := range attrs {
		os.Set(k, Option(v))
	}
}

// Options returns all options of the set as key-value pairs.
func (os *OptionSet) Options() []KeyValue {
	if os == nil {
		return nil
	}
	r := make([]KeyValue, 0, len(os.optsDict))
	for k, v := range os.optsDict {
		r = append(r, KeyValue{k, v})
	}
	return r
}
