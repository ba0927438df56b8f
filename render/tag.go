package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Tag enumerates the closed set of style-language elements the compiler
// understands. Anything outside this set is rejected at compile time;
// there is no reflective name-based dispatch.
type Tag uint8

// The known style-language element tags.
const (
	TagInvalid Tag = iota
	TagLayout
	TagSort
	TagKey
	TagMacro
	TagText
	TagDate
	TagDatePart
	TagNumber
	TagNames
	TagName
	TagEtAl
	TagSubstitute
	TagLabel
	TagGroup
	TagChoose
	TagIf
	TagElseIf
	TagElse
)

var tagNames = map[string]Tag{
	"layout":     TagLayout,
	"sort":       TagSort,
	"key":        TagKey,
	"macro":      TagMacro,
	"text":       TagText,
	"date":       TagDate,
	"date-part":  TagDatePart,
	"number":     TagNumber,
	"names":      TagNames,
	"name":       TagName,
	"et-al":      TagEtAl,
	"substitute": TagSubstitute,
	"label":      TagLabel,
	"group":      TagGroup,
	"choose":     TagChoose,
	"if":         TagIf,
	"else-if":    TagElseIf,
	"else":       TagElse,
}

// ParseTag maps an element name to its Tag. ok is false for element
// names outside the closed tag set.
func ParseTag(name string) (tag Tag, ok bool) {
	tag, ok = tagNames[name]
	return
}

func (tag Tag) String() string {
	for name, t := range tagNames {
		if t == tag {
			return name
		}
	}
	return "<invalid tag>"
}
