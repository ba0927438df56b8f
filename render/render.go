package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Attrs is an element's attribute mapping. Attribute sets are captured at
// compile time and must be treated as read-only by runtime primitives.
type Attrs map[string]string

// Get returns the value for an attribute key, or "" if unset.
// Attrs may be nil.
func (a Attrs) Get(key string) string {
	if a == nil {
		return ""
	}
	return a[key]
}

// Kind discriminates rendered values.
type Kind uint8

// Kinds of rendered values.
const (
	KindText      Kind = iota // ordinary textual content
	KindEmptyVars             // all referenced variables were empty
)

// Value is the result of invoking a compiled rendering function.
type Value struct {
	Kind        Kind
	Text        string
	NameCount   int  // names rendered, set by the name-variable primitive
	Substituted bool // a names substitution supplied this value
}

// IsEmpty is true for values that carry no content.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmptyVars || v.Text == ""
}

// EmptyVars is the canonical "no variables matched" result.
func EmptyVars() Value {
	return Value{Kind: KindEmptyVars}
}

// Fn is a compiled rendering function. The context is supplied fresh at
// every render invocation; compiled functions never retain it.
type Fn func(ctx *Context) Value

// Constant returns an Fn rendering a fixed string, used for text leaves
// of the style document.
func Constant(s string) Fn {
	return func(*Context) Value {
		return Value{Kind: KindText, Text: s}
	}
}

// Context is the per-render-call state threaded through compiled
// rendering functions. A Context must not be shared mutably between
// concurrent renders; the compiled style itself is immutable.
type Context struct {
	Item           map[string]string   // entry variable → value
	NameLists      map[string][]string // name variable → list of names
	Macros         map[string]Fn       // the style's compiled macros
	SuppressAuthor bool                // author-suppressed citation form
}

// NamesArgs collects the attribute sets gathered from a names element,
// passed wholesale to the name-variable primitive.
type NamesArgs struct {
	Names      Attrs      // the names element's own attributes
	Name       Attrs      // name sub-element attributes
	NameParts  []NamePart // ordered name-part attribute sets
	EtAl       Attrs      // et-al sub-element attributes
	Label      Attrs      // label sub-element attributes
	LabelFirst bool       // label renders before the name forms
}

// NamePart is a named part of a personal name (family, given, …) with
// its formatting attributes.
type NamePart struct {
	Part  string
	Attrs Attrs
}

// Runtime is the rendering-runtime collaborator. The compiler emits
// calls to these primitives; it never implements them. Each primitive
// receives the element's compile-time attributes, the per-render
// context, and the element's compiled children.
//
// NameVars and CountNames serve the names-element compiler exclusively.
type Runtime interface {
	Layout(attrs Attrs, ctx *Context, children []Fn) Value
	Sort(attrs Attrs, ctx *Context, children []Fn) Value
	Key(attrs Attrs, ctx *Context, children []Fn) Value
	Macro(attrs Attrs, ctx *Context, children []Fn) Value
	Text(attrs Attrs, ctx *Context, children []Fn) Value
	Date(attrs Attrs, ctx *Context, children []Fn) Value
	DatePart(attrs Attrs, ctx *Context, children []Fn) Value
	Number(attrs Attrs, ctx *Context, children []Fn) Value
	Label(attrs Attrs, ctx *Context, children []Fn) Value
	Group(attrs Attrs, ctx *Context, children []Fn) Value
	Choose(attrs Attrs, ctx *Context, children []Fn) Value
	If(attrs Attrs, ctx *Context, children []Fn) Value
	ElseIf(attrs Attrs, ctx *Context, children []Fn) Value
	Else(attrs Attrs, ctx *Context, children []Fn) Value

	// NameVars renders the listed name variables with the gathered
	// attribute sets. The returned value's NameCount reflects the
	// number of names rendered.
	NameVars(vars []string, args NamesArgs, ctx *Context) Value
	// CountNames reports how many names a NameVars result rendered.
	CountNames(v Value, ctx *Context) int
}
