package csl

import (
	"strings"

	"github.com/npillmayer/csl/render"
)

// testRuntime is a minimal rendering runtime for compiler tests. It
// concatenates children, resolves variables from the context's item
// data and macros from the context's macro table. Calls to NameVars are
// counted per variable so tests can observe lazy substitution.
type testRuntime struct {
	nameVarCalls map[string]int
	lastArgs     render.NamesArgs
}

func newTestRuntime() *testRuntime {
	return &testRuntime{nameVarCalls: make(map[string]int)}
}

func text(s string) render.Value {
	return render.Value{Kind: render.KindText, Text: s}
}

func joined(ctx *render.Context, children []render.Fn, delim string) render.Value {
	var parts []string
	for _, ch := range children {
		if v := ch(ctx); !v.IsEmpty() {
			parts = append(parts, v.Text)
		}
	}
	return text(strings.Join(parts, delim))
}

func (rt *testRuntime) Layout(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return joined(ctx, children, attrs.Get("delimiter"))
}

func (rt *testRuntime) Sort(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return joined(ctx, children, "|")
}

func (rt *testRuntime) Key(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	if v := attrs.Get("variable"); v != "" {
		return text(ctx.Item[v])
	}
	return joined(ctx, children, "")
}

func (rt *testRuntime) Macro(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return joined(ctx, children, "")
}

func (rt *testRuntime) Text(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	if m := attrs.Get("macro"); m != "" {
		if fn, ok := ctx.Macros[m]; ok {
			return fn(ctx)
		}
		return render.EmptyVars()
	}
	if v := attrs.Get("variable"); v != "" {
		if val, ok := ctx.Item[v]; ok && val != "" {
			return text(val)
		}
		return render.EmptyVars()
	}
	if val := attrs.Get("value"); val != "" {
		return text(val)
	}
	return joined(ctx, children, "")
}

func (rt *testRuntime) Date(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return text(ctx.Item[attrs.Get("variable")])
}

func (rt *testRuntime) DatePart(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return text("")
}

func (rt *testRuntime) Number(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return text(ctx.Item[attrs.Get("variable")])
}

func (rt *testRuntime) Label(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return text(attrs.Get("variable"))
}

func (rt *testRuntime) Group(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return joined(ctx, children, attrs.Get("delimiter"))
}

func (rt *testRuntime) Choose(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return joined(ctx, children, "")
}

func (rt *testRuntime) If(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return joined(ctx, children, "")
}

func (rt *testRuntime) ElseIf(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return joined(ctx, children, "")
}

func (rt *testRuntime) Else(attrs render.Attrs, ctx *render.Context, children []render.Fn) render.Value {
	return joined(ctx, children, "")
}

func (rt *testRuntime) NameVars(vars []string, args render.NamesArgs, ctx *render.Context) render.Value {
	rt.lastArgs = args
	var names []string
	for _, v := range vars {
		rt.nameVarCalls[v]++
		names = append(names, ctx.NameLists[v]...)
	}
	if len(names) == 0 {
		return render.EmptyVars()
	}
	return render.Value{Kind: render.KindText, Text: strings.Join(names, ", "), NameCount: len(names)}
}

func (rt *testRuntime) CountNames(v render.Value, ctx *render.Context) int {
	return v.NameCount
}
