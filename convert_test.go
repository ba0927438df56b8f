package csl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func bibOptions(kvs ...KeyValue) *OptionSet {
	os := NewOptionSet()
	for _, kv := range kvs {
		os.Set(kv.Key, kv.Value)
	}
	return os
}

func TestFormatParams(t *testing.T) {
	format, err := FormatParams(bibOptions(
		KeyValue{"hanging-indent", "true"},
		KeyValue{"line-spacing", "2"},
		KeyValue{"entry-spacing", "1.5"},
		KeyValue{"second-field-align", "flush"},
	))
	require.NoError(t, err)
	require.True(t, format.HangingIndent)
	require.Equal(t, 2.0, format.LineSpacing)
	require.Equal(t, 1.5, format.EntrySpacing)
	require.Equal(t, AlignFlush, format.SecondFieldAlign)
}

func TestFormatParamsMargin(t *testing.T) {
	format, err := FormatParams(bibOptions(KeyValue{"second-field-align", "margin"}))
	require.NoError(t, err)
	require.Equal(t, AlignMargin, format.SecondFieldAlign)
}

func TestFormatParamsSecondFieldAlignDisabled(t *testing.T) {
	// absent or false both carry the alignment explicitly as disabled
	format, err := FormatParams(bibOptions())
	require.NoError(t, err)
	require.Equal(t, AlignNone, format.SecondFieldAlign)

	format, err = FormatParams(bibOptions(KeyValue{"second-field-align", "false"}))
	require.NoError(t, err)
	require.Equal(t, AlignNone, format.SecondFieldAlign)
}

func TestFormatParamsBadValues(t *testing.T) {
	for _, kv := range []KeyValue{
		{"hanging-indent", "maybe"},
		{"line-spacing", "wide"},
		{"entry-spacing", "tight"},
		{"second-field-align", "center"},
	} {
		_, err := FormatParams(bibOptions(kv))
		if !errors.Is(err, ErrOptionValue) {
			t.Errorf("expected ErrOptionValue for %s=%q, got %v", kv.Key, kv.Value, err)
		}
	}
}

func TestFormatParamsFromCompiledStyle(t *testing.T) {
	src := `<style>
	  <citation><layout/></citation>
	  <bibliography hanging-indent="true" second-field-align="margin">
	    <layout><text variable="title"/></layout>
	  </bibliography>
	</style>`
	sty, err := Compile(src, "en-US", newTestRuntime())
	require.NoError(t, err)
	format, err := FormatParams(sty.BibOptions)
	require.NoError(t, err)
	require.True(t, format.HangingIndent)
	require.Equal(t, AlignMargin, format.SecondFieldAlign)
	// defaulted spacings come through the numeric conversion
	require.Equal(t, 1.0, format.LineSpacing)
	require.Equal(t, 1.0, format.EntrySpacing)
}
