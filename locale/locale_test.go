package locale

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCompatible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "csl.locale")
	defer teardown()
	//
	cases := []struct {
		candidate, requested string
		want                 bool
	}{
		{"", "en-US", true},     // undeclared serves anything
		{"en", "en-US", true},   // base language match
		{"en-US", "en-US", true},
		{"en-GB", "en-US", false}, // region-qualified must agree
		{"de", "en-US", false},
		{"de-DE", "de-DE", true},
		{"de", "de-AT", true},
	}
	for _, c := range cases {
		if got := Compatible(c.candidate, c.requested); got != c.want {
			t.Errorf("Compatible(%q, %q) = %v, want %v", c.candidate, c.requested, got, c.want)
		}
	}
}
