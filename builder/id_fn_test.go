package builder_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/core"
)

// assertPanics fails the test if the provided function does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns verifies each IDFn for correct outputs and for panics on invalid input.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"OneBasedIDFn_zero", builder.OneBasedIDFn, 0, "1", false},
		{"OneBasedIDFn_five", builder.OneBasedIDFn, 5, "6", false},
		{"OneBasedIDFn_negative", builder.OneBasedIDFn, -1, "", true},

		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_over", builder.SymbolIDFn, 26, "", true},

		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_AB", builder.ExcelColumnIDFn, 27, "AB", false},
		{"ExcelColumnIDFn_negative", builder.ExcelColumnIDFn, -1, "", true},

		{"SymbolNumberIDFn_v3", builder.SymbolNumberIDFn("v"), 3, "v3", false},
		{"SymbolNumberIDFn_negative", builder.SymbolNumberIDFn("v"), -2, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			got := tc.fn(tc.input)
			if got != tc.want {
				t.Errorf("%s(%d) = %q; want %q", tc.name, tc.input, got, tc.want)
			}
			if strings.Contains(got, core.EdgeIDSeparator) {
				t.Errorf("%s(%d) = %q contains the edge ID separator", tc.name, tc.input, got)
			}
		})
	}
}
