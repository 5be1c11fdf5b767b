package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rlcnet/builder"
)

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"SymbolNumber_R0", builder.SymbolNumberIDFn("R"), 0, "R0", false},
		{"SymbolNumber_L12", builder.SymbolNumberIDFn("L"), 12, "L12", false},
		{"SymbolNumber_empty_prefix", builder.SymbolNumberIDFn(""), 4, "4", false},
		{"SymbolNumber_negative", builder.SymbolNumberIDFn("C"), -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}
