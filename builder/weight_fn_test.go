package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/core"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"ConstantWeightFn_NaN", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntWeightFn(3, 2) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestWeightFnOutputs checks ranges, the nil-RNG fallback and determinism.
func TestWeightFnOutputs(t *testing.T) {
	t.Parallel()

	if got := builder.DefaultWeightFn(nil); got != core.DefaultEdgeCost {
		t.Fatalf("DefaultWeightFn = %g; want %g", got, core.DefaultEdgeCost)
	}
	if got := builder.ConstantWeightFn(2.5)(nil); got != 2.5 {
		t.Fatalf("ConstantWeightFn(2.5) = %g", got)
	}
	if got := builder.UniformWeightFn(3, 3)(rand.New(rand.NewSource(1))); got != 3 {
		t.Fatalf("UniformWeightFn(3,3) = %g; want 3", got)
	}

	fns := map[string]builder.WeightFn{
		"uniform": builder.UniformWeightFn(2, 5),
		"int":     builder.IntWeightFn(1, 4),
		"normal":  builder.NormalWeightFn(1, 3),
	}
	for name, fn := range fns {
		if got := fn(nil); got != core.DefaultEdgeCost {
			t.Errorf("%s(nil rng) = %g; want fallback %g", name, got, core.DefaultEdgeCost)
		}

		a, b := rand.New(rand.NewSource(7)), rand.New(rand.NewSource(7))
		for i := 0; i < 200; i++ {
			x, y := fn(a), fn(b)
			if x != y {
				t.Fatalf("%s not deterministic at draw %d: %g != %g", name, i, x, y)
			}
			if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
				t.Fatalf("%s produced invalid cost %g", name, x)
			}
			switch name {
			case "uniform":
				if x < 2 || x >= 5 {
					t.Fatalf("uniform out of [2,5): %g", x)
				}
			case "int":
				if x < 1 || x > 4 || x != math.Trunc(x) {
					t.Fatalf("int out of {1..4}: %g", x)
				}
			}
		}
	}
}
