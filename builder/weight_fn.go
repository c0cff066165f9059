// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// weight_fn.go - edge cost distributions. Every generator returns a finite
// value ≥ 0, which is what core.Edge accepts as a cost.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/pathviz/core"
)

// WeightFn produces an edge cost given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns core.DefaultEdgeCost.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return core.DefaultEdgeCost
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0, NaN or infinite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields core.DefaultEdgeCost to keep a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultEdgeCost
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Integer costs make equal-cost ties likely, which is what tie-break
// fixtures want. Panics if min < 0 or max < min.
// If rng is nil, yields core.DefaultEdgeCost.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultEdgeCost
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev), rounded
// to the nearest integer and clipped at 0. Panics if stddev < 0.
// If rng is nil, yields core.DefaultEdgeCost.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultEdgeCost
		}
		sample := math.Round(rng.NormFloat64()*stddev + mean)
		if sample < 0 {
			return 0
		}

		return sample
	}
}

// WithConstantWeight sets a fixed edge cost via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets costs ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight sets integer costs ∼ U{min..max} via IntWeightFn.
func WithIntWeight(min, max int) BuilderOption {
	return WithWeightFn(IntWeightFn(min, max))
}

// WithNormalWeight sets costs ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}
