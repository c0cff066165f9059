// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`:
//       "<Method>: n=1 < min=2: builder: parameter too small".
//   • Constructors MUST NOT panic; validation panics are confined to
//     option constructor functions (WithX...).
//   • core errors (core.ErrBadNodeID, core.ErrNegativeCost, ...) pass through
//     wrapped, so errors.Is works against both packages.
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource → ErrConstructFailed.

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (RandomSparse).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure: nil graph, nil
// constructor, or an edge list entry that cannot be built.
var ErrConstructFailed = errors.New("builder: construction failed")
