// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic without one.
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j>i); for each kept pair the
//     cost is drawn right after the trial, from the same RNG stream.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
)

// RandomSparse returns a Constructor that samples a graph over n nodes with
// independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		nodes, err := addIndexedNodes(g, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !keep(cfg, p) {
					continue
				}
				if err = connect(g, cfg, MethodRandomSparse, nodes[i], nodes[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// keep runs one Bernoulli trial; p ∈ {0,1} never touches the RNG.
func keep(cfg builderConfig, p float64) bool {
	switch {
	case p <= MinProbability:
		return false
	case p >= MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
