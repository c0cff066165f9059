// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every unordered pair {i,j}, i<j, in lexicographic (i asc, j asc) order.
//
// Complexity:
//   - Time: O(n) nodes + O(n(n-1)/2) edges.

package builder

import (
	"github.com/katalvlaran/pathviz/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		nodes, err := addIndexedNodes(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(g, cfg, MethodComplete, nodes[i], nodes[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
