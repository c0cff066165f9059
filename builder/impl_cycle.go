// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges i - (i+1)%n for i=0..n-1; the closing edge (n-1) - 0 is last.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges.

package builder

import (
	"github.com/katalvlaran/pathviz/core"
)

// Cycle returns a Constructor that builds a simple ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		nodes, err := addIndexedNodes(g, cfg, MethodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, cfg, MethodCycle, nodes[i], nodes[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
