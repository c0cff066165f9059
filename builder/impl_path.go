// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) - i for i=1..n-1 in stable increasing order.
//   - Edge cost: cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(n) for the node slice.

package builder

import (
	"github.com/katalvlaran/pathviz/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		nodes, err := addIndexedNodes(g, cfg, MethodPath, n)
		if err != nil {
			return err
		}

		// Emit path edges 0-1-2-...-(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err = connect(g, cfg, MethodPath, nodes[i-1], nodes[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
