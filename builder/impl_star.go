// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub CenterVertexID first, then n-1 leaves cfg.idFn(0..n-2).
//   - Emits spokes Center - leaf in leaf order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.

package builder

import (
	"github.com/katalvlaran/pathviz/core"
)

// Star returns a Constructor that builds a star with n nodes in total.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		center, err := addNode(g, MethodStar, CenterVertexID)
		if err != nil {
			return err
		}
		leaves, err := addIndexedNodes(g, cfg, MethodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = connect(g, cfg, MethodStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
