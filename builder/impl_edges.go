// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_edges.go - explicit fixtures: Nodes(ids...) and Edges(specs...).
//
// Contract:
//   - Nodes creates the given IDs in argument order (existing IDs are kept).
//   - Edges creates missing endpoints in order of first appearance (A before
//     B), then connects A - B with the given cost; cfg.weightFn is not used.
//   - A rejected cost or ID surfaces as the wrapped core sentinel
//     (core.ErrNegativeCost, core.ErrBadNodeID, core.ErrSelfLoop, ...).
//
// Complexity:
//   - Time: O(len(ids)) / O(len(specs)) plus core's per-edge duplicate check.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
)

// EdgeSpec is one explicit undirected edge.
type EdgeSpec struct {
	A, B string
	Cost float64
}

// Nodes returns a Constructor that creates the given node IDs in order.
// Use it before Edges to pin insertion order (and so search tie-breaks) or
// to add isolated nodes.
func Nodes(ids ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range ids {
			if _, err := addNode(g, MethodEdges, id); err != nil {
				return err
			}
		}

		return nil
	}
}

// Edges returns a Constructor that adds the given edges in order.
func Edges(specs ...EdgeSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, s := range specs {
			a, err := addNode(g, MethodEdges, s.A)
			if err != nil {
				return fmt.Errorf("edge #%d: %w", i, err)
			}
			b, err := addNode(g, MethodEdges, s.B)
			if err != nil {
				return fmt.Errorf("edge #%d: %w", i, err)
			}
			if _, err = g.Edges().Connect(a, b, s.Cost); err != nil {
				return fmt.Errorf("%s: edge #%d %s-%s cost=%g: %w", MethodEdges, i, s.A, s.B, s.Cost, err)
			}
		}

		return nil
	}
}
