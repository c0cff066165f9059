// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// helpers.go - shared node/edge emission used by every constructor.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method tag for uniform reporting.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
)

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices otherwise.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// addIndexedNodes creates nodes cfg.idFn(0..n-1) in ascending index order
// and returns them in that order.
// Complexity: O(n) time and space.
func addIndexedNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]*core.Node, error) {
	nodes := make([]*core.Node, n)
	for i := 0; i < n; i++ {
		node, err := addNode(g, method, cfg.idFn(i))
		if err != nil {
			return nil, err
		}
		nodes[i] = node
	}

	return nodes, nil
}

// addNode creates (or fetches) one node with method context on failure.
func addNode(g *core.Graph, method, id string) (*core.Node, error) {
	node, err := g.Nodes().Create(id)
	if err != nil {
		return nil, fmt.Errorf("%s: Create(%q): %w", method, id, err)
	}

	return node, nil
}

// connect draws one cost from cfg.weightFn and connects a and b with it.
// Complexity: O(deg(a)+deg(b)) for core's duplicate check.
func connect(g *core.Graph, cfg builderConfig, method string, a, b *core.Node) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.Edges().Connect(a, b, w); err != nil {
		return fmt.Errorf("%s: Connect(%s, %s, w=%g): %w", method, a.ID(), b.ID(), w, err)
	}

	return nil
}
