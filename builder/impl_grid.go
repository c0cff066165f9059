// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Node IDs use the fixed scheme "r,c" (row-major order), an exception to
//     cfg.idFn that keeps coordinates explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds nodes in row-major order.
//   • For each (r,c) emits Right (r,c+1) then Bottom (r+1,c) where they exist.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(2*rows*cols) edges.
//   • Space: O(rows*cols) for the node table.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		cells := make([]*core.Node, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				node, err := addNode(g, MethodGrid, fmt.Sprintf(gridIDFmt, r, c))
				if err != nil {
					return err
				}
				cells = append(cells, node)
			}
		}

		at := func(r, c int) *core.Node { return cells[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(g, cfg, MethodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, MethodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
