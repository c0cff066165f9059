// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical model:
//   - W_n = C_{n-1} (rim) + hub CenterVertexID connected to every rim node.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Emission order: rim nodes, rim edges (as Cycle), hub, spokes in rim order.
//
// Complexity:
//   - Time: O(n) nodes + O(2n-2) edges.

package builder

import (
	"github.com/katalvlaran/pathviz/core"
)

// Wheel returns a Constructor that builds a wheel with n nodes in total.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		rim := n - 1
		nodes, err := addIndexedNodes(g, cfg, MethodWheel, rim)
		if err != nil {
			return err
		}
		for i := 0; i < rim; i++ {
			if err = connect(g, cfg, MethodWheel, nodes[i], nodes[(i+1)%rim]); err != nil {
				return err
			}
		}

		hub, err := addNode(g, MethodWheel, CenterVertexID)
		if err != nil {
			return err
		}
		for _, node := range nodes {
			if err = connect(g, cfg, MethodWheel, hub, node); err != nil {
				return err
			}
		}

		return nil
	}
}
