// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// constants.go - method tags, fixed IDs and parameter minima shared by
// the topology constructors.

package builder

// Method name constants, used to prefix errors with the constructor name.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
	MethodEdges        = "Edges"
)

// CenterVertexID is the identifier of the hub node in Star and Wheel.
const CenterVertexID = "Center"

// Minimum node counts.
const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2

	// MinCycleNodes: a ring needs 3 nodes without loops or parallel edges.
	MinCycleNodes = 3

	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2

	// MinWheelNodes: a 3-cycle rim plus one hub.
	MinWheelNodes = 4

	// MinCompleteNodes: K_1 is a single isolated node.
	MinCompleteNodes = 1

	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1

	// MinRandomSparseNodes: at least one node.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// gridIDFmt is the fixed "r,c" coordinate ID scheme of Grid.
const gridIDFmt = "%d,%d"
