package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/galaxy/scene"
)

// AnchorRows is the number of rows required in an anchor table.
const AnchorRows = 2

// ReadAnchorTable reads the anchor bodies from a whitespace-separated table
// with the same 11 columns as a scene file. The first row is the shell
// anchor and the second is the lattice anchor.
func ReadAnchorTable(fname string) ([]scene.Particle, error) {
	colIdxs := make([]int, scene.Fields)
	for i := range colIdxs { colIdxs[i] = i }

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, fmt.Errorf("Could not read anchor table '%s': %w", fname, err)
	}

	if n := len(cols[0]); n != AnchorRows {
		return nil, fmt.Errorf(
			"Anchor table '%s' has %d rows, but %d are required.",
			fname, n, AnchorRows,
		)
	}

	anchors := make([]scene.Particle, AnchorRows)
	for i := range anchors {
		anchors[i] = scene.Particle{
			Mass:   cols[0][i],
			Pos:    r3.Vec{X: cols[1][i], Y: cols[2][i], Z: cols[3][i]},
			Vel:    r3.Vec{X: cols[4][i], Y: cols[5][i], Z: cols[6][i]},
			Color:  scene.Color{R: cols[7][i], G: cols[8][i], B: cols[9][i]},
			Radius: cols[10][i],
		}
	}

	return anchors, nil
}
