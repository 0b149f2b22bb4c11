/*Package scene reads and writes the plain-text initial condition files
consumed by the N-body simulator.

A scene file has a single header line followed by one line per particle:

	<count> <param1> <param2>
	<mass> <px> <py> <pz> <vx> <vy> <vz> <r> <g> <b> <radius>

All fields are separated by single spaces and every line, including the last,
is terminated by a newline.
*/
package scene

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// HeaderFields is the number of columns in the header line.
	HeaderFields = 3
	// Fields is the number of columns in every particle line.
	Fields = 11
)

// Header is the first line of a scene file. Param1 and Param2 are simulation
// parameters which are passed through to the simulator untouched.
type Header struct {
	Count          int
	Param1, Param2 float64
}

// Color is an RGB triplet. Channels are conventionally in [0, 1] but are
// never clamped.
type Color struct {
	R, G, B float64
}

// Particle is a single body in a scene.
type Particle struct {
	Mass     float64
	Pos, Vel r3.Vec
	Color    Color
	Radius   float64
}

// Check returns an error if the header and particles do not describe a
// well-formed scene.
func Check(hd *Header, ps []Particle) error {
	if hd.Count != len(ps) {
		return fmt.Errorf(
			"Header declares %d particles, but %d particle lines follow.",
			hd.Count, len(ps),
		)
	}

	for i := range ps {
		if ps[i].Mass <= 0 {
			return fmt.Errorf(
				"Particle %d has non-positive mass %g.", i, ps[i].Mass,
			)
		} else if ps[i].Radius <= 0 {
			return fmt.Errorf(
				"Particle %d has non-positive radius %g.", i, ps[i].Radius,
			)
		}
	}

	return nil
}
