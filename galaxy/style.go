package galaxy

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/galaxy/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// LatticeStyle determines the velocity and color of lattice particles.
type LatticeStyle int

const (
	// Static lattices move uniformly with the configured velocity offset.
	// Colors are the normalized (x, y, z) grid coordinates.
	Static LatticeStyle = iota
	// Spin lattices rotate around an axis through the grid origin: the
	// velocity at normalized grid point p is
	// VelocityScale * (p x Axis) + VelocityOffset. Colors are the
	// normalized (x, z, y) grid coordinates.
	Spin
	EndLatticeStyle
)

var latticeStyleNames = []string{"Static", "Spin"}

func (s LatticeStyle) String() string {
	if s < 0 || s >= EndLatticeStyle {
		return fmt.Sprintf("LatticeStyle(%d)", int(s))
	}
	return latticeStyleNames[s]
}

// ParseLatticeStyle returns the style with the given case-insensitive name.
func ParseLatticeStyle(name string) (LatticeStyle, error) {
	var s LatticeStyle
	for s = 0; s < EndLatticeStyle; s++ {
		if strings.ToLower(s.String()) == strings.ToLower(strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf(
		"Lattice style '%s' is not one of [%s].",
		name, strings.Join(latticeStyleNames, " | "),
	)
}

// body returns the velocity and color of the lattice point at normalized,
// untranslated grid position p. axis must be a unit vector.
func (s LatticeStyle) body(
	l *LatticeConfig, axis, p r3.Vec,
) (vel r3.Vec, c scene.Color) {
	switch s {
	case Spin:
		vel = r3.Add(r3.Scale(l.VelocityScale, r3.Cross(p, axis)), l.VelocityOffset)
		return vel, scene.Color{R: p.X, G: p.Z, B: p.Y}
	default:
		return l.VelocityOffset, scene.Color{R: p.X, G: p.Y, B: p.Z}
	}
}
