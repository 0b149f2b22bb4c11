package galaxy

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/galaxy/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// TwoPi is the default upper bound on sampled angles.
	TwoPi = 2 * math.Pi
	// CompatAngleBound is the truncated value of 2*pi used by the first
	// galaxy script. Use it as the AngleBound when output must match files
	// generated by that script.
	CompatAngleBound = 6.282
)

// Range is a closed interval used for uniform sampling.
type Range struct {
	Min, Max float64
}

// ShellConfig describes particles sampled uniformly in a spherical annulus.
type ShellConfig struct {
	Count int
	// Radius is the range that shell radii are drawn from.
	Radius Range
	Center r3.Vec
	// Size is the radius written out for every shell particle.
	Mass, Size float64
	R, G, B Range
}

// LatticeConfig describes a cube of Dimension^3 particles placed on the grid
// {0, 1/Dimension, ..., (Dimension-1)/Dimension}^3 and then translated by
// Offset.
type LatticeConfig struct {
	Dimension  int
	Mass, Size float64
	Offset     r3.Vec

	// Style selects how velocities and colors are assigned to lattice
	// points. VelocityScale and Axis are only used by Spin.
	Style          LatticeStyle
	VelocityScale  float64
	VelocityOffset r3.Vec
	Axis           r3.Vec
}

// RingsConfig describes Radii concentric spheres with radii 0, Step,
// 2*Step, ..., each holding Count randomly placed particles of a single
// color.
type RingsConfig struct {
	Count, Radii int
	Step         float64
	Center       r3.Vec
	Mass, Size   float64
	Color        scene.Color
}

// Config contains all the parameters of a generated galaxy scene.
type Config struct {
	// Param1 and Param2 are copied into the scene header unchanged.
	Param1, Param2 float64
	// AngleBound is the upper bound of the [0, AngleBound) interval that
	// pitch and yaw are drawn from.
	AngleBound float64

	// ShellAnchor is written before the shell and LatticeAnchor is
	// written before the lattice.
	ShellAnchor, LatticeAnchor scene.Particle

	Shell   ShellConfig
	Lattice LatticeConfig
	Rings   RingsConfig
}

// ConfigError is returned when a Config contains an invalid value.
type ConfigError struct {
	Field, Msg string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("Invalid galaxy config value %s: %s", err.Field, err.Msg)
}

func configErrorf(field, format string, args ...interface{}) error {
	return &ConfigError{field, fmt.Sprintf(format, args...)}
}

// Default returns the configuration of the standard two-body galaxy scene:
// a heavy body surrounded by a 500 particle shell and a lighter body next to
// an 8x8x8 lattice.
func Default() *Config {
	return &Config{
		Param1:     0.002,
		Param2:     0.0001,
		AngleBound: TwoPi,

		ShellAnchor: scene.Particle{
			Mass:   0.75,
			Pos:    r3.Vec{X: -2, Y: -0.5, Z: 0},
			Vel:    r3.Vec{X: 1, Y: 0, Z: 0},
			Color:  scene.Color{R: 0.533884, G: 0.9966563, B: 0.742154},
			Radius: 0.05,
		},
		LatticeAnchor: scene.Particle{
			Mass:   0.03,
			Pos:    r3.Vec{X: 2, Y: 0.5, Z: 0},
			Vel:    r3.Vec{X: -2, Y: 0, Z: 0},
			Color:  scene.Color{R: 0.9, G: 0.9, B: 0.9},
			Radius: 0.05,
		},

		Shell: ShellConfig{
			Count:  500,
			Radius: Range{0.8, 1.2},
			Center: r3.Vec{X: -2, Y: -0.5, Z: 0},
			Mass:   0.0003,
			Size:   0.02,
			R:      Range{0, 0.5},
			G:      Range{0.2, 1},
			B:      Range{0.2, 1},
		},
		Lattice: LatticeConfig{
			Dimension:      8,
			Mass:           0.03,
			Size:           0.02,
			Offset:         r3.Vec{X: 1.5, Y: 0, Z: -0.5},
			Style:          Static,
			VelocityScale:  1,
			VelocityOffset: r3.Vec{X: -2, Y: 0, Z: 0},
			Axis:           r3.Vec{X: 0, Y: 0, Z: 1},
		},
		Rings: RingsConfig{
			Count:  0,
			Radii:  20,
			Step:   0.1,
			Center: r3.Vec{X: 2, Y: 0.5, Z: 0},
			Mass:   0.0003,
			Size:   0.02,
			Color:  scene.Color{R: 0, G: 1, B: 0},
		},
	}
}

// Count returns the number of particles that will be generated: the two
// anchors, the shell, the lattice, and the rings.
func (c *Config) Count() int {
	d := c.Lattice.Dimension
	return 2 + c.Shell.Count + d*d*d + c.Rings.Count*c.Rings.Radii
}

// Check returns a *ConfigError describing the first invalid value in c.
func (c *Config) Check() error {
	if !(c.AngleBound > 0) {
		return configErrorf(
			"AngleBound", "must be positive, but is %g", c.AngleBound,
		)
	}

	if err := checkAnchor("ShellAnchor", &c.ShellAnchor); err != nil {
		return err
	} else if err := checkAnchor("LatticeAnchor", &c.LatticeAnchor); err != nil {
		return err
	} else if err := c.Shell.check(); err != nil {
		return err
	} else if err := c.Lattice.check(); err != nil {
		return err
	} else if err := c.Rings.check(); err != nil {
		return err
	}

	d := c.Lattice.Dimension
	n := 2
	for _, k := range []int{c.Shell.Count, d * d * d, c.Rings.Count * c.Rings.Radii} {
		if k > math.MaxInt-n {
			return configErrorf("Count", "total particle count overflows int")
		}
		n += k
	}
	return nil
}

func (r Range) check(field string) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return configErrorf(field, "range [%g, %g] contains NaN", r.Min, r.Max)
	} else if r.Min > r.Max {
		return configErrorf(
			field, "range minimum %g is larger than maximum %g", r.Min, r.Max,
		)
	}
	return nil
}

func checkPositive(field string, x float64) error {
	if !(x > 0) {
		return configErrorf(field, "must be positive, but is %g", x)
	}
	return nil
}

func checkAnchor(name string, p *scene.Particle) error {
	if err := checkPositive(name+".Mass", p.Mass); err != nil {
		return err
	}
	return checkPositive(name+".Radius", p.Radius)
}

func (s *ShellConfig) check() error {
	if s.Count < 0 {
		return configErrorf(
			"Shell.Count", "must be non-negative, but is %d", s.Count,
		)
	} else if err := s.Radius.check("Shell.Radius"); err != nil {
		return err
	} else if !(s.Radius.Min > 0) {
		return configErrorf(
			"Shell.Radius", "minimum must be positive, but is %g", s.Radius.Min,
		)
	} else if err := checkPositive("Shell.Mass", s.Mass); err != nil {
		return err
	} else if err := checkPositive("Shell.Size", s.Size); err != nil {
		return err
	} else if err := s.R.check("Shell.R"); err != nil {
		return err
	} else if err := s.G.check("Shell.G"); err != nil {
		return err
	}
	return s.B.check("Shell.B")
}

func (l *LatticeConfig) check() error {
	if l.Dimension < 0 {
		return configErrorf(
			"Lattice.Dimension", "must be non-negative, but is %d", l.Dimension,
		)
	} else if d := l.Dimension; d > 0 && d > math.MaxInt/d/d {
		return configErrorf(
			"Lattice.Dimension", "%d^3 particles overflows int", l.Dimension,
		)
	} else if err := checkPositive("Lattice.Mass", l.Mass); err != nil {
		return err
	} else if err := checkPositive("Lattice.Size", l.Size); err != nil {
		return err
	} else if l.Style < 0 || l.Style >= EndLatticeStyle {
		return configErrorf(
			"Lattice.Style", "unrecognized style %d", int(l.Style),
		)
	} else if l.Style == Spin && r3.Norm(l.Axis) == 0 {
		return configErrorf("Lattice.Axis", "Spin lattices need a non-zero axis")
	}
	return nil
}

func (r *RingsConfig) check() error {
	if r.Count < 0 {
		return configErrorf(
			"Rings.Count", "must be non-negative, but is %d", r.Count,
		)
	} else if r.Radii < 0 {
		return configErrorf(
			"Rings.Radii", "must be non-negative, but is %d", r.Radii,
		)
	} else if r.Count == 0 || r.Radii == 0 {
		return nil
	} else if r.Count > math.MaxInt/r.Radii {
		return configErrorf(
			"Rings.Count", "%d rings of %d particles overflows int",
			r.Radii, r.Count,
		)
	} else if !(r.Step > 0) {
		return configErrorf("Rings.Step", "must be positive, but is %g", r.Step)
	} else if err := checkPositive("Rings.Mass", r.Mass); err != nil {
		return err
	}
	return checkPositive("Rings.Size", r.Size)
}
