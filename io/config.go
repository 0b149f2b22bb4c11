package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/galaxy/galaxy"
	"github.com/phil-mansfield/galaxy/scene"
)

const (
	ExampleGalaxyFile = `[Scene]

#######################
# Required Parameters #
#######################

# File that the scene will be written to. Any existing file is replaced.
Output = galaxy.txt

#######################
# Optional Parameters #
#######################

# Written to the header line after the particle count. The simulator reads
# these as its own parameters; they are not used during generation.
# Param1 = 0.002
# Param2 = 0.0001

# Seed for the random number generator. Zero seeds from the current time,
# so a fixed seed must be positive.
# Seed = 0

# Number of significant digits written for each value. -1 writes the
# shortest representation that reads back exactly.
# Precision = -1

# Pitch and yaw are drawn from [0, AngleBound). Setting CompatAngles uses
# 6.282 instead, which is what older versions of this generator did.
# AngleBound = 6.283185307179586
# CompatAngles = false

# Two row table of anchor bodies. Replaces the [ShellAnchor] and
# [LatticeAnchor] sections if set. Run with -ExampleConfig Anchors for the
# format.
# AnchorFile = anchors.txt

# PlotFile = preview.png
# ProfileFile = prof.out
# LogFile = log.out

[ShellAnchor]
Mass = 0.75
X = -2
Y = -0.5
Z = 0
VX = 1
VY = 0
VZ = 0
R = 0.533884
G = 0.9966563
B = 0.742154
Radius = 0.05

[Shell]
Count = 500
RadiusMin = 0.8
RadiusMax = 1.2
# Center of the shell.
X = -2
Y = -0.5
Z = 0
Mass = 0.0003
# Radius of each particle.
Radius = 0.02
RMin = 0
RMax = 0.5
GMin = 0.2
GMax = 1
BMin = 0.2
BMax = 1

[LatticeAnchor]
Mass = 0.03
X = 2
Y = 0.5
Z = 0
VX = -2
VY = 0
VZ = 0
R = 0.9
G = 0.9
B = 0.9
Radius = 0.05

[Lattice]
# The lattice contains Dimension^3 particles.
Dimension = 8
Mass = 0.03
Radius = 0.02
# Translation of the lattice's lowermost corner.
X = 1.5
Y = 0
Z = -0.5

# Style must be one of [ Static | Spin ]. Static lattices all move with
# velocity (VX, VY, VZ). Spin lattices also rotate about the axis
# (AxisX, AxisY, AxisZ) with angular speed VelocityScale.
Style = Static
VX = -2
VY = 0
VZ = 0
# VelocityScale = 1
# AxisX = 0
# AxisY = 0
# AxisZ = 1

[Rings]
# Count particles are placed on each of Radii concentric spheres with radii
# 0, Step, 2*Step, ... Rings are disabled when Count is 0.
Count = 0
# Radii = 20
# Step = 0.1
# X = 2
# Y = 0.5
# Z = 0
# Mass = 0.0003
# Radius = 0.02
# R = 0
# G = 1
# B = 0`
	ExampleAnchorsFile = `# Anchor bodies. The first row is written before the shell and the second
# before the lattice.
#
# Columns:
# mass x y z vx vy vz r g b radius
0.75 -2 -0.5 0 1 0 0 0.533884 0.9966563 0.742154 0.05
0.03 2 0.5 0 -2 0 0 0.9 0.9 0.9 0.05`
)

type SceneConfig struct {
	// Required
	Output string

	// Optional
	Param1, Param2 float64
	Seed, Precision int
	AngleBound float64
	CompatAngles bool
	AnchorFile string
	LogFile, ProfileFile, PlotFile string
}

func (con *SceneConfig) ValidOutput() bool { return con.Output != "" }
func (con *SceneConfig) ValidSeed() bool { return con.Seed >= 0 }
func (con *SceneConfig) ValidPrecision() bool { return con.Precision >= -1 }
func (con *SceneConfig) ValidAngleBound() bool { return con.AngleBound > 0 }
func (con *SceneConfig) ValidAnchorFile() bool { return con.AnchorFile != "" }
func (con *SceneConfig) ValidLogFile() bool { return con.LogFile != "" }
func (con *SceneConfig) ValidProfileFile() bool { return con.ProfileFile != "" }
func (con *SceneConfig) ValidPlotFile() bool { return con.PlotFile != "" }

// UseSeed returns true if the scene should be generated from a fixed seed.
func (con *SceneConfig) UseSeed() bool { return con.Seed > 0 }

type ShellConfig struct {
	Count int
	RadiusMin, RadiusMax float64
	X, Y, Z float64
	Mass, Radius float64
	RMin, RMax, GMin, GMax, BMin, BMax float64
}

type LatticeConfig struct {
	Dimension int
	Mass, Radius float64
	X, Y, Z float64

	Style string
	VelocityScale float64
	VX, VY, VZ float64
	AxisX, AxisY, AxisZ float64
}

func (con *LatticeConfig) ValidStyle() bool {
	_, err := galaxy.ParseLatticeStyle(con.Style)
	return err == nil
}

type RingsConfig struct {
	Count, Radii int
	Step float64
	X, Y, Z float64
	Mass, Radius float64
	R, G, B float64
}

type AnchorConfig struct {
	Mass float64
	X, Y, Z float64
	VX, VY, VZ float64
	R, G, B float64
	Radius float64
}

// GalaxyWrapper holds every section of a galaxy config file.
type GalaxyWrapper struct {
	Scene SceneConfig
	ShellAnchor AnchorConfig
	Shell ShellConfig
	LatticeAnchor AnchorConfig
	Lattice LatticeConfig
	Rings RingsConfig
}

// DefaultGalaxyWrapper returns a wrapper where every optional value is set
// to the parameters of the default galaxy.
func DefaultGalaxyWrapper() *GalaxyWrapper {
	def := galaxy.Default()
	w := &GalaxyWrapper{}

	w.Scene = SceneConfig{
		Param1: def.Param1, Param2: def.Param2,
		Precision: -1, AngleBound: def.AngleBound,
	}
	w.ShellAnchor = anchorConfig(&def.ShellAnchor)
	w.LatticeAnchor = anchorConfig(&def.LatticeAnchor)

	s := &def.Shell
	w.Shell = ShellConfig{
		Count: s.Count,
		RadiusMin: s.Radius.Min, RadiusMax: s.Radius.Max,
		X: s.Center.X, Y: s.Center.Y, Z: s.Center.Z,
		Mass: s.Mass, Radius: s.Size,
		RMin: s.R.Min, RMax: s.R.Max,
		GMin: s.G.Min, GMax: s.G.Max,
		BMin: s.B.Min, BMax: s.B.Max,
	}

	l := &def.Lattice
	w.Lattice = LatticeConfig{
		Dimension: l.Dimension,
		Mass: l.Mass, Radius: l.Size,
		X: l.Offset.X, Y: l.Offset.Y, Z: l.Offset.Z,
		Style: l.Style.String(),
		VelocityScale: l.VelocityScale,
		VX: l.VelocityOffset.X, VY: l.VelocityOffset.Y, VZ: l.VelocityOffset.Z,
		AxisX: l.Axis.X, AxisY: l.Axis.Y, AxisZ: l.Axis.Z,
	}

	r := &def.Rings
	w.Rings = RingsConfig{
		Count: r.Count, Radii: r.Radii, Step: r.Step,
		X: r.Center.X, Y: r.Center.Y, Z: r.Center.Z,
		Mass: r.Mass, Radius: r.Size,
		R: r.Color.R, G: r.Color.G, B: r.Color.B,
	}

	return w
}

func anchorConfig(p *scene.Particle) AnchorConfig {
	return AnchorConfig{
		p.Mass,
		p.Pos.X, p.Pos.Y, p.Pos.Z,
		p.Vel.X, p.Vel.Y, p.Vel.Z,
		p.Color.R, p.Color.G, p.Color.B,
		p.Radius,
	}
}

func (con *AnchorConfig) Particle() scene.Particle {
	return scene.Particle{
		Mass: con.Mass,
		Pos: r3.Vec{X: con.X, Y: con.Y, Z: con.Z},
		Vel: r3.Vec{X: con.VX, Y: con.VY, Z: con.VZ},
		Color: scene.Color{R: con.R, G: con.G, B: con.B},
		Radius: con.Radius,
	}
}

// ReadGalaxyConfig reads the config file fname on top of the default
// values. Unrecognized sections and variables are errors.
func ReadGalaxyConfig(fname string) (*GalaxyWrapper, error) {
	wrap := DefaultGalaxyWrapper()
	err := gcfg.ReadFileInto(wrap, fname)
	if err != nil { return nil, err }
	return wrap, nil
}

// ParseGalaxyConfig is identical to ReadGalaxyConfig, except that the config
// file is given as a string.
func ParseGalaxyConfig(text string) (*GalaxyWrapper, error) {
	wrap := DefaultGalaxyWrapper()
	err := gcfg.ReadStringInto(wrap, text)
	if err != nil { return nil, err }
	return wrap, nil
}

// Check returns a descriptive error if any of the [Scene] values are
// invalid or the lattice style is not recognized. Everything else is checked
// by galaxy.Config.Check.
func (wrap *GalaxyWrapper) Check() error {
	con := &wrap.Scene
	if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidSeed() {
		return fmt.Errorf("'Seed' must be non-negative, but is %d.", con.Seed)
	} else if !con.ValidPrecision() {
		return fmt.Errorf(
			"'Precision' must be -1 or non-negative, but is %d.", con.Precision,
		)
	} else if !con.CompatAngles && !con.ValidAngleBound() {
		return fmt.Errorf(
			"'AngleBound' must be positive, but is %g.", con.AngleBound,
		)
	} else if !wrap.Lattice.ValidStyle() {
		return fmt.Errorf(
			"Lattice 'Style' must be one of [Static | Spin]. '%s' is not " +
				"recognized.", wrap.Lattice.Style,
		)
	}
	return nil
}

// Galaxy converts the wrapper into a galaxy.Config, reading AnchorFile if it
// has been set. The returned config has been checked.
func (wrap *GalaxyWrapper) Galaxy() (*galaxy.Config, error) {
	if err := wrap.Check(); err != nil { return nil, err }

	sc := &wrap.Scene
	cfg := &galaxy.Config{
		Param1: sc.Param1, Param2: sc.Param2,
		AngleBound: sc.AngleBound,
	}
	if sc.CompatAngles { cfg.AngleBound = galaxy.CompatAngleBound }

	if sc.ValidAnchorFile() {
		anchors, err := ReadAnchorTable(sc.AnchorFile)
		if err != nil { return nil, err }
		cfg.ShellAnchor, cfg.LatticeAnchor = anchors[0], anchors[1]
	} else {
		cfg.ShellAnchor = wrap.ShellAnchor.Particle()
		cfg.LatticeAnchor = wrap.LatticeAnchor.Particle()
	}

	s := &wrap.Shell
	cfg.Shell = galaxy.ShellConfig{
		Count: s.Count,
		Radius: galaxy.Range{Min: s.RadiusMin, Max: s.RadiusMax},
		Center: r3.Vec{X: s.X, Y: s.Y, Z: s.Z},
		Mass: s.Mass, Size: s.Radius,
		R: galaxy.Range{Min: s.RMin, Max: s.RMax},
		G: galaxy.Range{Min: s.GMin, Max: s.GMax},
		B: galaxy.Range{Min: s.BMin, Max: s.BMax},
	}

	l := &wrap.Lattice
	style, _ := galaxy.ParseLatticeStyle(l.Style)
	cfg.Lattice = galaxy.LatticeConfig{
		Dimension: l.Dimension,
		Mass: l.Mass, Size: l.Radius,
		Offset: r3.Vec{X: l.X, Y: l.Y, Z: l.Z},
		Style: style,
		VelocityScale: l.VelocityScale,
		VelocityOffset: r3.Vec{X: l.VX, Y: l.VY, Z: l.VZ},
		Axis: r3.Vec{X: l.AxisX, Y: l.AxisY, Z: l.AxisZ},
	}

	r := &wrap.Rings
	cfg.Rings = galaxy.RingsConfig{
		Count: r.Count, Radii: r.Radii, Step: r.Step,
		Center: r3.Vec{X: r.X, Y: r.Y, Z: r.Z},
		Mass: r.Mass, Size: r.Radius,
		Color: scene.Color{R: r.R, G: r.G, B: r.B},
	}

	if err := cfg.Check(); err != nil { return nil, err }
	return cfg, nil
}

// Seed returns the seed given in the [Scene] section and true, or zero and
// false if the scene should be seeded from the clock.
func (wrap *GalaxyWrapper) Seed() (uint64, bool) {
	if !wrap.Scene.UseSeed() { return 0, false }
	return uint64(wrap.Scene.Seed), true
}
