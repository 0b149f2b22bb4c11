/*Package galaxy generates randomized N-body initial conditions consisting of
two groups, each introduced by a fixed anchor body: a spherical shell of
randomly placed light particles and a cube-shaped lattice of heavier ones.
An optional set of concentric rings can be appended after the lattice.

All randomness comes from the rand.Source passed to New, so scenes generated
with identically seeded sources are identical.
*/
package galaxy

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/phil-mansfield/galaxy/scene"
)

// Generator produces the particles of a galaxy scene.
type Generator struct {
	cfg  Config
	src  rand.Source
	axis r3.Vec
}

// New returns a Generator for cfg which draws random numbers from src. If
// src is nil, a source seeded from the current time is used. An error is
// returned if cfg is invalid.
func New(cfg *Config, src rand.Source) (*Generator, error) {
	if err := cfg.Check(); err != nil { return nil, err }
	if src == nil { src = rand.NewSource(uint64(time.Now().UnixNano())) }

	g := &Generator{cfg: *cfg, src: src}
	if n := r3.Norm(cfg.Lattice.Axis); n > 0 {
		g.axis = r3.Unit(cfg.Lattice.Axis)
	}
	return g, nil
}

// NewSeed returns a Generator for cfg whose random source is seeded with
// seed.
func NewSeed(cfg *Config, seed uint64) (*Generator, error) {
	return New(cfg, rand.NewSource(seed))
}

// Header returns the scene header.
func (g *Generator) Header() scene.Header {
	return scene.Header{
		Count:  g.cfg.Count(),
		Param1: g.cfg.Param1,
		Param2: g.cfg.Param2,
	}
}

// Generate writes a complete scene to w.
func (g *Generator) Generate(w *scene.Writer) error {
	hd := g.Header()
	if err := w.WriteHeader(&hd); err != nil { return err }
	return g.each(w.Write)
}

// WriteFile generates a scene and writes it to fname, replacing any existing
// file only once generation has succeeded.
func (g *Generator) WriteFile(fname string, prec int) error {
	return scene.WriteFile(fname, prec, g.Generate)
}

// Particles generates a scene in memory.
func (g *Generator) Particles() []scene.Particle {
	ps := make([]scene.Particle, 0, g.cfg.Count())
	// The callback never fails, so neither does each.
	g.each(func(p *scene.Particle) error {
		ps = append(ps, *p)
		return nil
	})
	return ps
}

// each calls fn on every particle of the scene in output order, stopping at
// the first error.
func (g *Generator) each(fn func(p *scene.Particle) error) error {
	anchor := g.cfg.ShellAnchor
	if err := fn(&anchor); err != nil { return err }
	if err := g.shell(fn); err != nil { return err }

	anchor = g.cfg.LatticeAnchor
	if err := fn(&anchor); err != nil { return err }
	if err := g.lattice(fn); err != nil { return err }

	return g.rings(fn)
}

func (g *Generator) uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: g.src}.Rand()
}

func (g *Generator) sample(r Range) float64 { return g.uniform(r.Min, r.Max) }

// direction returns a point on the unit sphere with pitch and yaw drawn
// uniformly from [0, AngleBound).
func (g *Generator) direction() r3.Vec {
	pitch := g.uniform(0, g.cfg.AngleBound)
	yaw := g.uniform(0, g.cfg.AngleBound)

	return r3.Vec{
		X: math.Cos(yaw) * math.Cos(pitch),
		Y: math.Sin(yaw) * math.Cos(pitch),
		Z: math.Sin(pitch),
	}
}

func (g *Generator) shell(fn func(p *scene.Particle) error) error {
	s := &g.cfg.Shell
	p := scene.Particle{Mass: s.Mass, Radius: s.Size}

	for i := 0; i < s.Count; i++ {
		r := g.sample(s.Radius)
		p.Pos = r3.Add(r3.Scale(r, g.direction()), s.Center)
		p.Color.R = g.sample(s.R)
		p.Color.G = g.sample(s.G)
		p.Color.B = g.sample(s.B)

		if err := fn(&p); err != nil { return err }
	}
	return nil
}

func (g *Generator) lattice(fn func(p *scene.Particle) error) error {
	l := &g.cfg.Lattice
	if l.Dimension == 0 { return nil }

	gr := newGrid(l.Dimension)
	d := float64(l.Dimension)
	p := scene.Particle{Mass: l.Mass, Radius: l.Size}

	for idx := 0; idx < gr.Volume; idx++ {
		x, y, z := gr.Coords(idx)
		norm := r3.Vec{X: float64(x) / d, Y: float64(y) / d, Z: float64(z) / d}

		p.Pos = r3.Add(norm, l.Offset)
		p.Vel, p.Color = l.Style.body(l, g.axis, norm)

		if err := fn(&p); err != nil { return err }
	}
	return nil
}

func (g *Generator) rings(fn func(p *scene.Particle) error) error {
	r := &g.cfg.Rings
	p := scene.Particle{Mass: r.Mass, Radius: r.Size, Color: r.Color}

	for i := 0; i < r.Count; i++ {
		for k := 0; k < r.Radii; k++ {
			rad := float64(k) * r.Step
			p.Pos = r3.Add(r3.Scale(rad, g.direction()), r.Center)

			if err := fn(&p); err != nil { return err }
		}
	}
	return nil
}
