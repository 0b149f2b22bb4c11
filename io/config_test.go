package io

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/galaxy/galaxy"
	"github.com/phil-mansfield/galaxy/scene"
)

func TestExampleGalaxyFile(t *testing.T) {
	wrap, err := ParseGalaxyConfig(ExampleGalaxyFile)
	require.NoError(t, err)
	assert.Equal(t, "galaxy.txt", wrap.Scene.Output)

	cfg, err := wrap.Galaxy()
	require.NoError(t, err)
	assert.Equal(t, galaxy.Default(), cfg)

	_, ok := wrap.Seed()
	assert.False(t, ok)
}

func TestDefaultGalaxyWrapper(t *testing.T) {
	wrap := DefaultGalaxyWrapper()
	assert.Error(t, wrap.Check(), "Output is required")

	wrap.Scene.Output = "out.txt"
	cfg, err := wrap.Galaxy()
	require.NoError(t, err)
	assert.Equal(t, galaxy.Default(), cfg)
	assert.Equal(t, -1, wrap.Scene.Precision)
}

func TestParseGalaxyConfig(t *testing.T) {
	text := `[Scene]
Output = out/scene.txt
Seed = 17
Precision = 6
CompatAngles = true
Param1 = 0.5

[Shell]
Count = 10
RadiusMin = 1
RadiusMax = 2

[Lattice]
Dimension = 3
Style = spin
VelocityScale = 2
AxisX = 1
AxisZ = 0

[Rings]
Count = 4
Radii = 3
R = 0.25

[LatticeAnchor]
Mass = 5`

	wrap, err := ParseGalaxyConfig(text)
	require.NoError(t, err)
	seed, ok := wrap.Seed()
	assert.True(t, ok)
	assert.Equal(t, uint64(17), seed)
	assert.Equal(t, 6, wrap.Scene.Precision)

	cfg, err := wrap.Galaxy()
	require.NoError(t, err)
	def := galaxy.Default()

	assert.Equal(t, galaxy.CompatAngleBound, cfg.AngleBound)
	assert.Equal(t, 0.5, cfg.Param1)
	assert.Equal(t, def.Param2, cfg.Param2)

	assert.Equal(t, 10, cfg.Shell.Count)
	assert.Equal(t, galaxy.Range{Min: 1, Max: 2}, cfg.Shell.Radius)
	assert.Equal(t, def.Shell.Center, cfg.Shell.Center)

	assert.Equal(t, 3, cfg.Lattice.Dimension)
	assert.Equal(t, galaxy.Spin, cfg.Lattice.Style)
	assert.Equal(t, 2.0, cfg.Lattice.VelocityScale)
	assert.Equal(t, r3.Vec{X: 1}, cfg.Lattice.Axis)

	assert.Equal(t, 4, cfg.Rings.Count)
	assert.Equal(t, 3, cfg.Rings.Radii)
	assert.Equal(t, scene.Color{R: 0.25, G: 1, B: 0}, cfg.Rings.Color)

	assert.Equal(t, 5.0, cfg.LatticeAnchor.Mass)
	assert.Equal(t, def.LatticeAnchor.Pos, cfg.LatticeAnchor.Pos)
	assert.Equal(t, def.ShellAnchor, cfg.ShellAnchor)

	assert.Equal(t, 2+10+27+12, cfg.Count())
}

func TestGalaxyWrapperErrors(t *testing.T) {
	table := []struct {
		name, text string
	}{
		{"no output", "[Scene]\nSeed = 1"},
		{"negative seed", "[Scene]\nOutput = a\nSeed = -1"},
		{"precision", "[Scene]\nOutput = a\nPrecision = -2"},
		{"angle", "[Scene]\nOutput = a\nAngleBound = 0"},
		{"style", "[Scene]\nOutput = a\n[Lattice]\nStyle = Orbit"},
		{"anchor file", "[Scene]\nOutput = a\nAnchorFile = does/not/exist.txt"},
	}

	for _, test := range table {
		wrap, err := ParseGalaxyConfig(test.text)
		require.NoError(t, err, test.name)
		_, err = wrap.Galaxy()
		assert.Error(t, err, test.name)
	}

	_, err := ParseGalaxyConfig("[Shell]\nCount = many")
	assert.Error(t, err, "non-integer count")
}

func TestUnrecognizedConfigValues(t *testing.T) {
	table := []struct {
		name, text string
	}{
		{"variable", "[Scene]\nOutput = a\n[Lattice]\nDimention = 2"},
		{"section", "[Scene]\nOutput = a\n[Shel]\nCount = 3"},
		{"both", "[Scene]\nOutput = a\n[Lattice]\nDimention = 2\n[Shel]\nCount = 3"},
	}

	for _, test := range table {
		_, err := ParseGalaxyConfig(test.text)
		assert.Error(t, err, test.name)
	}

	fname := filepath.Join(t.TempDir(), "galaxy.cfg")
	require.NoError(t, os.WriteFile(fname, []byte(table[0].text), 0644))
	_, err := ReadGalaxyConfig(fname)
	assert.Error(t, err)
}

func TestGalaxyConfigError(t *testing.T) {
	table := []struct {
		field, text string
	}{
		{"Shell.Radius", "[Shell]\nRadiusMin = 2\nRadiusMax = 1"},
		{"Shell.G", "[Shell]\nGMin = 1\nGMax = 0.2"},
		{"Lattice.Dimension", "[Lattice]\nDimension = -1"},
		{"ShellAnchor.Mass", "[ShellAnchor]\nMass = 0"},
	}

	for _, test := range table {
		wrap, err := ParseGalaxyConfig("[Scene]\nOutput = a\n" + test.text)
		require.NoError(t, err, test.field)
		_, err = wrap.Galaxy()

		var cErr *galaxy.ConfigError
		if assert.True(t, errors.As(err, &cErr), test.field) {
			assert.Equal(t, test.field, cErr.Field)
		}
	}
}

func TestReadGalaxyConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "galaxy.cfg")
	require.NoError(t, os.WriteFile(fname, []byte(ExampleGalaxyFile), 0644))

	wrap, err := ReadGalaxyConfig(fname)
	require.NoError(t, err)
	cfg, err := wrap.Galaxy()
	require.NoError(t, err)
	assert.Equal(t, galaxy.Default(), cfg)

	_, err = ReadGalaxyConfig(filepath.Join(t.TempDir(), "missing.cfg"))
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	wrap, err := ParseGalaxyConfig("[Scene]\nOutput = a\nSeed = 0")
	require.NoError(t, err)
	_, ok := wrap.Seed()
	assert.False(t, ok, "zero seeds from the clock")

	wrap, err = ParseGalaxyConfig("[Scene]\nOutput = a\nSeed = 1")
	require.NoError(t, err)
	seed, ok := wrap.Seed()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), seed)

	assert.Contains(t, ExampleGalaxyFile, "fixed seed must be positive")
}
