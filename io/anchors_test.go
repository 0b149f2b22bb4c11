package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/galaxy/galaxy"
)

func writeTemp(t *testing.T, text string) string {
	fname := filepath.Join(t.TempDir(), "anchors.txt")
	require.NoError(t, os.WriteFile(fname, []byte(text), 0644))
	return fname
}

func TestReadAnchorTable(t *testing.T) {
	fname := writeTemp(t,
		"0.75 -2 -0.5 0 1 0 0 0.533884 0.9966563 0.742154 0.05\n"+
			"0.03 2 0.5 0 -2 0 0 0.9 0.9 0.9 0.05\n",
	)

	anchors, err := ReadAnchorTable(fname)
	require.NoError(t, err)
	require.Len(t, anchors, 2)

	def := galaxy.Default()
	assert.Equal(t, def.ShellAnchor, anchors[0])
	assert.Equal(t, def.LatticeAnchor, anchors[1])
}

func TestReadAnchorTableComments(t *testing.T) {
	anchors, err := ReadAnchorTable(writeTemp(t, ExampleAnchorsFile+"\n"))
	require.NoError(t, err)

	def := galaxy.Default()
	assert.Equal(t, def.ShellAnchor, anchors[0])
	assert.Equal(t, def.LatticeAnchor, anchors[1])
}

func TestReadAnchorTableRows(t *testing.T) {
	row := "1 0 0 0 0 0 0 1 1 1 0.1\n"
	_, err := ReadAnchorTable(writeTemp(t, row))
	assert.Error(t, err)
	_, err = ReadAnchorTable(writeTemp(t, row+row+row))
	assert.Error(t, err)
}

func TestAnchorFileConfig(t *testing.T) {
	fname := writeTemp(t,
		"2 1 2 3 4 5 6 0.1 0.2 0.3 0.5\n"+
			"3 -1 -2 -3 -4 -5 -6 0.4 0.5 0.6 0.25\n",
	)

	wrap, err := ParseGalaxyConfig(
		"[Scene]\nOutput = a\nAnchorFile = " + fname + "\n" +
			"[ShellAnchor]\nMass = 100",
	)
	require.NoError(t, err)
	cfg, err := wrap.Galaxy()
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.ShellAnchor.Mass, "AnchorFile takes precedence")
	assert.Equal(t, 3.0, cfg.LatticeAnchor.Mass)
	assert.Equal(t, -6.0, cfg.LatticeAnchor.Vel.Z)
	assert.Equal(t, 0.25, cfg.LatticeAnchor.Radius)
}
