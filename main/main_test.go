package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/galaxy/io"
	"github.com/phil-mansfield/galaxy/scene"
)

func TestGetModeName(t *testing.T) {
	a, b := "", ""
	vars := map[string]*string{"A": &a, "B": &b}

	_, err := getModeName(vars)
	assert.Error(t, err)

	a = "x"
	name, err := getModeName(vars)
	assert.NoError(t, err)
	assert.Equal(t, "A", name)

	b = "y"
	_, err = getModeName(vars)
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GALAXY_CONFIG", "galaxy.cfg")
	t.Setenv("GALAXY_SEED", "12")

	generate, check, example, seed := "", "", "", -1
	require.NoError(t, loadEnv(&generate, &check, &example, &seed))
	assert.Equal(t, "galaxy.cfg", generate)
	assert.Equal(t, 12, seed)

	generate, check, seed = "", "scene.txt", 3
	require.NoError(t, loadEnv(&generate, &check, &example, &seed))
	assert.Equal(t, "", generate, "another mode was set")
	assert.Equal(t, 3, seed, "flag takes precedence")

	t.Setenv("GALAXY_SEED", "-4")
	seed = -1
	assert.Error(t, loadEnv(&generate, &check, &example, &seed))
}

func TestGenerateAndCheck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "galaxy.txt")
	wrap, err := io.ParseGalaxyConfig(
		"[Scene]\nOutput = " + out + "\nSeed = 3\n[Lattice]\nDimension = 2",
	)
	require.NoError(t, err)

	require.NoError(t, generateMain(wrap))
	hd, ps, err := scene.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2+500+8, hd.Count)
	assert.Len(t, ps, hd.Count)
	assert.NoError(t, checkMain(out))

	first, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NoError(t, generateMain(wrap))
	second, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second), "seeded runs differ")

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("3 0 0\n1 0 0 0 0 0 0 0 0 0 1\n"), 0644))
	assert.Error(t, checkMain(bad))
}

func TestGenerateModeProfile(t *testing.T) {
	dir := t.TempDir()
	prof := filepath.Join(dir, "prof.out")
	wrap, err := io.ParseGalaxyConfig(
		"[Scene]\nOutput = " + filepath.Join(dir, "galaxy.txt") +
			"\nProfileFile = " + prof + "\n[Lattice]\nDimension = -1",
	)
	require.NoError(t, err)

	assert.Error(t, generateMode(wrap))
	info, err := os.Stat(prof)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0, "profile was not flushed")

	_, err = os.Stat(filepath.Join(dir, "galaxy.txt"))
	assert.True(t, os.IsNotExist(err))
}
