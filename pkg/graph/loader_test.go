package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toy.fmi"), []byte(testGraphFMI), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.fmi"), []byte("0\n0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	graphs, err := LoadDir(dir)
	require.NoError(t, err)

	// The broken file is skipped, the text file ignored.
	require.Len(t, graphs, 1)
	g, ok := graphs["toy"]
	require.True(t, ok)
	assert.Equal(t, 5, g.NumNodes)
	assert.False(t, g.HasHubLabels())
}

func TestLoadDirWithHubLabels(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toy.fmi"), []byte(testGraphFMI), 0o644))
	// Self-labels only, enough to exercise attachment.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toy.hub"),
		[]byte("1\n1\n0 0 0\n0 0 0\n"), 0o644))

	graphs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Contains(t, graphs, "toy")
	assert.True(t, graphs["toy"].HasHubLabels())
}

func TestLoadDirBadHubDegrades(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toy.fmi"), []byte(testGraphFMI), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toy.hub"), []byte("garbage\n"), 0o644))

	graphs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Contains(t, graphs, "toy")
	// The graph still loads, just without hub labels.
	assert.False(t, graphs["toy"].HasHubLabels())
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
