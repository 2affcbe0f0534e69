package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piff/internal/adapters/fs"
)

func TestWalker_WalkDirs(t *testing.T) {
	// tmp/
	//   .git/objects/
	//   node_modules/pkg/
	//   src/views/
	//   main.piff
	tmpDir := t.TempDir()
	for _, dir := range []string{".git/objects", "node_modules/pkg", "src/views"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir), 0o750))
	}
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main.piff"), []byte("x"), 0o600))

	dirs := slices.Collect(fs.NewWalker().WalkDirs(tmpDir, []string{".git", "node_modules"}))

	assert.Equal(t, []string{
		tmpDir,
		filepath.Join(tmpDir, "src"),
		filepath.Join(tmpDir, "src", "views"),
	}, dirs)
}

func TestWalker_WalkDirs_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a", "b"), 0o750))

	var got []string
	for dir := range fs.NewWalker().WalkDirs(tmpDir, nil) {
		got = append(got, dir)
		break
	}
	assert.Equal(t, []string{tmpDir}, got)
}

func TestWalker_WalkDirs_MissingRoot(t *testing.T) {
	dirs := slices.Collect(fs.NewWalker().WalkDirs(filepath.Join(t.TempDir(), "missing"), nil))
	assert.Empty(t, dirs)
}

func TestIsIgnored(t *testing.T) {
	ignores := []string{".git", "build-*"}

	assert.True(t, fs.IsIgnored(".git", ignores))
	assert.True(t, fs.IsIgnored("build-cache", ignores))
	assert.False(t, fs.IsIgnored("src", ignores))
}
