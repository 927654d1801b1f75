package fsutils_test

import (
	"path/filepath"
	"testing"

	"github.com/jxsl13/fsmeta/fsutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestExistsMemFs(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a/b/test.txt", []byte("test_content"), 0644))

	found, err := fsutils.Exists(fs, "/a/b/test.txt")
	require.NoError(t, err)
	require.True(t, found)

	found, err = fsutils.Exists(fs, "/a/b")
	require.NoError(t, err)
	require.True(t, found)

	found, err = fsutils.Exists(fs, "/a/b/missing.txt")
	require.NoError(t, err)
	require.False(t, found)
}

func TestExistsOsFs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fs := afero.NewOsFs()

	found, err := fsutils.Exists(fs, dir)
	require.NoError(t, err)
	require.True(t, found)

	found, err = fsutils.Exists(fs, filepath.Join(dir, "does", "not", "exist"))
	require.NoError(t, err)
	require.False(t, found)
}
