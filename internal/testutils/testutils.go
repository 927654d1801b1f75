package testutils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jxsl13/fsmeta/fsutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// CreateFile creates a file with content and applies perm explicitly, so the
// process umask does not influence the resulting mode.
func CreateFile(t *testing.T, afs afero.Fs, path, content string, perm fs.FileMode) {
	path = filepath.Clean(path)

	require := require.New(t)

	dirPath := filepath.Dir(path)
	found, err := fsutils.Exists(afs, dirPath)
	require.NoError(err)

	if !found {
		err = afs.MkdirAll(dirPath, 0o755)
		require.NoError(err)
	}

	err = afero.WriteFile(afs, path, []byte(content), perm)
	require.NoError(err)

	Chmod(t, afs, path, perm)
}

// Mkdir creates a directory and applies perm explicitly.
func Mkdir(t *testing.T, afs afero.Fs, path string, perm fs.FileMode) {
	path = filepath.Clean(path)

	require := require.New(t)
	err := afs.MkdirAll(path, perm)
	require.NoError(err)

	Chmod(t, afs, path, perm)
}

func Chmod(t *testing.T, afs afero.Fs, path string, perm fs.FileMode) {
	require := require.New(t)
	err := afs.Chmod(path, perm)
	require.NoError(err)

	fi, err := afs.Stat(path)
	require.NoError(err)
	require.Equalf(perm, fi.Mode().Perm(), "unexpected mode of %s", path)
}

// CreateSymlink creates newpath pointing to oldpath on the os filesystem.
func CreateSymlink(t *testing.T, oldpath, newpath string) {
	require := require.New(t)

	err := os.Symlink(filepath.Clean(oldpath), filepath.Clean(newpath))
	require.NoError(err)

	fi, err := os.Lstat(newpath)
	require.NoError(err)

	hasSymlinkFlag := fi.Mode()&os.ModeType&os.ModeSymlink != 0
	require.True(hasSymlinkFlag, "the target(newpath) symlink does not have the symlink flag set: ", newpath)
}

func MustExist(t *testing.T, afs afero.Fs, path string) {
	path = filepath.Clean(path)

	require := require.New(t)
	found, err := fsutils.Exists(afs, path)
	require.NoError(err)
	require.True(found, "file path not found but should exist: "+path)
}

func MustNotExist(t *testing.T, afs afero.Fs, path string) {
	path = filepath.Clean(path)

	require := require.New(t)
	found, err := fsutils.Exists(afs, path)
	require.NoError(err)
	require.False(found, "found file path but should not exist: "+path)
}
