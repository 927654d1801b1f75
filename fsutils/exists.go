package fsutils

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
)

// Check if a file or directory exists.
func Exists(afs afero.Fs, path string) (bool, error) {
	_, err := afs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
