//go:build unix

package fsmeta

import "golang.org/x/sys/unix"

func newPermissionFormatter(o options) PermissionFormatter {
	return &modeFormatter{opts: o}
}

// modeFormatter decodes the mode bits returned by stat(2).
type modeFormatter struct {
	opts options
}

func (f *modeFormatter) FormatPermissions(path string) (string, error) {
	var st unix.Stat_t
	err := unix.Stat(path, &st)
	if err != nil {
		f.opts.logCallFailure(path, "stat", err)
		return "", &NativeCallError{Call: "stat", Err: err}
	}

	mode := uint32(st.Mode)
	return FormatMode(mode, mode&unix.S_IFMT == unix.S_IFDIR), nil
}
