package fsmeta

import "strings"

// PermissionFormatter renders the access bits of a filesystem entry.
type PermissionFormatter interface {
	FormatPermissions(path string) (string, error)
}

// NewPermissionFormatter returns the formatter of the running platform.
func NewPermissionFormatter(opts ...Option) PermissionFormatter {
	return newPermissionFormatter(newOptions(opts...))
}

// NewPermissionFormatterFor returns the formatter for the named platform,
// or an *UnsupportedPlatformError if this build cannot serve it.
func NewPermissionFormatterFor(platform string, opts ...Option) (PermissionFormatter, error) {
	if !IsSupportedPlatform(platform) {
		return nil, &UnsupportedPlatformError{Name: platform}
	}
	return NewPermissionFormatter(opts...), nil
}

// FormatPermissions returns the permission string of path, or the failure
// message if it cannot be determined.
func FormatPermissions(path string) string {
	perms, err := NewPermissionFormatter().FormatPermissions(path)
	if err != nil {
		return err.Error()
	}
	return perms
}

// order matters: owner, group, others
var modeBits = [9]struct {
	bit  uint32
	char byte
}{
	{0o400, 'r'}, {0o200, 'w'}, {0o100, 'x'},
	{0o040, 'r'}, {0o020, 'w'}, {0o010, 'x'},
	{0o004, 'r'}, {0o002, 'w'}, {0o001, 'x'},
}

// FormatMode renders raw POSIX mode bits as a ten character ls -l style
// string, e.g. "drwxr-xr-x".
func FormatMode(mode uint32, isDir bool) string {
	var b [10]byte
	for i := range b {
		b[i] = '-'
	}
	if isDir {
		b[0] = 'd'
	}

	for i, mb := range modeBits {
		if mode&mb.bit != 0 {
			b[i+1] = mb.char
		}
	}
	return string(b[:])
}

const fileAttributeReadOnly = 0x00000001

var executableExtensions = []string{".exe", ".bat", ".cmd", ".com"}

// IsExecutableName reports whether path ends in one of the extensions Windows
// treats as directly executable. The comparison ignores case.
func IsExecutableName(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range executableExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FormatAttributes renders Windows file attributes as a three character
// read/write/execute approximation. Read is always granted, write unless the
// read-only attribute is set and execute only for executable extensions.
func FormatAttributes(attrs uint32, path string) string {
	b := [3]byte{'r', 'w', '-'}
	if attrs&fileAttributeReadOnly != 0 {
		b[1] = '-'
	}
	if IsExecutableName(path) {
		b[2] = 'x'
	}
	return string(b[:])
}
