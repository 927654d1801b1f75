//go:build windows

package fsmeta

import "golang.org/x/sys/windows"

func newPermissionFormatter(o options) PermissionFormatter {
	return &attributeFormatter{opts: o}
}

// attributeFormatter approximates access from file attributes only. The DACL
// is not evaluated.
type attributeFormatter struct {
	opts options
}

func (f *attributeFormatter) FormatPermissions(path string) (string, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", attributesFailed(err)
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil || attrs == windows.INVALID_FILE_ATTRIBUTES {
		f.opts.logCallFailure(path, "GetFileAttributesW", err)
		return "", attributesFailed(err)
	}
	return FormatAttributes(attrs, path), nil
}

func attributesFailed(err error) error {
	return &NativeCallError{
		Call:   "GetFileAttributesW",
		Reason: "could not obtain attributes",
		Err:    err,
	}
}
