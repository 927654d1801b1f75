package fsmeta

import (
	"fmt"
	"io/fs"
)

// InvalidPathError is returned when the path does not reference an existing
// filesystem entry.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return "invalid path: " + e.Path
}

func (e *InvalidPathError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// NativeCallError wraps a failing system call. Reason, when set, replaces the
// default "<call> failed: <err>" message.
type NativeCallError struct {
	Call   string
	Reason string
	Err    error
}

func (e *NativeCallError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Err == nil {
		return e.Call + " failed"
	}
	return fmt.Sprintf("%s failed: %v", e.Call, e.Err)
}

func (e *NativeCallError) Unwrap() error {
	return e.Err
}

// PrincipalNotFoundError is returned when a numeric owner id has no entry in
// the user database.
type PrincipalNotFoundError struct {
	ID uint32
}

func (e *PrincipalNotFoundError) Error() string {
	return fmt.Sprintf("no name for uid %d", e.ID)
}

// EmptyPrincipalNameError is returned when the user database has an entry for
// the owner id but its name is empty.
type EmptyPrincipalNameError struct {
	ID uint32
}

func (e *EmptyPrincipalNameError) Error() string {
	return fmt.Sprintf("empty name for uid %d", e.ID)
}

// DecodeError is returned when the user name bytes cannot be turned into text.
type DecodeError struct {
	ID  uint32
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode name for uid %d: %v", e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnsupportedPlatformError is returned for operating systems this build
// cannot answer for.
type UnsupportedPlatformError struct {
	Name string
}

func (e *UnsupportedPlatformError) Error() string {
	return "unsupported platform: " + e.Name
}
