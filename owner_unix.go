//go:build unix

package fsmeta

import (
	"errors"

	"github.com/jxsl13/fsmeta/fsutils"
	"golang.org/x/sys/unix"
)

func newOwnerResolver(o options) OwnerResolver {
	return &passwdResolver{opts: o}
}

// passwdResolver maps the numeric owner id from stat(2) through the user
// database.
type passwdResolver struct {
	opts options
}

func (r *passwdResolver) ResolveOwner(path string) (OwnerIdentity, error) {
	found, err := fsutils.Exists(r.opts.fs, path)
	if (err == nil && !found) || errors.Is(err, unix.ENOTDIR) {
		// a file used as parent directory cannot exist either
		return OwnerIdentity{}, &InvalidPathError{Path: path}
	}
	// any other existence error is reported by stat below

	var st unix.Stat_t
	err = unix.Stat(path, &st)
	if err != nil {
		r.opts.logCallFailure(path, "stat", err)
		return OwnerIdentity{}, &NativeCallError{Call: "stat", Err: err}
	}

	name, err := lookupName(r.opts.users, st.Uid)
	if err != nil {
		r.opts.logCallFailure(path, "getpwuid", err)
		return OwnerIdentity{}, err
	}
	return OwnerIdentity{Name: name}, nil
}
