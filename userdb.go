package fsmeta

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"

	"golang.org/x/text/encoding/unicode"
)

// ErrUserNotFound is returned by a UserDatabase when no entry exists for a uid.
var ErrUserNotFound = errors.New("user not found")

// UserDatabase maps numeric user ids to raw user names as stored by the
// system. A nil name without error is treated like ErrUserNotFound.
type UserDatabase interface {
	LookupUID(uid uint32) (name []byte, err error)
}

// OSUserDatabase resolves uids through the system user database
// (getpwuid_r with cgo, /etc/passwd otherwise).
type OSUserDatabase struct{}

func (OSUserDatabase) LookupUID(uid uint32) ([]byte, error) {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		var unknown user.UnknownUserIdError
		if errors.As(err, &unknown) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// non-nil even for an empty name
	name := make([]byte, len(u.Username))
	copy(name, u.Username)
	return name, nil
}

// decodeName converts raw user name bytes into text, replacing invalid UTF-8
// sequences with U+FFFD.
func decodeName(uid uint32, raw []byte) (name string, err error) {
	// not reachable with the x/text UTF-8 decoder, it replaces invalid input
	defer func() {
		if r := recover(); r != nil {
			err = &DecodeError{ID: uid, Err: fmt.Errorf("%v", r)}
		}
	}()

	b, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return "", &DecodeError{ID: uid, Err: err}
	}
	return string(b), nil
}

// lookupName runs the user database half of the POSIX owner lookup.
func lookupName(db UserDatabase, uid uint32) (string, error) {
	raw, err := db.LookupUID(uid)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "", &PrincipalNotFoundError{ID: uid}
	case err != nil:
		return "", &NativeCallError{Call: "getpwuid", Err: err}
	case raw == nil:
		return "", &PrincipalNotFoundError{ID: uid}
	case len(raw) == 0:
		return "", &EmptyPrincipalNameError{ID: uid}
	}

	return decodeName(uid, raw)
}
