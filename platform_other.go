//go:build !unix && !windows

package fsmeta

import (
	"errors"
	"runtime"

	"github.com/spf13/afero"
)

func supportedPlatforms() []string {
	return nil
}

type unsupported struct{}

func (unsupported) ResolveOwner(string) (OwnerIdentity, error) {
	return OwnerIdentity{}, &UnsupportedPlatformError{Name: runtime.GOOS}
}

func (unsupported) FormatPermissions(string) (string, error) {
	return "", &UnsupportedPlatformError{Name: runtime.GOOS}
}

func newOwnerResolver(options) OwnerResolver {
	return unsupported{}
}

func newPermissionFormatter(options) PermissionFormatter {
	return unsupported{}
}

func queryOwner(afero.Fs, string) (OwnerIdentity, error) {
	return OwnerIdentity{}, errors.New("owner query not available on " + runtime.GOOS)
}
