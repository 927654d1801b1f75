//go:build windows

package fsmeta

import (
	"errors"

	"github.com/hectane/go-acl/api"
	"github.com/spf13/afero"
	"golang.org/x/sys/windows"
)

func queryOwner(_ afero.Fs, path string) (OwnerIdentity, error) {
	var (
		owner *windows.SID
		sd    windows.Handle
	)
	err := api.GetNamedSecurityInfo(
		path,
		api.SE_FILE_OBJECT,
		api.OWNER_SECURITY_INFORMATION,
		&owner,
		nil,
		nil,
		nil,
		&sd,
	)
	if err != nil {
		return OwnerIdentity{}, err
	}
	defer func() {
		_, _ = windows.LocalFree(sd)
	}()

	if owner == nil {
		return OwnerIdentity{}, errors.New("security descriptor has no owner")
	}

	account, _, _, err := owner.LookupAccount("")
	if err != nil {
		return OwnerIdentity{}, err
	}
	return OwnerIdentity{Name: account}, nil
}
