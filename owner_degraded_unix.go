//go:build unix

package fsmeta

import (
	"fmt"
	"os/user"
	"strconv"

	"github.com/jxsl13/fsmeta/internal"
	"github.com/spf13/afero"
)

func queryOwner(fs afero.Fs, path string) (OwnerIdentity, error) {
	fi, err := fs.Stat(path)
	if err != nil {
		return OwnerIdentity{}, err
	}

	uid := internal.Uid(fi)
	if uid < 0 {
		return OwnerIdentity{}, fmt.Errorf("no raw stat data for %s: %T", path, fi.Sys())
	}

	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return OwnerIdentity{}, err
	}
	return OwnerIdentity{Name: u.Username}, nil
}
