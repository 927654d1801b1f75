//go:build windows

package fsmeta

import (
	"errors"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modadvapi32          = windows.NewLazySystemDLL("advapi32.dll")
	procGetFileSecurityW = modadvapi32.NewProc("GetFileSecurityW")
)

func newOwnerResolver(o options) OwnerResolver {
	return &sidResolver{opts: o}
}

// sidResolver reads the owner SID from the file's security descriptor and
// resolves it to an account name and domain.
type sidResolver struct {
	opts options
}

func (r *sidResolver) ResolveOwner(path string) (OwnerIdentity, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return OwnerIdentity{}, &NativeCallError{Call: "GetFullPathNameW", Err: err}
	}

	sd, free, err := fileSecurityDescriptor(abs)
	if err != nil {
		r.opts.logCallFailure(abs, "GetFileSecurityW", err)
		return OwnerIdentity{}, err
	}
	defer free()

	owner, _, err := sd.Owner()
	if err != nil || owner == nil {
		r.opts.logCallFailure(abs, "GetSecurityDescriptorOwner", err)
		return OwnerIdentity{}, &NativeCallError{
			Call:   "GetSecurityDescriptorOwner",
			Reason: "could not obtain owner",
			Err:    err,
		}
	}

	name, domain, err := lookupAccountSid(owner)
	if err != nil {
		r.opts.logCallFailure(abs, "LookupAccountSidW", err)
		return OwnerIdentity{}, err
	}
	return OwnerIdentity{Name: name, Domain: domain}, nil
}

// fileSecurityDescriptor fetches the owner part of the security descriptor of
// path into a LocalAlloc'ed buffer. The returned func releases that buffer and
// must be called once the descriptor is no longer used.
func fileSecurityDescriptor(path string) (*windows.SECURITY_DESCRIPTOR, func(), error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, nil, &NativeCallError{
			Call:   "GetFileSecurityW",
			Reason: "could not determine descriptor size",
			Err:    err,
		}
	}

	var needed uint32
	_, _, e1 := procGetFileSecurityW.Call(
		uintptr(unsafe.Pointer(p)),
		uintptr(windows.OWNER_SECURITY_INFORMATION),
		0,
		0,
		uintptr(unsafe.Pointer(&needed)),
	)
	if needed == 0 {
		return nil, nil, &NativeCallError{
			Call:   "GetFileSecurityW",
			Reason: "could not determine descriptor size",
			Err:    e1,
		}
	}

	buf, err := windows.LocalAlloc(windows.LMEM_FIXED, needed)
	if err != nil {
		return nil, nil, &NativeCallError{
			Call:   "LocalAlloc",
			Reason: "could not obtain security descriptor",
			Err:    err,
		}
	}
	free := func() {
		_, _ = windows.LocalFree(windows.Handle(buf))
	}
	// buf is LocalAlloc memory, the garbage collector never moves it
	sd := *(**windows.SECURITY_DESCRIPTOR)(unsafe.Pointer(&buf))

	ret, _, e1 := procGetFileSecurityW.Call(
		uintptr(unsafe.Pointer(p)),
		uintptr(windows.OWNER_SECURITY_INFORMATION),
		uintptr(unsafe.Pointer(sd)),
		uintptr(needed),
		uintptr(unsafe.Pointer(&needed)),
	)
	if ret == 0 {
		free()
		return nil, nil, &NativeCallError{
			Call:   "GetFileSecurityW",
			Reason: "could not obtain security descriptor",
			Err:    e1,
		}
	}

	return sd, free, nil
}

// lookupAccountSid asks for the buffer sizes first and then performs the
// actual lookup.
func lookupAccountSid(sid *windows.SID) (name, domain string, err error) {
	var (
		nameLen   uint32
		domainLen uint32
		use       uint32
	)

	err = windows.LookupAccountSid(nil, sid, nil, &nameLen, nil, &domainLen, &use)
	if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) || nameLen == 0 {
		return "", "", sidLookupFailed(err)
	}

	n := make([]uint16, nameLen)
	d := make([]uint16, max(domainLen, 1))
	err = windows.LookupAccountSid(nil, sid, &n[0], &nameLen, &d[0], &domainLen, &use)
	if err != nil {
		return "", "", sidLookupFailed(err)
	}

	return windows.UTF16ToString(n), windows.UTF16ToString(d), nil
}

func sidLookupFailed(err error) error {
	return &NativeCallError{
		Call:   "LookupAccountSidW",
		Reason: "SID lookup failed",
		Err:    err,
	}
}
