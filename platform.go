package fsmeta

import "runtime"

// PlatformWindows is the runtime.GOOS value of Windows.
const PlatformWindows = "windows"

// posixPlatforms share the stat based implementations.
var posixPlatforms = []string{
	"aix",
	"android",
	"darwin",
	"dragonfly",
	"freebsd",
	"illumos",
	"ios",
	"linux",
	"netbsd",
	"openbsd",
	"solaris",
}

// Platform returns the name of the running operating system.
func Platform() string {
	return runtime.GOOS
}

// IsSupportedPlatform reports whether this build can resolve owners and
// format permissions for the named operating system.
func IsSupportedPlatform(name string) bool {
	for _, p := range supportedPlatforms() {
		if p == name {
			return true
		}
	}
	return false
}
