//go:build windows

package fsmeta

func supportedPlatforms() []string {
	return []string{PlatformWindows}
}
