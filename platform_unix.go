//go:build unix

package fsmeta

func supportedPlatforms() []string {
	return posixPlatforms
}
