// Package version holds the demo's build-time identity.  None of these
// values are runtime-configurable.
package version

import "github.com/blang/semver/v4"

const (
	// Version is the build version rendered in the banner.
	Version = "0.1.0"

	// Program is the program identifier rendered in the banner.
	Program = "margo-wasm-demo"

	// Runtime is the execution environment label.  It names the WASI
	// target the guest is built for; nothing here depends on WASI
	// functionally.
	Runtime = "wasm32-wasi"
)

// Semver returns Version as a parsed semantic version.
func Semver() semver.Version {
	return semver.MustParse(Version)
}
