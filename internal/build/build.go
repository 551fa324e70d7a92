// Package build holds build-time metadata stamped into the binary.
package build

// Version is the mason release version.
// It defaults to "dev" and is overwritten by -ldflags at release time.
var Version = "dev"
