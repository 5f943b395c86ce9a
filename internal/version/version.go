// Package version carries build identification, set via -ldflags.
package version

var (
	// Version is the release version.
	Version = "dev"
	// GitSHA is the git commit the binary was built from.
	GitSHA = "unknown"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// String renders the full build identification.
func String() string {
	return Version + " (" + GitSHA + ", built " + BuildTime + ")"
}
