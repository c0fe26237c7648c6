// Package version provides build metadata for the restkata binary.
// The variables are set via ldflags during the build.
package version

import "runtime"

// Version is the semantic version of the binary.
// Set via -ldflags "-X github.com/restkata/restkata/internal/version.Version=..."
var Version = "dev"

// BuildDate is the date when the binary was built.
// Set via -ldflags "-X github.com/restkata/restkata/internal/version.BuildDate=..."
var BuildDate = "unknown"

// GitCommit is the git commit hash used to build the binary.
// Set via -ldflags "-X github.com/restkata/restkata/internal/version.GitCommit=..."
var GitCommit = "unknown"

// String returns the bare version string.
func String() string {
	return Version
}

// Info returns all build metadata as a map.
func Info() map[string]string {
	return map[string]string{
		"version":   Version,
		"buildDate": BuildDate,
		"gitCommit": GitCommit,
		"goVersion": runtime.Version(),
	}
}
