package version

import "github.com/fatih/color"

// Build metadata for the nimlisp CLI. These variables can be
// overridden at build time via -ldflags.

var (
	versionNumberColor = color.New(color.FgGreen, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Pretty returns the version number with terminal coloring applied
func Pretty() string {
	return versionNumberColor.Sprint(Version)
}
