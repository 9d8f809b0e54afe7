// Package misc keeps build identification used for logging and CLI output.
package misc

import "runtime/debug"

// set at build time via ldflags
var (
	appName = "cssel"
	version = "development"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns the hash stamped at build time, falling back to the
// vcs revision recorded in build info.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
