// Package misc keeps small helpers which have no better home.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

var appName string

// GetAppName returns the name of the program binary without path and extension.
func GetAppName() string {
	if appName == "" {
		name, err := os.Executable()
		if err != nil {
			name = os.Args[0]
		}
		appName = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return appName
}

// GetVersion returns module version recorded in the binary.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) != 0 {
		return bi.Main.Version
	}
	return "unknown"
}

// GetGitHash returns VCS revision recorded in the binary.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
