package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Build-time variables injected via -ldflags:
//
//	-X github.com/tbckr/isdomain/internal/version.Version=1.0.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		info := merge(Get(), bi)
		Version, Commit, Date = info.Version, info.Commit, info.Date
	}
}

// Get returns the current build metadata.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String formats info for the version command.
func (i Info) String() string {
	return fmt.Sprintf("isdomain version %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// merge fills placeholder fields of base from bi. Values set via ldflags are kept.
func merge(base Info, bi *debug.BuildInfo) Info {
	if base.Version == "dev" {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			base.Version = strings.TrimPrefix(v, "v")
		}
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && base.Commit == "none" && s.Value != "":
			base.Commit = s.Value[:min(7, len(s.Value))]
		case s.Key == "vcs.time" && base.Date == "unknown" && s.Value != "":
			base.Date = s.Value
		}
	}
	return base
}
