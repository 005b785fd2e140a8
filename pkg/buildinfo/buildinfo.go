// Package buildinfo contains build information.
//
// The version of development builds is derived from the VCS information
// embedded by "go build". Packagers building from a source archive can pass
// -ldflags "-X github.com/boxel-tui/boxel/pkg/buildinfo.VCSOverride=value",
// where value is a timestamp and a commit hash like
// 20220401235958-123456789012.
package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// VersionBase is the version of the next release. Release builds set
// Reproducible and use it unchanged.
const VersionBase = "0.3.0"

// Reproducible identifies whether the build is a release build. It can be
// overridden with -ldflags.
var Reproducible = "false"

// VCSOverride replaces the VCS information of the build. It can be
// overridden with -ldflags.
var VCSOverride = ""

// Type contains all the build information fields.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains the build information of this binary.
var Value = Type{
	Version:   version(),
	GoVersion: runtime.Version(),
}

func version() string {
	if Reproducible == "true" {
		return VersionBase
	}
	return devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo)
}

func devVersion(next, vcsOverride string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}

	var revision, timestamp, modified string
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			timestamp = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}
	if len(revision) < 12 {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return fallback
	}
	v := next + "-dev.0." + t.UTC().Format("20060102150405") + "-" + revision[:12]
	if modified == "true" {
		v += "-dirty"
	}
	return v
}
