package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Linker-stamped build metadata. A release build overwrites these via
// -ldflags -X (see doc.go); an unstamped dev build leaves them at their
// zero values and GetVersionInfo falls back to the module's embedded
// VCS settings instead.
var (
	Version   = "dev"
	GitCommit string
	GitBranch string
	BuildTime string
	GoVersion string
)

// Info is a resolved snapshot of the running binary's build metadata.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	GitBranch string    `json:"git_branch"`
	GoVersion string    `json:"go_version"`
	BuildTime string    `json:"build_time"`
	BuildDate time.Time `json:"build_date"`
	IsRelease bool      `json:"is_release"`
	IsDirty   bool      `json:"is_dirty"`
}

// GetVersionInfo resolves the linker-stamped variables against the
// module's embedded VCS info (for anything the linker left blank) and
// returns the merged snapshot.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		GitBranch: GitBranch,
		GoVersion: GoVersion,
		BuildTime: BuildTime,
	}

	if info.BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	fillFromBuildInfo(info)

	if info.BuildDate.IsZero() {
		info.BuildDate = time.Now().UTC()
		info.BuildTime = info.BuildDate.Format(time.RFC3339)
	}

	info.IsRelease = info.Version != "dev" && !strings.HasSuffix(info.Version, "-dirty")
	return info
}

// fillFromBuildInfo completes any field the linker left unset using the
// toolchain's own record of the module's VCS state. Linker-stamped
// values always win over this fallback.
func fillFromBuildInfo(info *Info) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if info.GoVersion == "" {
		info.GoVersion = bi.GoVersion
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shortSHA(setting.Value)
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildTime == "" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					info.BuildDate = t
					info.BuildTime = setting.Value
				}
			}
		}
	}
}

func shortSHA(revision string) string {
	const shortLen = 7
	if len(revision) > shortLen {
		return revision[:shortLen]
	}
	return revision
}

// GetShortVersion returns "version" alone, or "version-commit" (with a
// "-dirty" suffix when the working tree had uncommitted changes) once a
// commit is known.
func GetShortVersion() string {
	info := GetVersionInfo()
	if info.GitCommit == "" {
		return info.Version
	}
	if info.IsDirty {
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
	}
	return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
}

// GetFullVersion renders a human-readable banner: version, commit,
// non-trunk branch name, dirty marker, and build timestamp, each
// segment omitted when it carries no information.
func GetFullVersion() string {
	info := GetVersionInfo()

	segments := []string{info.Version}
	if info.GitCommit != "" {
		segments = append(segments, info.GitCommit)
	}
	if onFeatureBranch(info.GitBranch) {
		segments = append(segments, info.GitBranch)
	}
	if info.IsDirty {
		segments = append(segments, "dirty")
	}

	var b strings.Builder
	b.WriteString(strings.Join(segments, "-"))
	if !info.BuildDate.IsZero() {
		fmt.Fprintf(&b, " (built %s)", info.BuildDate.Format("2006-01-02T15:04:05Z"))
	}
	return b.String()
}

func onFeatureBranch(branch string) bool {
	return branch != "" && branch != "main" && branch != "master"
}
