// Package version exposes build metadata for the textpipe binary: the
// release tag, VCS commit/branch, and build timestamp, resolved either
// from -ldflags set at compile time or, failing that, from the Go
// toolchain's embedded module build info.
//
// A release build stamps the four linker variables directly:
//
//	go build -ldflags "-X github.com/kbukum/textpipe/internal/version.Version=1.2.0 \
//	  -X github.com/kbukum/textpipe/internal/version.GitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/kbukum/textpipe/internal/version.GitBranch=$(git branch --show-current) \
//	  -X github.com/kbukum/textpipe/internal/version.BuildTime=$(date -u +%FT%TZ)"
//
// A plain "go run"/"go install" without those flags falls back to the
// vcs.* settings runtime/debug.ReadBuildInfo reports for the module,
// so `--version` is never blank in a dev checkout.
package version
