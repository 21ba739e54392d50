// Package buildinfo carries the version identifiers stamped in at build
// time via -ldflags.
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns a compact identifier for the window title and CLI version
// output: the release version when stamped, the commit otherwise.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}
