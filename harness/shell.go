package harness

import "os"

// shellCandidates are the common build locations of the duckdb shell,
// checked in preference order.
var shellCandidates = []string{
	"build/reldebug/duckdb",
	"build/release/duckdb",
	"build/debug/duckdb",
	"./duckdb",
}

// FindShell looks for a built duckdb shell in the usual build
// directories and returns its path, or "" when none is found.
func FindShell() string {
	for _, candidate := range shellCandidates {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		if info.Mode().Perm()&0o111 != 0 {
			return candidate
		}
	}

	return ""
}
