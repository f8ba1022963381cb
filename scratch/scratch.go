// Package scratch manages the lifetime of the benchmark's scratch
// database file: allocation of a unique path and cleanup of the file and
// its write-ahead/shared-memory sidecars.
package scratch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// sidecarSuffixes are the write-ahead and shared-memory companions the
// engine may create next to the database file.
var sidecarSuffixes = []string{".wal", "-wal", "-shm"}

// DB is a handle to the benchmark database location. Only auto-allocated
// locations are ever deleted; an explicit path belongs to the caller.
type DB struct {
	Path string
	auto bool
}

// Acquire returns a database handle. With an explicit path the handle
// simply wraps it. With an empty path a fresh unique location is
// allocated under the OS temp directory; the engine creates the actual
// file on first use.
func Acquire(explicit string) (*DB, error) {
	if explicit != "" {
		return &DB{Path: explicit}, nil
	}

	path := filepath.Join(os.TempDir(),
		fmt.Sprintf("bsonbench-%s.duckdb", uuid.NewString()))

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("scratch path already occupied: %s", path)
	}

	return &DB{Path: path, auto: true}, nil
}

// Release finishes the database lifetime. With retain the location is
// logged and kept. Otherwise an auto-allocated database and its sidecar
// files are removed; removal errors are warnings only, since a cleanup
// problem must not mask benchmark results that were already produced.
func (d *DB) Release(logger *slog.Logger, retain bool) {
	if retain {
		logger.Info("database kept", slog.String("path", d.Path))

		return
	}

	if !d.auto {
		return
	}

	for _, path := range append([]string{d.Path}, d.sidecars()...) {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn("could not clean up scratch file",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (d *DB) sidecars() []string {
	paths := make([]string, len(sidecarSuffixes))
	for i, suffix := range sidecarSuffixes {
		paths[i] = d.Path + suffix
	}

	return paths
}
