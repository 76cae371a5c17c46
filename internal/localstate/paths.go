// Package localstate resolves where momtrack keeps its on-disk state.
package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome     = "MOMTRACK_HOME" // override for tests
	dirName     = ".momtrack"     // default under $HOME
	dbFilename  = "meetings.db"
	exportsName = "exports"
)

// DataDir returns the directory where local state is stored (~/.momtrack).
// It creates the directory with 0700 permissions if it does not exist.
func DataDir() (string, error) {
	if custom := os.Getenv(envHome); custom != "" {
		if err := os.MkdirAll(custom, 0o700); err != nil {
			return "", err
		}
		return custom, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home: %w", err)
	}
	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DBPath returns the SQLite file backing the meetings storage slot
// inside a resolved data directory.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, dbFilename)
}

// ExportDir returns the directory under a resolved data directory where
// export files are written.
func ExportDir(dataDir string) string {
	return filepath.Join(dataDir, exportsName)
}
