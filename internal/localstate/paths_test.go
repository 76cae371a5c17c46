package localstate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirHonorsEnvOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	t.Setenv("MOMTRACK_HOME", dir)

	got, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if got != dir {
		t.Fatalf("DataDir = %q, want %q", got, dir)
	}
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		t.Fatalf("data dir not created: %v", err)
	}
}

func TestDerivedPaths(t *testing.T) {
	if got := DBPath("/data"); got != filepath.Join("/data", "meetings.db") {
		t.Fatalf("DBPath = %q", got)
	}
	if got := ExportDir("/data"); got != filepath.Join("/data", "exports") {
		t.Fatalf("ExportDir = %q", got)
	}
}
