package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestGetFileStats(t *testing.T) {
	s := &Storage{}
	content := "<svg xmlns=\"http://www.w3.org/2000/svg\"/>"
	path := writeFixture(t, "sample.svg", content)

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() failed: %v", err)
	}
	if stats.SizeBytes != int64(len(content)) {
		t.Errorf("SizeBytes = %d, want %d", stats.SizeBytes, len(content))
	}
	if stats.ModTime.IsZero() {
		t.Error("ModTime is zero")
	}
}

func TestGetFileStatsMissing(t *testing.T) {
	s := &Storage{}
	if _, err := s.GetFileStats(filepath.Join(t.TempDir(), "nope.svg")); err == nil {
		t.Error("GetFileStats() succeeded on missing file, want error")
	}
}

func TestSaveAndReadFile(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "report.md")

	if err := s.SaveFile(path, []byte("# report\n")); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}
	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "# report\n" {
		t.Errorf("ReadFile() = %q", data)
	}
}

func TestHasFile(t *testing.T) {
	s := &Storage{}
	path := writeFixture(t, "present.svg", "<svg/>")

	if !s.HasFile(path) {
		t.Error("HasFile() = false for existing file")
	}
	if s.HasFile(filepath.Join(t.TempDir(), "absent.svg")) {
		t.Error("HasFile() = true for missing file")
	}
}
