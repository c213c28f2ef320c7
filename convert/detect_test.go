package convert

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHasExtension(t *testing.T) {
	exts := []string{".odt", ".ott"}
	tests := []struct {
		path string
		want bool
	}{
		{"doc.odt", true},
		{"dir/DOC.ODT", true},
		{"template.ott", true},
		{"doc.docx", false},
		{"odt", false},
		{"doc.odt.bak", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := hasExtension(tt.path, exts); got != tt.want {
				t.Errorf("hasExtension(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("zip container", func(t *testing.T) {
		path := filepath.Join(dir, "doc.odt")
		sampleDocument(t, path)
		got, err := isArchiveFile(path)
		if err != nil {
			t.Fatalf("isArchiveFile() error = %v", err)
		}
		if !got {
			t.Error("isArchiveFile() = false, want true")
		}
	})

	t.Run("plain text", func(t *testing.T) {
		path := filepath.Join(dir, "fake.odt")
		if err := os.WriteFile(path, []byte("not a zip file"), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := isArchiveFile(path)
		if err != nil {
			t.Fatalf("isArchiveFile() error = %v", err)
		}
		if got {
			t.Error("isArchiveFile() = true, want false")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.odt")
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
		if got, err := isArchiveFile(path); err != nil || got {
			t.Errorf("isArchiveFile() = %v, %v, want false, nil", got, err)
		}
	})

	t.Run("nonexistent", func(t *testing.T) {
		if _, err := isArchiveFile(filepath.Join(dir, "missing.odt")); err == nil {
			t.Error("Expected error for non-existent file")
		}
	})
}
