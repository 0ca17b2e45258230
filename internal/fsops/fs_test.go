package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		wantError bool
	}{
		{name: "plain json file", file: "default_plans.json", wantError: false},
		{name: "dotted name", file: ".planswitch.log", wantError: false},
		{name: "empty", file: "", wantError: true},
		{name: "current directory", file: ".", wantError: true},
		{name: "parent directory", file: "..", wantError: true},
		{name: "forward slash", file: "a/b.json", wantError: true},
		{name: "backslash", file: `a\b.json`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.file)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateFileName(%q) error = %v, wantError %v", tt.file, err, tt.wantError)
			}
		})
	}
}

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "present.json")
	if err := os.WriteFile(existing, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", existing, true},
		{"existing directory", tmpDir, true},
		{"missing file", filepath.Join(tmpDir, "missing.json"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.Exists(tt.path)
			if err != nil {
				t.Fatalf("Exists(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRealFS_AtomicWrite(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	t.Run("write to new file in missing directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, ".cache", "system_encoding.json")
		content := []byte(`{"encoding": "cp850"}`)

		if err := fs.AtomicWrite(testFile, content, 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		readContent, err := os.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(readContent) != string(content) {
			t.Errorf("File content mismatch: got %q, want %q", readContent, content)
		}
	})

	t.Run("overwrite existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "overwrite.json")
		if err := os.WriteFile(testFile, []byte("initial"), 0644); err != nil {
			t.Fatalf("failed to create initial file: %v", err)
		}

		newContent := []byte("overwritten")
		if err := fs.AtomicWrite(testFile, newContent, 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		readContent, err := fs.ReadFile(testFile)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(readContent) != string(newContent) {
			t.Errorf("File content not updated: got %q, want %q", readContent, newContent)
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := filepath.Join(tmpDir, "clean")
		if err := fs.AtomicWrite(filepath.Join(dir, "a.json"), []byte("a"), 0644); err != nil {
			t.Fatalf("AtomicWrite failed: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read dir: %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".planswitch-tmp-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
		if len(entries) != 1 {
			t.Errorf("expected exactly one file, got %d", len(entries))
		}
	})
}

func TestRealFS_Remove(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "remove.json")
	if err := os.WriteFile(testFile, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	if err := fs.Remove(testFile); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if exists, _ := fs.Exists(testFile); exists {
		t.Error("file should not exist after Remove")
	}

	err := fs.Remove(testFile)
	if !os.IsNotExist(err) {
		t.Errorf("Remove on missing file: got %v, want not-exist error", err)
	}
}

func TestMemFS(t *testing.T) {
	m := NewMemFS()

	if _, err := m.ReadFile("/cache/a.json"); !os.IsNotExist(err) {
		t.Fatalf("ReadFile on empty MemFS: got %v, want not-exist error", err)
	}

	if err := m.AtomicWrite("/cache/a.json", []byte("one"), 0644); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}
	got, err := m.ReadFile("/cache/a.json")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "one" {
		t.Errorf("ReadFile = %q, want %q", got, "one")
	}
	if m.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", m.Writes())
	}

	m.WriteErr = ErrInjected
	if err := m.AtomicWrite("/cache/a.json", []byte("two"), 0644); !errors.Is(err, ErrInjected) {
		t.Errorf("AtomicWrite with WriteErr: got %v, want %v", err, ErrInjected)
	}
	got, _ = m.ReadFile("/cache/a.json")
	if string(got) != "one" {
		t.Errorf("failed write must not change contents, got %q", got)
	}

	if err := m.Remove("/cache/a.json"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if exists, _ := m.Exists("/cache/a.json"); exists {
		t.Error("file should not exist after Remove")
	}
}
