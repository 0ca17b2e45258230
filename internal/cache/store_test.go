package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/planswitch/internal/fsops"
)

type encodingDoc struct {
	Encoding string `json:"encoding"`
}

type vendorDoc struct {
	IsLenovoSystem bool `json:"is_lenovo_system"`
}

type plansDoc struct {
	Plans map[string]struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	} `json:"plans"`
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(fsops.NewRealFS(), filepath.Join(dir, ".cache"))

	t.Run("encoding", func(t *testing.T) {
		in := encodingDoc{Encoding: "cp1252"}
		if err := store.Save(EncodingDoc, in); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		var out encodingDoc
		if err := store.Load(EncodingDoc, &out); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if out != in {
			t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
		}
	})

	t.Run("vendor detection false", func(t *testing.T) {
		in := vendorDoc{IsLenovoSystem: false}
		if err := store.Save(VendorDoc, in); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		out := vendorDoc{IsLenovoSystem: true}
		if err := store.Load(VendorDoc, &out); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if out != in {
			t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
		}
	})

	t.Run("non-ascii names are kept verbatim", func(t *testing.T) {
		raw := []byte(`{"plans": {"8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c": {"name": "Höchstleistung", "icon": "Images/high-performance.png"}}}`)
		if err := os.WriteFile(filepath.Join(store.Dir(), DefaultPlansDoc), raw, 0644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}
		var out plansDoc
		if err := store.Load(DefaultPlansDoc, &out); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got := out.Plans["8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c"].Name; got != "Höchstleistung" {
			t.Errorf("name = %q, want %q", got, "Höchstleistung")
		}
	})
}

func TestFileStore_LoadMiss(t *testing.T) {
	mem := fsops.NewMemFS()
	store := NewFileStore(mem, "/plugin/.cache")

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name:  "absent",
			setup: func() {},
		},
		{
			name: "corrupt json",
			setup: func() {
				mem.SetFile("/plugin/.cache/system_encoding.json", []byte(`{"encoding": `))
			},
		},
		{
			name: "unreadable",
			setup: func() {
				mem.ReadErr = fsops.ErrInjected
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer func() { mem.ReadErr = nil }()

			var doc encodingDoc
			err := store.Load(EncodingDoc, &doc)
			if !errors.Is(err, ErrMiss) {
				t.Errorf("Load error = %v, want ErrMiss", err)
			}
		})
	}
}

func TestFileStore_SaveFailure(t *testing.T) {
	mem := fsops.NewMemFS()
	mem.WriteErr = fsops.ErrInjected
	store := NewFileStore(mem, "/plugin/.cache")

	err := store.Save(EncodingDoc, encodingDoc{Encoding: "cp850"})
	if !errors.Is(err, fsops.ErrInjected) {
		t.Errorf("Save error = %v, want %v", err, fsops.ErrInjected)
	}
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	store := NewFileStore(fsops.NewMemFS(), "/plugin/.cache")

	if err := store.Save("../escape.json", encodingDoc{}); err == nil {
		t.Error("expected Save to reject a path-like name")
	}
	var doc encodingDoc
	if err := store.Load("../escape.json", &doc); !errors.Is(err, ErrMiss) {
		t.Errorf("Load error = %v, want ErrMiss", err)
	}
}

func TestClearAll(t *testing.T) {
	mem := fsops.NewMemFS()
	store := NewFileStore(mem, "/plugin/.cache")

	if err := store.Save(EncodingDoc, encodingDoc{Encoding: "cp850"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(VendorDoc, vendorDoc{IsLenovoSystem: true}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// default_plans.json was never written; clearing it must not fail
	if err := ClearAll(store); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	for _, name := range []string{EncodingDoc, DefaultPlansDoc, VendorDoc} {
		if exists, _ := mem.Exists(filepath.Join("/plugin/.cache", name)); exists {
			t.Errorf("%s should be gone", name)
		}
	}
}

// statFailFS fails every existence check.
type statFailFS struct {
	*fsops.MemFS
}

func (statFailFS) Exists(string) (bool, error) {
	return false, fsops.ErrInjected
}

func TestFileStore_ClearChecksExistence(t *testing.T) {
	mem := fsops.NewMemFS()
	mem.SetFile("/plugin/.cache/"+VendorDoc, []byte(`{"is_lenovo_system": true}`))

	store := NewFileStore(statFailFS{mem}, "/plugin/.cache")
	if err := store.Clear(VendorDoc); !errors.Is(err, fsops.ErrInjected) {
		t.Fatalf("Clear error = %v, want injected failure", err)
	}
	if _, err := mem.ReadFile("/plugin/.cache/" + VendorDoc); err != nil {
		t.Errorf("document removed despite failed check: %v", err)
	}

	// Missing documents are skipped without touching the backend
	if err := NewFileStore(mem, "/plugin/.cache").Clear(EncodingDoc); err != nil {
		t.Errorf("Clear of missing document failed: %v", err)
	}
}
