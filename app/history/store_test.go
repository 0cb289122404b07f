package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempStore(t *testing.T, limit int) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	return NewStoreAt(path, limit), path
}

func assertEntries(t *testing.T, s *Store, want []string) {
	t.Helper()
	got := s.Entries()
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}
}

func TestRecordMRUOrder(t *testing.T) {
	s, _ := tempStore(t, 0)

	s.Record("$.a")
	assertEntries(t, s, []string{"$.a"})

	s.Record("$.b")
	assertEntries(t, s, []string{"$.b", "$.a"})

	// Re-recording an existing expression moves it to the front without
	// duplicating it.
	s.Record("$.a")
	assertEntries(t, s, []string{"$.a", "$.b"})
}

func TestRecordTrimsToLimit(t *testing.T) {
	s, _ := tempStore(t, 3)

	s.Record("$.a")
	s.Record("$.b")
	s.Record("$.c")
	s.Record("$.d")
	assertEntries(t, s, []string{"$.d", "$.c", "$.b"})
}

func TestRecordIgnoresEmpty(t *testing.T) {
	s, _ := tempStore(t, 0)
	s.Record("")
	assertEntries(t, s, nil)
}

func TestPersistAndReload(t *testing.T) {
	s, path := tempStore(t, 0)
	s.Record("$.a")
	s.Record("$.b")

	reloaded := NewStoreAt(path, 0)
	assertEntries(t, reloaded, []string{"$.b", "$.a"})
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStoreAt(filepath.Join(t.TempDir(), "nope.json"), 0)
	assertEntries(t, s, nil)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStoreAt(path, 0)
	assertEntries(t, s, nil)

	// Recording after a corrupt load rewrites the file cleanly.
	s.Record("$.a")
	reloaded := NewStoreAt(path, 0)
	assertEntries(t, reloaded, []string{"$.a"})
}

func TestLoadLegacyBareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte(`["$.b", "$.a"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStoreAt(path, 0)
	assertEntries(t, s, []string{"$.b", "$.a"})
}

func TestSaveWritesVersionedDocument(t *testing.T) {
	s, path := tempStore(t, 0)
	s.Record("$.a")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("history file not written: %v", err)
	}
	if !strings.Contains(string(data), `"version": 1`) {
		t.Fatalf("expected versioned document, got: %s", data)
	}
}
