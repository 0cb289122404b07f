// Package history persists a bounded most-recently-used list of JSONPath
// expressions across sessions.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultLimit is the number of expressions retained when no explicit limit
// is configured.
const DefaultLimit = 20

const historyFileName = ".qdevkit_jsonpath_history.json"

type historyFile struct {
	Version int      `json:"version"`
	History []string `json:"history"`
}

// Store holds the in-memory MRU list and its backing file. It is not safe
// for concurrent use; callers serialize access.
type Store struct {
	path    string
	limit   int
	entries []string
}

// NewStore opens the history store at its default location in the user's
// home directory.
func NewStore(limit int) (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(home, historyFileName), limit), nil
}

// NewStoreAt opens a history store backed by the given file. A missing or
// unreadable file yields an empty history rather than an error.
func NewStoreAt(path string, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	s := &Store{path: path, limit: limit}
	s.load()
	return s
}

// Entries returns the history from most to least recently used.
func (s *Store) Entries() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Record moves expr to the front of the list, dropping any earlier
// occurrence, and trims to the limit. Empty expressions are ignored.
func (s *Store) Record(expr string) {
	if expr == "" {
		return
	}
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e != expr {
			kept = append(kept, e)
		}
	}
	s.entries = append([]string{expr}, kept...)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
	s.save()
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.entries = nil
		return
	}

	var doc historyFile
	if err := json.Unmarshal(data, &doc); err == nil && doc.History != nil {
		s.entries = doc.History
		if len(s.entries) > s.limit {
			s.entries = s.entries[:s.limit]
		}
		return
	}

	// Older versions stored a bare JSON array.
	var bare []string
	if err := json.Unmarshal(data, &bare); err == nil {
		s.entries = bare
		if len(s.entries) > s.limit {
			s.entries = s.entries[:s.limit]
		}
		return
	}

	// Corrupt file. Start fresh; the next Record overwrites it.
	s.entries = nil
}

// save writes the history to disk. Write failures are swallowed; history is
// a convenience and must never block the filter itself.
func (s *Store) save() {
	doc := historyFile{Version: 1, History: s.entries}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}
