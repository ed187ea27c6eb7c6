package jsonstore

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"oliadmin/pkg/logger"
)

// Store persists named collections and documents as JSON files in a single
// directory. Collections are wrapped in an envelope object keyed by the
// collection name ({"products": [...]}), documents are stored bare.
//
// A missing or unreadable file loads as empty: the caller keeps working and
// the defect surfaces, at worst, as a detectable diff at the next checkpoint.
//
// The store carries the coarse lock that serializes read-modify-write cycles
// and commits. Load/Save do not take it themselves so that a caller can hold
// it across a whole cycle; use Lock/Unlock (Store implements sync.Locker).
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Lock()   { s.mu.Lock() }
func (s *Store) Unlock() { s.mu.Unlock() }

// LoadCollection reads the named collection into out, which must be a
// pointer to a slice. On any read or parse failure out is left empty.
func (s *Store) LoadCollection(name string, out interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("jsonstore: cannot read %s: %v", s.path(name), err)
		}
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		logger.Warn("jsonstore: corrupt collection file %s: %v", s.path(name), err)
		return nil
	}

	raw, ok := envelope[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("jsonstore: corrupt records in %s: %v", s.path(name), err)
		return nil
	}
	return nil
}

// SaveCollection rewrites the named collection file in full.
func (s *Store) SaveCollection(name string, records interface{}) error {
	return s.write(name, map[string]interface{}{name: records})
}

// LoadDocument reads a bare JSON document into out. Out is left untouched on
// a missing or corrupt file, so callers pre-fill it with defaults.
func (s *Store) LoadDocument(name string, out interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("jsonstore: cannot read %s: %v", s.path(name), err)
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("jsonstore: corrupt document file %s: %v", s.path(name), err)
	}
	return nil
}

// SaveDocument rewrites a bare JSON document in full.
func (s *Store) SaveDocument(name string, doc interface{}) error {
	return s.write(name, doc)
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) write(name string, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	// Keep unicode text (category icons, accented names) readable in diffs.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}

	// Full rewrite through a temp file so a crash mid-write cannot leave a
	// truncated collection behind.
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(name))
}
