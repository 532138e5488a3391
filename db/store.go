package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store-related errors
var (
	ErrDuplicateID      = errors.New("document id already exists")
	ErrDocumentNotFound = errors.New("document not found")
)

// Document is one record stored under a collection. Typed models live at the
// service boundary; the store itself is schema-free.
type Document map[string]any

// Store is a single-file document database. The whole dataset is one JSON
// object mapping collection paths to collections of documents:
//
//	{ "<collection_path>": { "<doc_id>": { ... }, ... }, ... }
//
// It assumes a single writer: every mutation rewrites the entire file,
// last write wins. Callers hold an explicit handle; there is no package
// global.
type Store struct {
	path string
	data map[string]map[string]Document
}

// Open loads the store from the backing file. A missing, unreadable or
// corrupt file degrades to an empty store and is never surfaced as an error.
func Open(path string) *Store {
	s := &Store{
		path: path,
		data: make(map[string]map[string]Document),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Could not read data file %s, starting empty: %v", path, err)
		}
		return s
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		log.Printf("Could not parse data file %s, starting empty: %v", path, err)
		s.data = make(map[string]map[string]Document)
	}
	if s.data == nil {
		s.data = make(map[string]map[string]Document)
	}
	return s
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Save serializes the store and replaces the backing file. Writing goes
// through a temporary file followed by a rename so a failed write cannot
// leave a truncated file behind. On error the in-memory state is kept so the
// operation can be retried.
func (s *Store) Save() error {
	raw, err := json.MarshalIndent(s.data, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// EnsureCollection initializes an empty collection for the path and persists
// it, matching the first-run behavior of the original deployments.
func (s *Store) EnsureCollection(path string) error {
	if _, ok := s.data[path]; ok {
		return nil
	}
	s.data[path] = make(map[string]Document)
	return s.Save()
}

// Collection returns the documents stored under a path, or an empty map when
// the path is absent. The returned map is a copy; reading never creates the
// path as a side effect.
func (s *Store) Collection(path string) map[string]Document {
	out := make(map[string]Document, len(s.data[path]))
	for id, doc := range s.data[path] {
		out[id] = doc
	}
	return out
}

// Get returns a single document by collection path and id.
func (s *Store) Get(path, id string) (Document, bool) {
	doc, ok := s.data[path][id]
	return doc, ok
}

// Count returns the number of documents under a path.
func (s *Store) Count(path string) int {
	return len(s.data[path])
}

// Put creates a new document. An id collision is rejected with
// ErrDuplicateID before anything is mutated; the caller must pick a distinct
// id. The store is persisted on success.
func (s *Store) Put(path, id string, doc Document) error {
	if _, exists := s.data[path][id]; exists {
		return ErrDuplicateID
	}
	if s.data[path] == nil {
		s.data[path] = make(map[string]Document)
	}
	s.data[path][id] = doc
	return s.Save()
}

// Replace overwrites a document whole, creating it when absent. Used by the
// project tracker's create-or-update flow where the caller controls the id.
func (s *Store) Replace(path, id string, doc Document) error {
	if s.data[path] == nil {
		s.data[path] = make(map[string]Document)
	}
	s.data[path][id] = doc
	return s.Save()
}

// Update merges the supplied fields into an existing document. Untouched
// fields keep their prior values.
func (s *Store) Update(path, id string, fields Document) error {
	doc, ok := s.data[path][id]
	if !ok {
		return ErrDocumentNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return s.Save()
}

// Delete removes a document and persists the store. Deleting a missing id is
// a no-op reported as false, not an error.
func (s *Store) Delete(path, id string) (bool, error) {
	if _, ok := s.data[path][id]; !ok {
		return false, nil
	}
	delete(s.data[path], id)
	if err := s.Save(); err != nil {
		return false, err
	}
	return true, nil
}
