package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// KV is the string-keyed storage substrate the engine persists into.
// Get returns nil (and no error) when the key was never written.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// JSONKV implements KV using a single JSON file holding all keys.
type JSONKV struct {
	path string

	mu sync.Mutex // serializes read-modify-write of the file
}

// NewJSONKV creates a new JSONKV backed by the given file path.
func NewJSONKV(path string) *JSONKV {
	return &JSONKV{path: path}
}

// Path returns the storage file path.
func (s *JSONKV) Path() string {
	return s.path
}

// Get reads the value stored under key.
// Returns nil if the file or the key does not exist.
func (s *JSONKV) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	return entries[key], nil
}

// Set writes the value under key, creating the directory and file as needed.
func (s *JSONKV) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[key] = json.RawMessage(value)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// read loads the whole file into a key map. Missing file yields an empty map.
func (s *JSONKV) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}

	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DefaultJSONPath returns the default storage path: ~/.config/ql/quicklinks.json
func DefaultJSONPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "ql", "quicklinks.json"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func OpenStorage() (KV, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	// If SQLite database exists, use it
	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteKV(sqlitePath)
	}

	// Fall back to JSON
	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return NewJSONKV(jsonPath), nil
}
