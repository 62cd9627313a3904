package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore implements Store over a single YAML file holding a flat
// string-to-string mapping. The whole file is rewritten on every mutation via
// a temp file and rename, so readers never observe a partial write.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// OpenFileStore loads the store at path. A missing file yields an empty
// store. If the file exists but cannot be parsed, an empty store is returned
// together with the parse error so the caller can log it and continue; the
// broken file is overwritten on the next Set.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read store file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		s.data = make(map[string]string)
		return s, fmt.Errorf("parse store yaml: %w", err)
	}
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	return s.SetAll(map[string]string{key: value})
}

func (s *FileStore) SetAll(pairs map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range pairs {
		s.data[k] = v
	}
	return s.flush()
}

// flush serializes the mapping and replaces the backing file atomically.
// Caller must hold s.mu.
func (s *FileStore) flush() error {
	serialized, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("marshal store yaml: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(serialized); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close store file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
