package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps the whole key space in one JSON file. Writes go through a
// temp file + rename so a crash mid-write never leaves a torn file behind.
type JSONStore struct {
	path string
	keys map[string]string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("%w at %s", ErrAlreadyInitialized, s.path)
	}

	s.keys = make(map[string]string)
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.keys = make(map[string]string)
	if err := json.Unmarshal(data, &s.keys); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.keys, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write-then-rename keeps the per-key atomicity contract for readers in
	// other processes.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.keys == nil {
		return "", false, ErrNotLoaded
	}
	value, ok := s.keys[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.keys == nil {
		return ErrNotLoaded
	}
	s.keys[key] = value
	return s.save()
}

func (s *JSONStore) Remove(key string) error {
	if s.keys == nil {
		return ErrNotLoaded
	}
	if _, ok := s.keys[key]; !ok {
		return nil
	}
	delete(s.keys, key)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
