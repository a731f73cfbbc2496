// Package store persists the learned merchant map as a JSON file
// (lowercased merchant pattern -> category).
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// FindMatch returns the learned category whose pattern occurs in the
// merchant name. The longest pattern wins, so a specific mapping beats
// a generic one.
func (s *Store) FindMatch(merchant string) (string, error) {
	mappings, err := s.load()
	if err != nil {
		return "", err
	}

	name := strings.ToLower(merchant)

	best := ""
	bestLen := 0

	for pattern, category := range mappings {
		if len(pattern) > bestLen && strings.Contains(name, pattern) {
			best = category
			bestLen = len(pattern)
		}
	}

	return best, nil
}

func (s *Store) CreateMapping(merchant, category string) error {
	mappings, err := s.load()
	if err != nil {
		return err
	}

	mappings[strings.ToLower(strings.TrimSpace(merchant))] = category

	data, err := json.MarshalIndent(mappings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding merchant map: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing merchant map: %w", err)
	}

	return nil
}

// load returns an empty map when the file does not exist yet.
func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}

		return nil, fmt.Errorf("reading merchant map: %w", err)
	}

	mappings := make(map[string]string)
	if err := json.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("decoding merchant map: %w", err)
	}

	return mappings, nil
}
