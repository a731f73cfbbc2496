// Package flagged persists imported transactions that could not be
// categorized automatically, plus the dedup key set that keeps
// re-imported statements from duplicating expenses.
package flagged

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Item is one transaction awaiting manual review.
type Item struct {
	Key         string  `json:"key"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Flag        string  `json:"flag"`
	Merchant    string  `json:"merchant,omitempty"`
}

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the pending items; a missing file means none.
func (s *Store) Load() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading flagged items: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding flagged items: %w", err)
	}

	return items, nil
}

func (s *Store) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding flagged items: %w", err)
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing flagged items: %w", err)
	}

	return nil
}

// Keys is the set of dedup keys of every transaction ever imported,
// one key per line.
type Keys struct {
	path string
}

func NewKeys(path string) *Keys {
	return &Keys{path: path}
}

func (k *Keys) Load() (map[string]bool, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}

		return nil, fmt.Errorf("reading dedup keys: %w", err)
	}

	keys := make(map[string]bool)

	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line != "" {
			keys[line] = true
		}
	}

	return keys, nil
}

func (k *Keys) Save(keys map[string]bool) error {
	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}

	sort.Strings(sorted)

	data := strings.Join(sorted, "\n") + "\n"
	if err := os.WriteFile(k.path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing dedup keys: %w", err)
	}

	return nil
}
