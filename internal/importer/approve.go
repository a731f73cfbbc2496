package importer

import (
	"fmt"

	"github.com/mgelashvili/hearth/internal/flagged"
	"github.com/mgelashvili/hearth/internal/ledger"
)

// Decision resolves one pending item: either a category or a skip.
// Index is 1-based, matching the numbering shown by the flagged list.
type Decision struct {
	Index    int
	Category string
	Skip     bool
}

// ApproveOutcome reports what a batch of decisions did.
type ApproveOutcome struct {
	Approved  []flagged.Item
	Skipped   []flagged.Item
	Remaining []flagged.Item

	// Warnings collects decisions that could not be applied (bad
	// index, unknown category); the rest of the batch still runs.
	Warnings []string
}

// Approve applies review decisions to the pending queue: approved
// items land in the expense log under their category, and the
// merchant mapping is learned for future imports.
func (s *Service) Approve(decisions []Decision) (*ApproveOutcome, error) {
	pending, err := s.flagged.Load()
	if err != nil {
		return nil, err
	}

	outcome := &ApproveOutcome{}
	resolved := make(map[int]bool)

	var toLog []ParsedTransaction

	for _, d := range decisions {
		idx := d.Index - 1
		if idx < 0 || idx >= len(pending) {
			outcome.Warnings = append(outcome.Warnings,
				fmt.Sprintf("index %d out of range (1-%d)", d.Index, len(pending)))

			continue
		}

		item := pending[idx]

		if d.Skip {
			resolved[idx] = true
			outcome.Skipped = append(outcome.Skipped, item)

			continue
		}

		category, ok := ledger.MatchCategory(d.Category)
		if !ok {
			outcome.Warnings = append(outcome.Warnings,
				fmt.Sprintf("unknown category %q", d.Category))

			continue
		}

		resolved[idx] = true
		outcome.Approved = append(outcome.Approved, item)

		toLog = append(toLog, ParsedTransaction{
			Date:        item.Date,
			Description: item.Description,
			Amount:      item.Amount,
			Currency:    item.Currency,
			Category:    category,
		})

		if item.Merchant != "" {
			if err := s.matching.Learn(item.Merchant, category); err != nil {
				return nil, err
			}
		}
	}

	if err := s.appendToLog(toLog); err != nil {
		return nil, err
	}

	var remaining []flagged.Item

	for i, item := range pending {
		if !resolved[i] {
			remaining = append(remaining, item)
		}
	}

	if err := s.flagged.Save(remaining); err != nil {
		return nil, err
	}

	outcome.Remaining = remaining

	return outcome, nil
}

// ApproveByKey resolves a single pending item by its dedup key,
// independent of queue position. Used by the interactive review.
func (s *Service) ApproveByKey(key, category string, skip bool) (*ApproveOutcome, error) {
	pending, err := s.flagged.Load()
	if err != nil {
		return nil, err
	}

	for i, item := range pending {
		if item.Key == key {
			return s.Approve([]Decision{{Index: i + 1, Category: category, Skip: skip}})
		}
	}

	return nil, fmt.Errorf("no pending item with key %s", key)
}
