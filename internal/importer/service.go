package importer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/mgelashvili/hearth/internal/flagged"
	"github.com/mgelashvili/hearth/internal/ledger"
	"github.com/mgelashvili/hearth/internal/matching"
)

// Service runs the full import pipeline: parse a bank export, drop
// rows seen in earlier imports, categorize what it can, append those
// to the expense log and queue the rest for review.
type Service struct {
	importers map[Bank]Importer

	matching     *matching.Service
	flagged      *flagged.Store
	dedup        *flagged.Keys
	expensesPath string
}

func NewService(importers map[Bank]Importer, matchSvc *matching.Service, flaggedStore *flagged.Store, dedup *flagged.Keys, expensesPath string) *Service {
	return &Service{
		importers:    importers,
		matching:     matchSvc,
		flagged:      flaggedStore,
		dedup:        dedup,
		expensesPath: expensesPath,
	}
}

// Result summarizes one import run.
type Result struct {
	Parsed     int
	Duplicates int

	// Saved are the auto-categorized rows appended to the log.
	Saved []ParsedTransaction

	// NewlyFlagged are the rows queued for review by this run;
	// Pending is the whole review queue afterwards.
	NewlyFlagged []flagged.Item
	Pending      []flagged.Item
}

func (s *Service) Import(bank Bank, r io.Reader) (*Result, error) {
	imp, ok := s.importers[bank]
	if !ok {
		return nil, fmt.Errorf("unknown bank: %s", bank)
	}

	txs, err := imp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s export: %w", bank, err)
	}

	result := &Result{Parsed: len(txs)}

	keys, err := s.dedup.Load()
	if err != nil {
		return nil, err
	}

	var fresh []ParsedTransaction

	for _, tx := range txs {
		if keys[tx.DedupKey] {
			result.Duplicates++
			continue
		}

		fresh = append(fresh, tx)
	}

	if len(fresh) == 0 {
		return result, nil
	}

	for i := range fresh {
		s.categorize(imp, &fresh[i])
	}

	var auto []ParsedTransaction

	var review []ParsedTransaction

	for _, tx := range fresh {
		if tx.Flag == FlagNone {
			auto = append(auto, tx)
		} else {
			review = append(review, tx)
		}
	}

	if err := s.appendToLog(auto); err != nil {
		return nil, err
	}

	result.Saved = auto

	pending, newItems, err := s.queueForReview(review)
	if err != nil {
		return nil, err
	}

	result.NewlyFlagged = newItems
	result.Pending = pending

	// Every parsed row counts as seen, flagged ones included; review
	// resolves them from the queue, not from a re-import.
	for _, tx := range fresh {
		keys[tx.DedupKey] = true
	}

	if err := s.dedup.Save(keys); err != nil {
		return nil, err
	}

	return result, nil
}

// categorize fills in the category of a payment row: learned merchant
// map first, then the bank's rule tables. Rows that stay uncategorized
// are flagged for review.
func (s *Service) categorize(imp Importer, tx *ParsedTransaction) {
	if tx.Flag != FlagNone || tx.Category != "" {
		return
	}

	if tx.Merchant != "" {
		if learned, err := s.matching.Suggest(tx.Merchant); err == nil && learned != "" {
			tx.Category = learned
			return
		}
	}

	if cat, ok := imp.Categorize(*tx); ok {
		tx.Category = cat
		return
	}

	tx.Flag = FlagUnknown
}

// appendToLog writes auto-categorized rows to the expense log in date
// order, creating the file with its header line when needed.
func (s *Service) appendToLog(txs []ParsedTransaction) error {
	if len(txs) == 0 {
		return nil
	}

	sorted := make([]ParsedTransaction, len(txs))
	copy(sorted, txs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	_, statErr := os.Stat(s.expensesPath)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.expensesPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening expense log: %w", err)
	}
	defer f.Close()

	if newFile {
		if _, err := fmt.Fprintln(f, ledger.FormatLine(ledger.LogHeader, headerRecord())); err != nil {
			return fmt.Errorf("writing log header: %w", err)
		}
	}

	for _, tx := range sorted {
		rec := ledger.Record{
			"date":        tx.Date,
			"description": tx.Description,
			"amount":      strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			"currency":    tx.Currency,
			"category":    tx.Category,
		}

		if _, err := fmt.Fprintln(f, ledger.FormatLine(ledger.LogHeader, rec)); err != nil {
			return fmt.Errorf("appending to expense log: %w", err)
		}
	}

	return nil
}

func headerRecord() ledger.Record {
	rec := make(ledger.Record, len(ledger.LogHeader))
	for _, name := range ledger.LogHeader {
		rec[name] = name
	}

	return rec
}

// queueForReview merges new flagged rows into the stored queue,
// skipping ones already queued.
func (s *Service) queueForReview(txs []ParsedTransaction) ([]flagged.Item, []flagged.Item, error) {
	pending, err := s.flagged.Load()
	if err != nil {
		return nil, nil, err
	}

	queued := make(map[string]bool, len(pending))
	for _, item := range pending {
		queued[item.Key] = true
	}

	var added []flagged.Item

	for _, tx := range txs {
		if queued[tx.DedupKey] {
			continue
		}

		item := flagged.Item{
			Key:         tx.DedupKey,
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount,
			Currency:    tx.Currency,
			Flag:        string(tx.Flag),
			Merchant:    tx.Merchant,
		}

		pending = append(pending, item)
		added = append(added, item)
	}

	if err := s.flagged.Save(pending); err != nil {
		return nil, nil, err
	}

	return pending, added, nil
}
