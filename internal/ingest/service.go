package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mgelashvili/hearth/internal/ledger"
)

// Transform merges the parsed expense log with the two structured
// snapshots into the consolidated document. Pure and order-preserving:
// transaction order matches log order, snapshot sequences pass through
// untouched.
func Transform(logText string, accounts ledger.AccountsSnapshot, income ledger.IncomeSnapshot) ledger.Document {
	return ledger.Document{
		Expenses: ledger.ParseTransactions(logText),
		Accounts: accounts,
		Income:   income,
	}
}

// Service runs the ingest batch: three reads, one write. Any read or
// deserialization error aborts the run before anything is written.
type Service struct {
	expensesPath string
	accountsPath string
	incomePath   string
	outPath      string
}

func NewService(expensesPath, accountsPath, incomePath, outPath string) *Service {
	return &Service{
		expensesPath: expensesPath,
		accountsPath: accountsPath,
		incomePath:   incomePath,
		outPath:      outPath,
	}
}

// Load performs the three source reads and the merge without writing
// anything.
func (s *Service) Load() (ledger.Document, error) {
	logText, err := os.ReadFile(s.expensesPath)
	if err != nil {
		return ledger.Document{}, fmt.Errorf("reading expense log: %w", err)
	}

	var accounts ledger.AccountsSnapshot
	if err := readJSON(s.accountsPath, &accounts); err != nil {
		return ledger.Document{}, fmt.Errorf("reading accounts snapshot: %w", err)
	}

	var income ledger.IncomeSnapshot
	if err := readJSON(s.incomePath, &income); err != nil {
		return ledger.Document{}, fmt.Errorf("reading income snapshot: %w", err)
	}

	return Transform(string(logText), accounts, income), nil
}

// Run is the full batch: Load plus the single artifact write.
func (s *Service) Run() (ledger.Document, error) {
	doc, err := s.Load()
	if err != nil {
		return ledger.Document{}, err
	}

	if err := WriteDocument(s.outPath, doc); err != nil {
		return ledger.Document{}, err
	}

	return doc, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

// WriteDocument serializes the consolidated document. Identical inputs
// produce identical bytes: slices keep source order and encoding/json
// sorts the rates map keys.
func WriteDocument(path string, doc ledger.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	return nil
}

// ReadDocument loads a consolidated document written by WriteDocument.
func ReadDocument(path string) (ledger.Document, error) {
	var doc ledger.Document
	if err := readJSON(path, &doc); err != nil {
		return ledger.Document{}, fmt.Errorf("reading consolidated document: %w", err)
	}

	return doc, nil
}
