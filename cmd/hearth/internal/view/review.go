package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgelashvili/hearth/internal/flagged"
	"github.com/mgelashvili/hearth/internal/importer"
	"github.com/mgelashvili/hearth/internal/ledger"
)

const skipOption = "skip"

// ReviewModel walks the flagged-import queue one item at a time,
// assigning a category (learned for future imports) or discarding.
type ReviewModel struct {
	importSvc *importer.Service
	store     *flagged.Store

	queue      []flagged.Item
	current    *flagged.Item
	totalCount int

	form       *huh.Form
	formChoice string

	status  string
	loading bool
}

func NewReviewModel(importSvc *importer.Service, store *flagged.Store) ReviewModel {
	return ReviewModel{
		importSvc: importSvc,
		store:     store,
		loading:   true,
	}
}

func (m ReviewModel) Title() string { return "Review Flagged" }

func (m ReviewModel) ShortHelp() string {
	return "Enter: confirm | Esc: back"
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadQueueCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadQueueMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.queue = msg.items
		m.totalCount = len(m.queue)

		if m.totalCount == 0 {
			m.status = "No flagged items."
			return m, nil
		}

		return m.nextItem()

	case approveResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		return m.nextItem()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	// Drop the form so a stray message cannot resubmit the decision
	// while the save is in flight.
	approve := m.approveCmd()
	m.form = nil
	m.status = "Saving..."

	return m, approve
}

func (m ReviewModel) nextItem() (tea.Model, tea.Cmd) {
	if len(m.queue) == 0 {
		m.current = nil
		m.form = nil
		m.status = "All items reviewed."

		return m, nil
	}

	item := m.queue[0]
	m.queue = m.queue[1:]
	m.current = &item
	m.formChoice = ""
	m.status = fmt.Sprintf("Reviewing %d/%d", m.totalCount-len(m.queue), m.totalCount)

	options := make([]huh.Option[string], 0, len(ledger.Categories)+1)
	for _, c := range ledger.Categories {
		options = append(options, huh.NewOption(c, c))
	}

	options = append(options, huh.NewOption("Skip (discard)", skipOption))

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(options...).
				Value(&m.formChoice),
		),
	).WithWidth(40).WithShowHelp(false)

	return m, m.form.Init()
}

func (m ReviewModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading flagged items...")
	}

	if m.current == nil || m.form == nil {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\n(Esc to back)")
	}

	info := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(fmt.Sprintf(
			"Date: %s  |  Amount: %.2f %s  |  [%s]\n%s",
			m.current.Date,
			m.current.Amount,
			m.current.Currency,
			m.current.Flag,
			m.current.Description,
		))

	return lipgloss.NewStyle().Padding(1).Render(
		m.status + "\n" + info + "\n" + m.form.View(),
	)
}

// Messages

type loadQueueMsg struct {
	items []flagged.Item
	err   error
}

func (m ReviewModel) loadQueueCmd() tea.Cmd {
	return func() tea.Msg {
		items, err := m.store.Load()
		return loadQueueMsg{items: items, err: err}
	}
}

type approveResultMsg struct {
	err error
}

func (m ReviewModel) approveCmd() tea.Cmd {
	key := m.current.Key
	choice := m.formChoice
	svc := m.importSvc

	return func() tea.Msg {
		_, err := svc.ApproveByKey(key, choice, choice == skipOption)
		return approveResultMsg{err: err}
	}
}
