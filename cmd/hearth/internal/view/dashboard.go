package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgelashvili/hearth/internal/dashboard"
	"github.com/mgelashvili/hearth/internal/ledger"
)

type dashState int

const (
	dashStateBrowse dashState = iota
	dashStateDateFrom
	dashStateDateTo
)

var (
	pillActive = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("57")).
			Foreground(lipgloss.Color("229"))
	pillInactive = lipgloss.NewStyle().
			Padding(0, 1).
			Faint(true)
	pillCursor = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("205")).
			Foreground(lipgloss.Color("229")).
			Bold(true)
	totalsStyle = lipgloss.NewStyle().Bold(true)
)

// DashboardModel is the interactive filtered view over the
// consolidated document's expenses.
type DashboardModel struct {
	state *dashboard.State

	mode      dashState
	pillIdx   int
	table     table.Model
	dateInput textinput.Model
	status    string
}

func NewDashboardModel(expenses []ledger.Transaction) DashboardModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 40},
		{Title: "Amount", Width: 10},
		{Title: "Cur", Width: 5},
		{Title: "Category", Width: 14},
		{Title: "Type", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD"
	di.CharLimit = 10
	di.Width = 12

	m := DashboardModel{
		state:     dashboard.New(expenses),
		table:     t,
		dateInput: di,
	}
	m.refreshTable()

	return m
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	if m.mode != dashStateBrowse {
		return "Enter: apply | Esc: cancel"
	}

	return "Esc: back | left/right: select pill | Space: toggle | f/t: date from/to | r: reset"
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// pills returns the toggle row: every category present in the data
// followed by the three fixed types.
func (m DashboardModel) pills() []string {
	cats := m.state.Categories()

	out := make([]string, 0, len(cats)+len(ledger.Types))
	out = append(out, cats...)

	for _, t := range ledger.Types {
		out = append(out, string(t))
	}

	return out
}

func (m DashboardModel) pillOn(i int) bool {
	cats := m.state.Categories()
	if i < len(cats) {
		return m.state.CategoryActive(cats[i])
	}

	return m.state.TypeActive(ledger.Types[i-len(cats)])
}

func (m *DashboardModel) togglePill(i int) {
	cats := m.state.Categories()
	if i < len(cats) {
		m.state.ToggleCategory(cats[i])
		return
	}

	m.state.ToggleType(ledger.Types[i-len(cats)])
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(wsMsg.Height - 12)
		return m, nil
	}

	switch m.mode {
	case dashStateBrowse:
		return m.updateBrowse(msg)
	case dashStateDateFrom, dashStateDateTo:
		return m.updateDateInput(msg)
	}

	return m, nil
}

func (m DashboardModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "left":
			if m.pillIdx > 0 {
				m.pillIdx--
			}

			return m, nil
		case "right":
			if m.pillIdx < len(m.pills())-1 {
				m.pillIdx++
			}

			return m, nil
		case " ":
			m.togglePill(m.pillIdx)
			m.refreshTable()

			return m, nil
		case "r":
			m.state.Reset()
			m.status = "Filters reset."
			m.refreshTable()

			return m, nil
		case "f":
			return m.enterDateMode(dashStateDateFrom, m.state.DateFrom())
		case "t":
			return m.enterDateMode(dashStateDateTo, m.state.DateTo())
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m DashboardModel) enterDateMode(mode dashState, current string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.dateInput.SetValue(current)
	m.dateInput.Focus()
	m.table.Blur()

	return m, textinput.Blink
}

func (m DashboardModel) updateDateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.mode = dashStateBrowse
			m.dateInput.Blur()
			m.table.Focus()

			return m, nil
		case tea.KeyEnter:
			// Bounds are applied verbatim; an inverted range just
			// filters everything out.
			if m.mode == dashStateDateFrom {
				m.state.SetDateFrom(m.dateInput.Value())
			} else {
				m.state.SetDateTo(m.dateInput.Value())
			}

			m.mode = dashStateBrowse
			m.dateInput.Blur()
			m.table.Focus()
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)

	return m, cmd
}

func (m *DashboardModel) refreshTable() {
	filtered := dashboard.SortByDateDesc(m.state.Filtered())

	rows := make([]table.Row, 0, len(filtered))
	for _, e := range filtered {
		rows = append(rows, table.Row{
			e.Date,
			e.Description,
			FormatAmount(e.Amount),
			e.Currency,
			e.Category,
			string(e.Type),
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m DashboardModel) View() string {
	var pills []string

	for i, name := range m.pills() {
		style := pillInactive
		if m.pillOn(i) {
			style = pillActive
		}

		if i == m.pillIdx && m.mode == dashStateBrowse {
			style = pillCursor
		}

		pills = append(pills, style.Render(name))
	}

	pillRow := lipgloss.JoinHorizontal(lipgloss.Top, pills...)

	dates := fmt.Sprintf("[f] From: %s   [t] To: %s", m.state.DateFrom(), m.state.DateTo())
	if m.mode == dashStateDateFrom {
		dates = "From: " + m.dateInput.View()
	} else if m.mode == dashStateDateTo {
		dates = "To: " + m.dateInput.View()
	}

	var totals []string

	for _, t := range dashboard.Totals(m.state.Filtered()) {
		totals = append(totals, fmt.Sprintf("%s %.2f", t.Currency, t.Sum))
	}

	totalsLine := "Totals: none"
	if len(totals) > 0 {
		totalsLine = "Totals: " + strings.Join(totals, " | ")
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		pillRow,
		lipgloss.NewStyle().PaddingTop(1).Render(dates),
		totalsStyle.Render(totalsLine),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
