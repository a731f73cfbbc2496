package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mgelashvili/hearth/cmd/hearth/internal/view"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			doc, err := app.ingest.Load()
			if err != nil {
				return err
			}

			m := tuiModel{
				app:           app,
				currentScreen: screenMenu,
				dashboard:     view.NewDashboardModel(doc.Expenses),
			}

			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return err
			}

			return nil
		},
	}
}

type screen int

const (
	screenMenu screen = iota
	screenDashboard
	screenReview
)

type tuiModel struct {
	app *app

	currentScreen screen

	dashboard view.DashboardModel
	review    view.ReviewModel
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentScreen == screenMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentScreen = screenDashboard
				return m, m.dashboard.Init()
			case "2":
				m.currentScreen = screenReview
				m.review = view.NewReviewModel(m.app.importSvc, m.app.flagged)

				return m, m.review.Init()
			}
		}
	case view.BackMsg:
		m.currentScreen = screenMenu
		return m, nil
	}

	switch m.currentScreen {
	case screenDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboard.Update(msg)
		m.dashboard = newModel.(view.DashboardModel)
	case screenReview:
		var newModel tea.Model
		newModel, cmd = m.review.Update(msg)
		m.review = newModel.(view.ReviewModel)
	}

	return m, cmd
}

func (m tuiModel) View() string {
	switch m.currentScreen {
	case screenMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.app.cfg.App.Name + "\n\n" +
				"1. Dashboard\n" +
				"2. Review Flagged\n\n" +
				"q. Quit",
		)
	case screenDashboard:
		return m.dashboard.View()
	case screenReview:
		return m.review.View()
	}

	return "Unknown View"
}
