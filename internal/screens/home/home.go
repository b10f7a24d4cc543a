package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sandeepan/tutora/internal/catalog"
	"github.com/sandeepan/tutora/internal/content"
	"github.com/sandeepan/tutora/internal/router"
	"github.com/sandeepan/tutora/internal/screen"
	"github.com/sandeepan/tutora/internal/screens/history"
	"github.com/sandeepan/tutora/internal/screens/learn"
	"github.com/sandeepan/tutora/internal/store"
	"github.com/sandeepan/tutora/internal/ui/components"
	"github.com/sandeepan/tutora/internal/ui/layout"
	"github.com/sandeepan/tutora/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	lastResult *store.ResultRecord
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *content.Service, eventRepo store.EventRepo, cat catalog.Catalog) *HomeScreen {
	var last *store.ResultRecord
	if eventRepo != nil {
		if recent, err := eventRepo.RecentResults(context.Background(), 1); err == nil && len(recent) > 0 {
			last = &recent[0]
		}
	}

	items := []components.MenuItem{
		{Label: "START LEARNING", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: learn.New(svc, eventRepo, cat)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		lastResult: last,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "ctrl+c":
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, welcomeBanner(width))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	if h.lastResult != nil {
		r := h.lastResult
		line := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Last session: %s · %s · %d/%d (%.1f%%)",
				r.Subject, r.Topic, r.Score, r.Total, r.Percentage))
		sections = append(sections, "")
		sections = append(sections, line)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func welcomeBanner(width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Welcome back!")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Pick a subject, get a lesson, test yourself.")
	return title + "\n" + subtitle
}
