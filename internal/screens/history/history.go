package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sandeepan/tutora/internal/router"
	"github.com/sandeepan/tutora/internal/screen"
	"github.com/sandeepan/tutora/internal/store"
	"github.com/sandeepan/tutora/internal/ui/layout"
	"github.com/sandeepan/tutora/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []store.ResultRecord
	Err     error
}

// HistoryScreen displays past quiz results.
type HistoryScreen struct {
	eventRepo store.EventRepo
	results   []store.ResultRecord
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return historyLoadedMsg{}
		}
		results, err := s.eventRepo.RecentResults(context.Background(), 50)
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.results = msg.Results
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		}
	}

	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading history..."))
	}
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Could not load history: "+s.errMsg))
	}
	if len(s.results) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No sessions yet. Finish a quiz to see it here."))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Past Sessions"))
	b.WriteString("\n\n")

	visible := height - 6
	if visible < 3 {
		visible = 3
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := start + visible
	if end > len(s.results) {
		end = len(s.results)
	}

	for i := start; i < end; i++ {
		r := s.results[i]
		b.WriteString(s.renderRow(r, i == s.selected, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *HistoryScreen) renderRow(r store.ResultRecord, selected bool, width int) string {
	tierStyle := lipgloss.NewStyle().Foreground(theme.Error)
	switch r.Tier {
	case "excellent":
		tierStyle = lipgloss.NewStyle().Foreground(theme.Success)
	case "good":
		tierStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	line := fmt.Sprintf("%s  %-14s %-24s %-12s %d/%d (%.1f%%)  ",
		r.Timestamp.Format("2006-01-02 15:04"),
		r.Subject, truncate(r.Topic, 24), r.Level, r.Score, r.Total, r.Percentage)

	prefix := "    "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "  ▸ "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	return prefix + style.Render(line) + tierStyle.Render(r.Tier)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
