package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sandeepan/tutora/internal/ui/theme"
)

// OptionPicker lets the user move between answer options for a question.
// Scoring happens elsewhere; after the answer is graded the picker is put
// into reveal mode so it can color the chosen and correct options.
type OptionPicker struct {
	Question string
	Options  []string
	Selected int

	Revealed     bool
	ChosenIndex  int
	CorrectIndex int
}

// NewOptionPicker creates a picker over the given options.
func NewOptionPicker(question string, options []string) OptionPicker {
	return OptionPicker{
		Question:     question,
		Options:      options,
		Selected:     0,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Init returns nil.
func (p OptionPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Input is ignored in reveal mode.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	if p.Revealed {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// Value returns the text of the highlighted option, or "" when there are
// no options.
func (p OptionPicker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// Reveal freezes the picker and marks the answer text so View can color
// the chosen and correct rows.
func (p *OptionPicker) Reveal(answer string) {
	p.Revealed = true
	p.ChosenIndex = p.Selected
	for i, opt := range p.Options {
		if opt == answer {
			p.CorrectIndex = i
			break
		}
	}
}

// View renders the question and its options.
func (p OptionPicker) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(p.Question) + "\n\n"

	for i, opt := range p.Options {
		label := optionLabel(i)
		prefix := "  "
		if i == p.Selected && !p.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if p.Revealed {
			switch i {
			case p.CorrectIndex:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case p.ChosenIndex:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == p.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}
