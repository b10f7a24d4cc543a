package components

import (
	"strings"
	"testing"

	"github.com/sandeepan/tutora/internal/ui/theme"
)

func TestProgressBarView(t *testing.T) {
	p := NewProgressBar("Score", 0.825, true, 40)

	out := p.View()
	if !strings.Contains(out, "Score") {
		t.Errorf("view should include the label, got %q", out)
	}
	if !strings.Contains(out, "82.5%") {
		t.Errorf("view should include the percentage, got %q", out)
	}
}

func TestProgressBarZeroValueFill(t *testing.T) {
	// A zero-value bar has no fill color set and must fall back
	// to the theme default instead of panicking.
	p := ProgressBar{Percent: 0.5, Width: 20}

	out := p.View()
	if out == "" {
		t.Error("zero-value bar should still render")
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	over := ProgressBar{Percent: 1.5, Width: 20, Fill: theme.Success}
	under := ProgressBar{Percent: -0.2, Width: 20, Fill: theme.Error}

	if over.View() == "" || under.View() == "" {
		t.Error("out-of-range percentages should still render")
	}
}
