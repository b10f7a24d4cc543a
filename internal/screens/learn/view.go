package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sandeepan/tutora/internal/markdown"
	sess "github.com/sandeepan/tutora/internal/session"
	"github.com/sandeepan/tutora/internal/ui/components"
	"github.com/sandeepan/tutora/internal/ui/theme"
)

func (l *LearnScreen) View(width, height int) string {
	if l.state.Loading {
		return l.renderLoading(width, height)
	}

	switch l.state.Screen {
	case sess.ScreenLesson:
		return l.renderLesson(width, height)
	case sess.ScreenQuiz:
		return l.renderQuiz(width, height)
	case sess.ScreenResult:
		return l.renderResult(width, height)
	default:
		return l.renderSetup(width, height)
	}
}

func (l *LearnScreen) renderLoading(width, height int) string {
	what := "lesson"
	if l.state.Screen == sess.ScreenLesson {
		what = "quiz"
	}
	msg := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Generating your %s...", what))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func (l *LearnScreen) renderSetup(width, height int) string {
	subjects := l.cat.SubjectNames()

	var b strings.Builder

	b.WriteString(theme.Title.Render("Set up your session"))
	b.WriteString("\n\n")

	b.WriteString(l.renderChooser("Subject", valueAt(subjects, l.subjectIdx), l.focus == focusSubject))
	b.WriteString("\n")

	topicLabel := lipgloss.NewStyle().Foreground(theme.Text).Render("  Topic    ")
	if l.focus == focusTopic {
		topicLabel = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ Topic    ")
	}
	b.WriteString(topicLabel + l.topic.View())
	b.WriteString("\n")

	b.WriteString(l.renderChooser("Level", valueAt(l.cat.Levels, l.levelIdx), l.focus == focusLevel))
	b.WriteString("\n\n")

	// Topic ideas for the chosen subject.
	if topics := l.cat.Topics(valueAt(subjects, l.subjectIdx)); len(topics) > 0 {
		b.WriteString(theme.Hint.Render("Ideas: " + strings.Join(topics, ", ")))
		b.WriteString("\n")
	}

	if l.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(l.errMsg))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderChooser draws one up/down cycle field of the setup form.
func (l *LearnScreen) renderChooser(label, value string, focused bool) string {
	prefix := "  "
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if focused {
		prefix = "▸ "
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		valueStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return labelStyle.Render(fmt.Sprintf("%s%-9s", prefix, label)) +
		valueStyle.Render("◂ "+value+" ▸")
}

func (l *LearnScreen) renderLesson(width, height int) string {
	lesson := l.state.Lesson
	if lesson == nil {
		return ""
	}

	contentWidth := min(width-8, 90)
	if l.renderedLesson == "" || l.renderedWidth != contentWidth {
		r, err := markdown.NewRenderer(contentWidth)
		if err != nil {
			l.renderedLesson = lesson.Markdown
		} else {
			l.renderedLesson = r.Render(lesson.Markdown)
		}
		l.renderedWidth = contentWidth
	}

	var b strings.Builder

	title := lesson.Title
	if title == "" && l.state.Selections != nil {
		title = l.state.Selections.Topic
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n")
	if l.state.Selections != nil {
		b.WriteString(theme.Subtitle.Width(width).Render(
			l.state.Selections.Subject + " · " + l.state.Selections.Level))
	}
	b.WriteString("\n\n")

	// Scroll window over the rendered lesson body.
	lines := strings.Split(l.renderedLesson, "\n")
	visible := height - 8
	if visible < 4 {
		visible = 4
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.lessonOffset > maxOffset {
		l.lessonOffset = maxOffset
	}
	end := l.lessonOffset + visible
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[l.lessonOffset:end], "\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(body))
	b.WriteString("\n\n")

	if l.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(l.errMsg))
		b.WriteString("\n")
	}

	button := components.NewButton("Start Quiz", true, nil)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(button.View()))

	return b.String()
}

func (l *LearnScreen) renderQuiz(width, height int) string {
	q := sess.CurrentQuestion(l.state)
	if q == nil {
		return ""
	}
	l.ensurePicker(q)

	current, total := sess.Progress(l.state)

	var b strings.Builder

	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d/%d", current, total))
	score := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score: %d", l.state.Score))

	gap := width - lipgloss.Width(header) - lipgloss.Width(score) - 8
	if gap < 1 {
		gap = 1
	}
	b.WriteString("  " + header + strings.Repeat(" ", gap) + score)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(l.picker.View()))

	if fb := l.state.Feedback; fb != nil {
		b.WriteString("\n")
		b.WriteString(l.renderFeedback(fb, width))
	} else if l.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(l.errMsg))
	}

	return b.String()
}

func (l *LearnScreen) renderFeedback(fb *sess.Feedback, width int) string {
	var b strings.Builder

	if fb.Correct {
		b.WriteString(theme.Correct.Render("✓ Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Not quite."))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
			Render("The answer is: " + fb.Answer))
	}

	if fb.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Width(min(width-12, 70)).
			Render(fb.Explanation))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Next question in a moment..."))

	card := theme.Card.Width(min(width-8, 78)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(card)
}

func (l *LearnScreen) renderResult(width, height int) string {
	res := sess.ComputeResult(l.state)

	var b strings.Builder

	b.WriteString(theme.Title.Render("Quiz Complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("You scored %d out of %d", res.Score, res.Total)))
	b.WriteString("\n\n")

	fill := theme.Error
	switch res.Tier {
	case sess.TierExcellent:
		fill = theme.Success
	case sess.TierGood:
		fill = theme.Accent
	}
	bar := components.NewProgressBar("", res.Percentage/100, true, min(width-16, 50))
	bar.Fill = fill
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	msgStyle := theme.Incorrect
	switch res.Tier {
	case sess.TierExcellent:
		msgStyle = theme.Correct
	case sess.TierGood:
		msgStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	b.WriteString(msgStyle.Render(res.Tier.Message()))

	card := theme.Card.Width(min(width-8, 70)).Render(b.String())
	cardBlock := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(card)

	review := l.renderReview(width, height-lipgloss.Height(cardBlock)-1)
	if review == "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}

	return cardBlock + "\n" + review
}

// renderReview lists every answered question with the learner's answer,
// the correct answer, and the explanation, windowed by reviewOffset.
func (l *LearnScreen) renderReview(width, height int) string {
	if len(l.state.Answered) == 0 || height < 4 {
		return ""
	}

	contentWidth := min(width-12, 70)
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(contentWidth)
	answerStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(contentWidth)
	explainStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(contentWidth)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Review Your Answers"))
	b.WriteString("\n\n")

	for i, fb := range l.state.Answered {
		mark := theme.Correct.Render("✓")
		if !fb.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		b.WriteString(mark + " " + questionStyle.Render(fmt.Sprintf("%d. %s", i+1, fb.Question)))
		b.WriteString("\n")
		b.WriteString(answerStyle.Render("  Your answer: " + fb.Selected))
		b.WriteString("\n")
		if !fb.Correct {
			b.WriteString(answerStyle.Render("  Correct answer: " + fb.Answer))
			b.WriteString("\n")
		}
		if fb.Explanation != "" {
			b.WriteString(explainStyle.Render("  " + fb.Explanation))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Scroll window over the review body.
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.reviewOffset > maxOffset {
		l.reviewOffset = maxOffset
	}
	end := l.reviewOffset + height
	if end > len(lines) {
		end = len(lines)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(lines[l.reviewOffset:end], "\n"))
}

func valueAt(values []string, idx int) string {
	if idx < 0 || idx >= len(values) {
		return ""
	}
	return values[idx]
}
