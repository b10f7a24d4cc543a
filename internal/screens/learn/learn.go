package learn

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/sandeepan/tutora/internal/catalog"
	"github.com/sandeepan/tutora/internal/content"
	"github.com/sandeepan/tutora/internal/router"
	"github.com/sandeepan/tutora/internal/screen"
	sess "github.com/sandeepan/tutora/internal/session"
	"github.com/sandeepan/tutora/internal/store"
	"github.com/sandeepan/tutora/internal/ui/components"
	"github.com/sandeepan/tutora/internal/ui/layout"
)

// advanceDelay is how long answer feedback stays on screen before the
// session moves to the next question.
const advanceDelay = 2500 * time.Millisecond

// Setup form focus order.
const (
	focusSubject = iota
	focusTopic
	focusLevel
)

// LearnScreen drives one learning session: setup form, generated lesson,
// quiz, and result. All session state lives in a *sess.State mutated only
// through the transition functions; this screen translates key and timer
// messages into those transitions.
type LearnScreen struct {
	state     *sess.State
	svc       *content.Service
	eventRepo store.EventRepo
	cat       catalog.Catalog
	sessionID string

	// epoch invalidates delayed advance timers across restarts. Every
	// restart bumps it; an advanceMsg stamped with an older epoch is
	// dropped.
	epoch int

	subjectIdx int
	levelIdx   int
	topic      components.TextInput
	focus      int
	errMsg     string

	picker    components.OptionPicker
	pickerSet bool

	renderedLesson string
	renderedWidth  int
	lessonOffset   int
	reviewOffset   int

	resultSaved bool
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates a LearnScreen with injected dependencies.
func New(svc *content.Service, eventRepo store.EventRepo, cat catalog.Catalog) *LearnScreen {
	return &LearnScreen{
		state:     sess.NewState(),
		svc:       svc,
		eventRepo: eventRepo,
		cat:       cat,
		sessionID: uuid.New().String(),
		topic:     components.NewTextInput("What do you want to learn about?", 64),
		focus:     focusSubject,
	}
}

func (l *LearnScreen) Init() tea.Cmd {
	return l.topic.Init()
}

func (l *LearnScreen) Title() string {
	switch l.state.Screen {
	case sess.ScreenLesson:
		return "Lesson"
	case sess.ScreenQuiz:
		return "Quiz"
	case sess.ScreenResult:
		return "Result"
	default:
		return "New Session"
	}
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	if l.state.Loading {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	switch l.state.Screen {
	case sess.ScreenSetup:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "↑/↓", Description: "Change"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case sess.ScreenLesson:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Scroll"},
			{Key: "Enter", Description: "Start quiz"},
			{Key: "N", Description: "New topic"},
			{Key: "Esc", Description: "Back"},
		}
	case sess.ScreenQuiz:
		if l.state.Feedback != nil {
			return []layout.KeyHint{
				{Key: "Ctrl+R", Description: "Restart"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Select"},
			{Key: "Enter", Description: "Answer"},
			{Key: "1-9", Description: "Quick answer"},
		}
	case sess.ScreenResult:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Review"},
			{Key: "R", Description: "New session"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		return l.handleLessonReady(msg)

	case quizReadyMsg:
		return l.handleQuizReady(msg)

	case advanceMsg:
		return l.handleAdvance(msg)

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	// Forward everything else to the topic input while it has focus.
	if l.state.Screen == sess.ScreenSetup && l.focus == focusTopic && !l.state.Loading {
		var cmd tea.Cmd
		l.topic, cmd = l.topic.Update(msg)
		return l, cmd
	}

	return l, nil
}

func (l *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Restart works from anywhere, including during the feedback delay.
	if key == "ctrl+r" {
		return l, l.restart()
	}

	if l.state.Loading {
		if key == "esc" {
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return l, nil
	}

	switch l.state.Screen {
	case sess.ScreenSetup:
		return l.handleSetupKey(msg)
	case sess.ScreenLesson:
		return l.handleLessonKey(msg)
	case sess.ScreenQuiz:
		return l.handleQuizKey(msg)
	case sess.ScreenResult:
		return l.handleResultKey(msg)
	}

	return l, nil
}

func (l *LearnScreen) handleSetupKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	subjects := l.cat.SubjectNames()

	switch msg.String() {
	case "esc":
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case "tab":
		l.focus = (l.focus + 1) % 3
		return l, l.refocusTopic()

	case "shift+tab":
		l.focus = (l.focus + 2) % 3
		return l, l.refocusTopic()

	case "up", "down":
		switch l.focus {
		case focusSubject:
			l.subjectIdx = cycle(l.subjectIdx, len(subjects), msg.String() == "down")
		case focusLevel:
			l.levelIdx = cycle(l.levelIdx, len(l.cat.Levels), msg.String() == "down")
		}
		return l, nil

	case "enter":
		return l.submitSetup()
	}

	if l.focus == focusTopic {
		var cmd tea.Cmd
		l.topic, cmd = l.topic.Update(msg)
		return l, cmd
	}

	return l, nil
}

func (l *LearnScreen) submitSetup() (screen.Screen, tea.Cmd) {
	sel := l.selections()

	if err := sess.SubmitSetup(l.state, sel); err != nil {
		var verr *sess.ValidationError
		if errors.As(err, &verr) {
			l.errMsg = verr.Reason
			l.topic.Submit(false)
		}
		return l, nil
	}

	l.errMsg = ""
	return l, l.requestLesson(sel)
}

func (l *LearnScreen) handleLessonKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return l, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		if l.lessonOffset > 0 {
			l.lessonOffset--
		}
	case "down", "j":
		l.lessonOffset++
	case "pgup":
		l.lessonOffset -= 10
		if l.lessonOffset < 0 {
			l.lessonOffset = 0
		}
	case "pgdown":
		l.lessonOffset += 10

	case "n", "N":
		return l, l.restart()

	case "enter", "s":
		if err := sess.StartQuiz(l.state); err != nil {
			return l, nil
		}
		l.errMsg = ""
		return l, l.requestQuiz(*l.state.Selections)
	}

	return l, nil
}

func (l *LearnScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// During the feedback delay only the timer moves the session forward.
	if l.state.Feedback != nil {
		return l, nil
	}

	q := sess.CurrentQuestion(l.state)
	if q == nil {
		return l, nil
	}
	l.ensurePicker(q)

	key := msg.String()

	// Number keys pick and submit in one stroke.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(q.Options) {
			l.picker.Selected = idx
			return l.submitAnswer()
		}
		return l, nil
	}

	if key == "enter" {
		return l.submitAnswer()
	}

	var cmd tea.Cmd
	l.picker, cmd = l.picker.Update(msg)
	return l, cmd
}

func (l *LearnScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	fb, err := sess.SubmitAnswer(l.state, l.picker.Value())
	if err != nil {
		var verr *sess.ValidationError
		if errors.As(err, &verr) {
			l.errMsg = verr.Reason
		}
		return l, nil
	}

	l.errMsg = ""
	l.picker.Reveal(fb.Answer)
	return l, l.advanceTimer()
}

// advanceTimer schedules the delayed advance, stamped with the current
// epoch so a restart invalidates it.
func (l *LearnScreen) advanceTimer() tea.Cmd {
	epoch := l.epoch
	return tea.Tick(advanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{epoch: epoch}
	})
}

func (l *LearnScreen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if msg.epoch != l.epoch {
		return l, nil
	}
	if !sess.Advance(l.state) {
		return l, nil
	}
	l.pickerSet = false

	if l.state.Screen == sess.ScreenResult {
		l.reviewOffset = 0
		l.persistResult()
	}
	return l, nil
}

func (l *LearnScreen) handleResultKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	case "r", "R", "enter":
		return l, l.restart()
	case "up", "k":
		if l.reviewOffset > 0 {
			l.reviewOffset--
		}
	case "down", "j":
		l.reviewOffset++
	case "pgup":
		l.reviewOffset -= 5
		if l.reviewOffset < 0 {
			l.reviewOffset = 0
		}
	case "pgdown":
		l.reviewOffset += 5
	}
	return l, nil
}

// restart returns the session to a fresh setup screen. The epoch bump
// strands any advance timer still pending from the old session.
func (l *LearnScreen) restart() tea.Cmd {
	sess.Reset(l.state)
	l.epoch++
	l.sessionID = uuid.New().String()
	l.errMsg = ""
	l.pickerSet = false
	l.renderedLesson = ""
	l.lessonOffset = 0
	l.reviewOffset = 0
	l.resultSaved = false
	l.focus = focusSubject
	l.topic = components.NewTextInput("What do you want to learn about?", 64)
	return l.topic.Init()
}

func (l *LearnScreen) handleLessonReady(msg lessonReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.epoch != l.epoch {
		return l, nil
	}
	if msg.Err != nil {
		sess.LessonFailed(l.state)
		l.errMsg = "Lesson generation failed: " + msg.Err.Error()
		return l, nil
	}
	sess.LessonReady(l.state, msg.Selections, msg.Lesson)
	l.renderedLesson = ""
	l.lessonOffset = 0
	return l, nil
}

func (l *LearnScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.epoch != l.epoch {
		return l, nil
	}
	if msg.Err != nil {
		sess.QuizFailed(l.state)
		l.errMsg = "Quiz generation failed: " + msg.Err.Error()
		return l, nil
	}
	if err := sess.QuizReady(l.state, msg.Quiz); err != nil {
		l.errMsg = "Quiz generation failed: " + err.Error()
		return l, nil
	}
	l.pickerSet = false
	return l, nil
}

// requestLesson issues the lesson generation call off the update loop. The
// result is stamped with the issuing epoch so a restart strands it.
func (l *LearnScreen) requestLesson(sel content.Selections) tea.Cmd {
	svc := l.svc
	epoch := l.epoch
	return func() tea.Msg {
		lesson, err := svc.GenerateLesson(context.Background(), sel)
		return lessonReadyMsg{epoch: epoch, Selections: sel, Lesson: lesson, Err: err}
	}
}

// requestQuiz issues the quiz generation call off the update loop. Stamped
// with the issuing epoch like requestLesson.
func (l *LearnScreen) requestQuiz(sel content.Selections) tea.Cmd {
	svc := l.svc
	epoch := l.epoch
	return func() tea.Msg {
		quiz, err := svc.GenerateQuiz(context.Background(), sel)
		return quizReadyMsg{epoch: epoch, Quiz: quiz, Err: err}
	}
}

// persistResult records the finished quiz. Best effort; history must never
// block the result screen.
func (l *LearnScreen) persistResult() {
	if l.resultSaved || l.eventRepo == nil || l.state.Selections == nil {
		return
	}
	l.resultSaved = true

	res := sess.ComputeResult(l.state)
	_ = l.eventRepo.AppendResult(context.Background(), store.ResultRecordData{
		SessionID:  l.sessionID,
		Subject:    l.state.Selections.Subject,
		Topic:      l.state.Selections.Topic,
		Level:      l.state.Selections.Level,
		Score:      res.Score,
		Total:      res.Total,
		Percentage: res.Percentage,
		Tier:       res.Tier.String(),
	})
}

// ensurePicker rebuilds the option picker when a new question comes up.
func (l *LearnScreen) ensurePicker(q *content.Question) {
	if l.pickerSet {
		return
	}
	l.picker = components.NewOptionPicker(q.Text, q.Options)
	l.pickerSet = true
}

func (l *LearnScreen) selections() content.Selections {
	subjects := l.cat.SubjectNames()
	subject := ""
	if l.subjectIdx < len(subjects) {
		subject = subjects[l.subjectIdx]
	}
	level := ""
	if l.levelIdx < len(l.cat.Levels) {
		level = l.cat.Levels[l.levelIdx]
	}
	return content.Selections{
		Subject: subject,
		Topic:   l.topic.Value(),
		Level:   level,
	}
}

func (l *LearnScreen) refocusTopic() tea.Cmd {
	if l.focus == focusTopic {
		return l.topic.Focus()
	}
	l.topic.Blur()
	return nil
}

func cycle(idx, n int, forward bool) int {
	if n == 0 {
		return 0
	}
	if forward {
		return (idx + 1) % n
	}
	return (idx + n - 1) % n
}
