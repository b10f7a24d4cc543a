package session

import "github.com/sandeepan/tutora/internal/content"

// Screen identifies which of the four mutually exclusive session screens
// is active.
type Screen int

const (
	ScreenSetup Screen = iota
	ScreenLesson
	ScreenQuiz
	ScreenResult
)

// String returns the screen name for logging and history records.
func (s Screen) String() string {
	switch s {
	case ScreenSetup:
		return "setup"
	case ScreenLesson:
		return "lesson"
	case ScreenQuiz:
		return "quiz"
	case ScreenResult:
		return "result"
	default:
		return "unknown"
	}
}

// State is the whole session in one value. It is mutated only by the
// transition functions in this package; the TUI layer derives everything
// it displays from it.
//
// Invariants: QuestionIndex <= Quiz.Len(), Score <= QuestionIndex, and
// Quiz is nil outside the Quiz/Result screens.
type State struct {
	// Screen is the active screen.
	Screen Screen

	// Loading is true while a generation request is in flight. At most one
	// request may be outstanding; transitions that would start a second
	// one are rejected.
	Loading bool

	// Selections is what the learner chose on the setup screen. Nil until
	// a lesson has been delivered; immutable afterwards.
	Selections *content.Selections

	// Lesson is the delivered lesson. Held only for the Lesson screen and
	// discarded once the quiz starts.
	Lesson *content.Lesson

	// Quiz is the delivered question sequence. Nil on Setup/Lesson.
	Quiz *content.Quiz

	// QuestionIndex is the zero-based index of the current question. Equal
	// to Quiz.Len() exactly when the Result screen is reached.
	QuestionIndex int

	// Score counts correct answers so far.
	Score int

	// Feedback is non-nil while the answer feedback for the current
	// question is displayed. While set, further answer submissions are
	// rejected.
	Feedback *Feedback

	// Answered records the outcome of every answered question in order.
	// Advance appends the pending feedback here before clearing it, so
	// len(Answered) == QuestionIndex. The result screen renders it as the
	// per-question review.
	Answered []Feedback
}

// Feedback describes the outcome of one answered question, for display
// between submission and the delayed advance, and later in the result
// review.
type Feedback struct {
	Question    string
	Correct     bool
	Selected    string
	Answer      string
	Explanation string
}

// NewState returns the initial session state: setup screen, nothing loaded.
func NewState() *State {
	return &State{Screen: ScreenSetup}
}

// CurrentQuestion returns the question at QuestionIndex, or nil when no
// quiz is active or the index has run past the end.
func CurrentQuestion(s *State) *content.Question {
	if s.Quiz == nil || s.QuestionIndex >= s.Quiz.Len() {
		return nil
	}
	return &s.Quiz.Questions[s.QuestionIndex]
}

// Progress returns the 1-based progress pair (current, total) for the quiz
// header, e.g. "Question 2/5".
func Progress(s *State) (current, total int) {
	if s.Quiz == nil {
		return 0, 0
	}
	return s.QuestionIndex + 1, s.Quiz.Len()
}
