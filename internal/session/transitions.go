package session

import (
	"errors"
	"strings"

	"github.com/sandeepan/tutora/internal/content"
)

// The session is a small finite-state machine:
//
//	Setup --SubmitSetup/LessonReady--> Lesson --StartQuiz/QuizReady--> Quiz
//	Quiz --SubmitAnswer+Advance (last question)--> Result
//	any --Reset--> Setup
//
// Each transition is a plain function over *State so the whole machine can
// be exercised without a terminal. Failed generation calls land back on the
// screen that issued them with Loading cleared and no partial state.

// SubmitSetup validates the setup form and marks the lesson request as in
// flight. The caller issues the actual generation call and reports back via
// LessonReady or LessonFailed.
func SubmitSetup(s *State, sel content.Selections) error {
	if s.Screen != ScreenSetup {
		return ErrWrongScreen
	}
	if s.Loading {
		return ErrRequestInFlight
	}
	if strings.TrimSpace(sel.Topic) == "" {
		return &ValidationError{Reason: "topic required"}
	}
	s.Loading = true
	return nil
}

// LessonReady commits a delivered lesson: the selections become fixed and
// the session moves to the Lesson screen.
func LessonReady(s *State, sel content.Selections, lesson *content.Lesson) {
	s.Selections = &sel
	s.Lesson = lesson
	s.Screen = ScreenLesson
	s.Loading = false
}

// LessonFailed clears the loading flag after a failed lesson request. The
// session stays on Setup; nothing from the failed attempt is kept.
func LessonFailed(s *State) {
	s.Loading = false
}

// StartQuiz marks the quiz request as in flight. Valid only from the Lesson
// screen, where selections are guaranteed to be set.
func StartQuiz(s *State) error {
	if s.Screen != ScreenLesson || s.Selections == nil {
		return ErrWrongScreen
	}
	if s.Loading {
		return ErrRequestInFlight
	}
	s.Loading = true
	return nil
}

// QuizReady commits a delivered quiz and moves to the Quiz screen at the
// first question. An empty question sequence is rejected as a generation
// failure; the session never shows a quiz with zero questions.
func QuizReady(s *State, quiz *content.Quiz) error {
	s.Loading = false
	if quiz.Len() == 0 {
		return &content.GenerationError{Op: "quiz", Err: errors.New("empty question sequence")}
	}
	s.Quiz = quiz
	s.QuestionIndex = 0
	s.Score = 0
	s.Feedback = nil
	s.Answered = nil
	s.Lesson = nil
	s.Screen = ScreenQuiz
	return nil
}

// QuizFailed clears the loading flag after a failed quiz request. The
// session stays on the Lesson screen.
func QuizFailed(s *State) {
	s.Loading = false
}

// SubmitAnswer scores the selected option against the current question.
// Correctness is exact string equality, with no trimming or case folding.
// The returned feedback stays attached to the state until Advance clears
// it; while attached, repeat submissions are rejected.
func SubmitAnswer(s *State, selected string) (*Feedback, error) {
	if s.Screen != ScreenQuiz || s.Feedback != nil {
		return nil, ErrWrongScreen
	}
	q := CurrentQuestion(s)
	if q == nil {
		return nil, ErrWrongScreen
	}
	if selected == "" {
		return nil, &ValidationError{Reason: "no option selected"}
	}

	correct := selected == q.Answer
	if correct {
		s.Score++
	}

	s.Feedback = &Feedback{
		Question:    q.Text,
		Correct:     correct,
		Selected:    selected,
		Answer:      q.Answer,
		Explanation: q.Explanation,
	}
	return s.Feedback, nil
}

// Advance moves past the answered question once the feedback delay has
// elapsed: records the feedback in the answer history, clears it, bumps
// the index, and transitions to Result after the last question. It reports
// false (and changes nothing) when no feedback is pending.
func Advance(s *State) bool {
	if s.Screen != ScreenQuiz || s.Feedback == nil {
		return false
	}
	s.Answered = append(s.Answered, *s.Feedback)
	s.Feedback = nil
	s.QuestionIndex++
	if s.QuestionIndex >= s.Quiz.Len() {
		s.Screen = ScreenResult
	}
	return true
}

// Reset replaces the state wholesale with the initial state. Safe from any
// screen, idempotent, and never leaves partially stale fields behind.
func Reset(s *State) {
	*s = *NewState()
}
