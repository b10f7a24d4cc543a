package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sandeepan/tutora/internal/content"
)

func testSelections() content.Selections {
	return content.Selections{
		Subject: "Science",
		Topic:   "Photosynthesis",
		Level:   "Beginner",
	}
}

func testQuiz(n int) *content.Quiz {
	quiz := &content.Quiz{}
	for i := 0; i < n; i++ {
		quiz.Questions = append(quiz.Questions, content.Question{
			Text:        "Q?",
			Options:     []string{"right", "wrong a", "wrong b", "wrong c"},
			Answer:      "right",
			Explanation: "because",
		})
	}
	return quiz
}

// stateOnQuiz returns a state advanced to the quiz screen with n questions.
func stateOnQuiz(t *testing.T, n int) *State {
	t.Helper()
	s := NewState()
	if err := SubmitSetup(s, testSelections()); err != nil {
		t.Fatalf("SubmitSetup: %v", err)
	}
	LessonReady(s, testSelections(), &content.Lesson{Title: "T", Markdown: "body"})
	if err := StartQuiz(s); err != nil {
		t.Fatalf("StartQuiz: %v", err)
	}
	if err := QuizReady(s, testQuiz(n)); err != nil {
		t.Fatalf("QuizReady: %v", err)
	}
	return s
}

func TestSubmitSetup_EmptyTopic(t *testing.T) {
	s := NewState()
	sel := testSelections()
	sel.Topic = "   "

	err := SubmitSetup(s, sel)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if s.Loading {
		t.Error("no request should be in flight after a rejected submit")
	}
	if s.Screen != ScreenSetup {
		t.Errorf("expected setup screen, got %v", s.Screen)
	}
}

func TestSubmitSetup_GuardsDoubleSubmit(t *testing.T) {
	s := NewState()
	if err := SubmitSetup(s, testSelections()); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := SubmitSetup(s, testSelections()); !errors.Is(err, ErrRequestInFlight) {
		t.Fatalf("expected ErrRequestInFlight, got %v", err)
	}
}

func TestSubmitSetup_WrongScreen(t *testing.T) {
	s := stateOnQuiz(t, 1)
	if err := SubmitSetup(s, testSelections()); !errors.Is(err, ErrWrongScreen) {
		t.Fatalf("expected ErrWrongScreen, got %v", err)
	}
}

func TestLessonReady_MovesToLesson(t *testing.T) {
	s := NewState()
	if err := SubmitSetup(s, testSelections()); err != nil {
		t.Fatalf("SubmitSetup: %v", err)
	}

	lesson := &content.Lesson{Title: "Photosynthesis", Markdown: "# Photosynthesis"}
	LessonReady(s, testSelections(), lesson)

	if s.Screen != ScreenLesson {
		t.Errorf("expected lesson screen, got %v", s.Screen)
	}
	if s.Loading {
		t.Error("loading should be cleared")
	}
	if s.Lesson != lesson {
		t.Error("lesson should be attached")
	}
	if s.Selections == nil || s.Selections.Topic != "Photosynthesis" {
		t.Error("selections should be committed")
	}
}

func TestLessonFailed_StaysOnSetup(t *testing.T) {
	s := NewState()
	if err := SubmitSetup(s, testSelections()); err != nil {
		t.Fatalf("SubmitSetup: %v", err)
	}

	LessonFailed(s)

	if s.Screen != ScreenSetup {
		t.Errorf("expected setup screen, got %v", s.Screen)
	}
	if s.Loading {
		t.Error("loading should be cleared")
	}
	if s.Lesson != nil || s.Selections != nil {
		t.Error("no partial state should survive a failed request")
	}
}

func TestStartQuiz_RequiresLessonScreen(t *testing.T) {
	s := NewState()
	if err := StartQuiz(s); !errors.Is(err, ErrWrongScreen) {
		t.Fatalf("expected ErrWrongScreen, got %v", err)
	}
}

func TestQuizReady_EmptyQuizRejected(t *testing.T) {
	s := NewState()
	if err := SubmitSetup(s, testSelections()); err != nil {
		t.Fatalf("SubmitSetup: %v", err)
	}
	LessonReady(s, testSelections(), &content.Lesson{Markdown: "x"})
	if err := StartQuiz(s); err != nil {
		t.Fatalf("StartQuiz: %v", err)
	}

	err := QuizReady(s, &content.Quiz{})
	var gerr *content.GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError for empty quiz, got %v", err)
	}
	if s.Screen != ScreenLesson {
		t.Errorf("expected to stay on lesson screen, got %v", s.Screen)
	}
	if s.Quiz != nil {
		t.Error("no quiz should be attached")
	}
}

func TestQuizReady_DiscardsLesson(t *testing.T) {
	s := stateOnQuiz(t, 3)

	if s.Screen != ScreenQuiz {
		t.Errorf("expected quiz screen, got %v", s.Screen)
	}
	if s.Lesson != nil {
		t.Error("lesson should be discarded once the quiz starts")
	}
	if s.QuestionIndex != 0 || s.Score != 0 {
		t.Errorf("quiz should start at question 0 score 0, got index=%d score=%d", s.QuestionIndex, s.Score)
	}
}

func TestSubmitAnswer_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		correct  bool
	}{
		{"exact match", "right", true},
		{"case differs", "Right", false},
		{"trailing space", "right ", false},
		{"wrong option", "wrong a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateOnQuiz(t, 1)
			fb, err := SubmitAnswer(s, tt.selected)
			if err != nil {
				t.Fatalf("SubmitAnswer: %v", err)
			}
			if fb.Correct != tt.correct {
				t.Errorf("Correct = %v, want %v", fb.Correct, tt.correct)
			}
			wantScore := 0
			if tt.correct {
				wantScore = 1
			}
			if s.Score != wantScore {
				t.Errorf("Score = %d, want %d", s.Score, wantScore)
			}
		})
	}
}

func TestSubmitAnswer_EmptySelection(t *testing.T) {
	s := stateOnQuiz(t, 1)
	_, err := SubmitAnswer(s, "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if s.Feedback != nil {
		t.Error("no feedback should be attached after a rejected submit")
	}
}

func TestSubmitAnswer_RejectedWhileFeedbackShown(t *testing.T) {
	s := stateOnQuiz(t, 2)
	if _, err := SubmitAnswer(s, "right"); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	if _, err := SubmitAnswer(s, "right"); !errors.Is(err, ErrWrongScreen) {
		t.Fatalf("expected ErrWrongScreen during feedback, got %v", err)
	}
	if s.Score != 1 {
		t.Errorf("score should not change on rejected submit, got %d", s.Score)
	}
}

func TestAdvance_MovesThroughQuiz(t *testing.T) {
	s := stateOnQuiz(t, 2)

	if _, err := SubmitAnswer(s, "right"); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	if !Advance(s) {
		t.Fatal("advance after answer 1 should succeed")
	}
	if s.Screen != ScreenQuiz || s.QuestionIndex != 1 {
		t.Errorf("expected quiz question 1, got screen=%v index=%d", s.Screen, s.QuestionIndex)
	}
	if s.Feedback != nil {
		t.Error("feedback should be cleared on advance")
	}

	if _, err := SubmitAnswer(s, "wrong a"); err != nil {
		t.Fatalf("answer 2: %v", err)
	}
	if !Advance(s) {
		t.Fatal("advance after answer 2 should succeed")
	}
	if s.Screen != ScreenResult {
		t.Errorf("expected result screen after last question, got %v", s.Screen)
	}
	if s.QuestionIndex != s.Quiz.Len() {
		t.Errorf("index should equal question count, got %d", s.QuestionIndex)
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
}

func TestAdvance_NoopWithoutFeedback(t *testing.T) {
	s := stateOnQuiz(t, 2)
	if Advance(s) {
		t.Error("advance without pending feedback should report false")
	}
	if s.QuestionIndex != 0 {
		t.Errorf("index should be unchanged, got %d", s.QuestionIndex)
	}
}

func TestReset_FromAnyScreen(t *testing.T) {
	s := stateOnQuiz(t, 2)
	if _, err := SubmitAnswer(s, "right"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	Reset(s)

	want := NewState()
	if !reflect.DeepEqual(s, want) {
		t.Errorf("reset state = %+v, want %+v", s, want)
	}

	// Reset is idempotent.
	Reset(s)
	if !reflect.DeepEqual(s, want) {
		t.Errorf("second reset state = %+v, want %+v", s, want)
	}
}

func TestCurrentQuestionAndProgress(t *testing.T) {
	s := NewState()
	if q := CurrentQuestion(s); q != nil {
		t.Error("no current question outside the quiz")
	}
	if cur, total := Progress(s); cur != 0 || total != 0 {
		t.Errorf("progress without quiz = %d/%d, want 0/0", cur, total)
	}

	s = stateOnQuiz(t, 3)
	if q := CurrentQuestion(s); q == nil || q.Answer != "right" {
		t.Errorf("unexpected current question: %+v", q)
	}
	if cur, total := Progress(s); cur != 1 || total != 3 {
		t.Errorf("progress = %d/%d, want 1/3", cur, total)
	}
}

func TestAdvance_RecordsAnswerHistory(t *testing.T) {
	s := stateOnQuiz(t, 2)

	if _, err := SubmitAnswer(s, "right"); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	Advance(s)
	if _, err := SubmitAnswer(s, "wrong a"); err != nil {
		t.Fatalf("answer 2: %v", err)
	}
	Advance(s)

	if len(s.Answered) != 2 {
		t.Fatalf("answered = %d, want 2", len(s.Answered))
	}
	if !s.Answered[0].Correct || s.Answered[0].Selected != "right" {
		t.Errorf("first record = %+v", s.Answered[0])
	}
	if s.Answered[1].Correct || s.Answered[1].Selected != "wrong a" {
		t.Errorf("second record = %+v", s.Answered[1])
	}
	if s.Answered[1].Question != "Q?" || s.Answered[1].Answer != "right" {
		t.Errorf("second record should carry question and answer, got %+v", s.Answered[1])
	}
	if s.Answered[1].Explanation != "because" {
		t.Errorf("explanation = %q", s.Answered[1].Explanation)
	}

	// A fresh quiz starts with an empty history.
	Reset(s)
	if err := SubmitSetup(s, testSelections()); err != nil {
		t.Fatalf("SubmitSetup: %v", err)
	}
	LessonReady(s, testSelections(), &content.Lesson{Title: "T", Markdown: "m"})
	if err := StartQuiz(s); err != nil {
		t.Fatalf("StartQuiz: %v", err)
	}
	if err := QuizReady(s, testQuiz(1)); err != nil {
		t.Fatalf("QuizReady: %v", err)
	}
	if len(s.Answered) != 0 {
		t.Errorf("new quiz should start with no answer history, got %d", len(s.Answered))
	}
}
