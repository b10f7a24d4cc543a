package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sandeepan/tutora/internal/llm"
)

// Service is the client side of the generation backend: two request/response
// operations, one for the lesson and one for the quiz. Every failure mode,
// transport, provider, or a payload that does not hold up the contract,
// comes back as a *GenerationError.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a generation service on the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type lessonOutput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// GenerateLesson requests a lesson for the given selections.
func (s *Service) GenerateLesson(ctx context.Context, sel Selections) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson")

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(sel, s.cfg)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.LessonMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Op: "lesson", Err: err}
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &GenerationError{Op: "lesson", Err: fmt.Errorf("parse response: %w", err)}
	}
	if strings.TrimSpace(out.Content) == "" {
		return nil, &GenerationError{Op: "lesson", Err: errors.New("response has no lesson content")}
	}

	return &Lesson{
		Title:    out.Title,
		Markdown: out.Content,
	}, nil
}

// GenerateQuiz requests a quiz for the given selections. The returned quiz
// is structurally sound: at least one question, every question with at
// least two options, and every answer equal to exactly one of its options.
func (s *Service) GenerateQuiz(ctx context.Context, sel Selections) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(sel, s.cfg)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Op: "quiz", Err: err}
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &GenerationError{Op: "quiz", Err: fmt.Errorf("parse response: %w", err)}
	}

	quiz := &Quiz{Questions: make([]Question, len(out.Questions))}
	for i, q := range out.Questions {
		quiz.Questions[i] = Question{
			Text:        q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		}
	}

	if err := validateQuiz(quiz); err != nil {
		return nil, &GenerationError{Op: "quiz", Err: err}
	}
	return quiz, nil
}

// validateQuiz enforces the payload contract the session layer relies on.
func validateQuiz(quiz *Quiz) error {
	if quiz.Len() == 0 {
		return errors.New("empty question sequence")
	}
	for i, q := range quiz.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d has no text", i+1)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d has %d options, need at least 2", i+1, len(q.Options))
		}
		matches := 0
		for _, opt := range q.Options {
			if opt == q.Answer {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("question %d answer matches %d options, need exactly 1", i+1, matches)
		}
	}
	return nil
}
