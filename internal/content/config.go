package content

// Config holds generation settings for lessons and quizzes.
type Config struct {
	// QuestionCount is how many questions a quiz should have.
	QuestionCount int

	// OptionCount is how many options each question should have.
	OptionCount int

	LessonMaxTokens int
	QuizMaxTokens   int
	Temperature     float64
}

// DefaultConfig returns sensible defaults: a 5-question quiz with 4
// options per question.
func DefaultConfig() Config {
	return Config{
		QuestionCount:   5,
		OptionCount:     4,
		LessonMaxTokens: 2048,
		QuizMaxTokens:   2048,
		Temperature:     0.5,
	}
}
