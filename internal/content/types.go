package content

// Selections is what the learner chose on the setup screen.
type Selections struct {
	Subject string
	Topic   string
	Level   string
}

// Lesson is a generated lesson document.
type Lesson struct {
	Title    string
	Markdown string
}

// Question is one multiple-choice quiz question. Answer is the correct
// option verbatim; grading compares by exact string equality.
type Question struct {
	Text        string
	Options     []string
	Answer      string
	Explanation string
}

// Quiz is an ordered question sequence.
type Quiz struct {
	Questions []Question
}

// Len returns the number of questions. Nil-safe.
func (q *Quiz) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Questions)
}
