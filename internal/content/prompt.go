package content

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are a knowledgeable, encouraging tutor. You create clear, engaging lessons tailored to the student's level.`

func buildLessonUserMessage(sel Selections, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a comprehensive lesson on %s for a %s level student.\n", sel.Topic, sel.Level))
	b.WriteString(fmt.Sprintf("Subject: %s\n", sel.Subject))

	b.WriteString(`
Include:
1) Clear learning objectives
2) Detailed explanation with examples
3) Practical applications
4) Summary of key concepts
5) Common mistakes to avoid

Keep it between 400-500 words and use clear, engaging language. Format the lesson body using Markdown.`)

	return b.String()
}

const quizSystemPrompt = `You are an assessment writer. You create fair multiple-choice quizzes that test real understanding, not trivia.`

func buildQuizUserMessage(sel Selections, cfg Config) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a %d-question assessment on %s (%s) for %s level students.\n",
		cfg.QuestionCount, sel.Topic, sel.Subject, sel.Level))

	b.WriteString(fmt.Sprintf(`
Rules:
- Each question is multiple choice with exactly %d options.
- The answer field must be copied verbatim from the options list.
- Options must not repeat.
- Provide a short explanation for each answer.
- Make questions progressively harder.`, cfg.OptionCount))

	return b.String()
}
