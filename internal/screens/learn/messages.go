package learn

import (
	"github.com/sandeepan/tutora/internal/content"
)

// lessonReadyMsg is sent when a lesson request finishes. Epoch is the
// session epoch at the time the request was issued; a response for a
// session that has since been restarted is discarded.
type lessonReadyMsg struct {
	epoch      int
	Selections content.Selections
	Lesson     *content.Lesson
	Err        error
}

// quizReadyMsg is sent when a quiz request finishes. Stamped with the
// issuing epoch like lessonReadyMsg.
type quizReadyMsg struct {
	epoch int
	Quiz  *content.Quiz
	Err   error
}

// advanceMsg is sent when the post-answer feedback delay elapses. Epoch is
// the session epoch at the time the delay was scheduled; a message from a
// session that has since been restarted is discarded.
type advanceMsg struct {
	epoch int
}
