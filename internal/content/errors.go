package content

import "fmt"

// GenerationError wraps any failure of a lesson or quiz request: transport
// errors, provider errors, and payloads that break the content contract.
type GenerationError struct {
	Op  string // "lesson" or "quiz"
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
