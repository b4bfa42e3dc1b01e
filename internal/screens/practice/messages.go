package practice

import (
	"github.com/abhisek/keypals/internal/lessonplan"
)

// planReadyMsg is sent when the lesson plan has been created.
type planReadyMsg struct {
	Plan *lessonplan.Plan
	Err  error
}

// sessionReadyMsg is sent when the next session has been generated.
type sessionReadyMsg struct {
	Plan    *lessonplan.Plan
	Session lessonplan.Session
	Err     error
}
