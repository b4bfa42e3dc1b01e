package lessonplan

import (
	"errors"
	"fmt"
)

// Advance returns a copy of plan with s appended and the cursor moved past
// it. plan itself is left untouched, so a rejected session cannot leave the
// cursor and the session list out of step.
func Advance(plan *Plan, s Session) (*Plan, error) {
	if plan == nil {
		return nil, errors.New("nil lesson plan")
	}
	if plan.Complete() {
		return nil, ErrPlanComplete
	}
	if want := plan.CurrentSession + 1; s.Number != want {
		return nil, fmt.Errorf("%w: got session %d, want %d", ErrOutOfOrder, s.Number, want)
	}

	next := plan.clone()
	next.Sessions = append(next.Sessions, s)
	next.CurrentSession++
	if !s.CreatedAt.IsZero() {
		next.LastAccessedAt = s.CreatedAt
	}
	return next, nil
}
