package llm

import "context"

// Purposes tag each recorded request so `keypals llm stats` can split
// session passages from plan outlines.
const (
	PurposeLessonSession = "lesson-session"
	PurposeLessonOutline = "lesson-outline"
	purposeUnknown       = "unknown"
)

type purposeCtxKey struct{}

func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey{}, purpose)
}

// PurposeFrom returns the purpose set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey{}).(string); ok && p != "" {
		return p
	}
	return purposeUnknown
}
