// Package content is the boundary between the lesson engine and whatever
// generates text for it. The engine only sees Provider; LLMProvider adapts
// an llm.Provider to that contract.
package content

import "context"

// Kind tells the provider what shape of text is wanted.
type Kind string

const (
	// KindScene asks for an outline of the whole lesson.
	KindScene Kind = "scene"

	// KindSentence asks for one session's worth of typing sentences.
	KindSentence Kind = "sentence"
)

// Request is a single generation request.
type Request struct {
	Kind        Kind
	Topic       string
	Instruction string

	// LearnerAge is 0 when unknown.
	LearnerAge int
}

// Result is the text a provider produced.
type Result struct {
	Text  string
	Model string
}

// Provider generates lesson text. Implementations return a *Error on
// failure so callers can tell credential problems from transient ones.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, req Request) (*Result, error)

func (f ProviderFunc) Generate(ctx context.Context, req Request) (*Result, error) {
	return f(ctx, req)
}
