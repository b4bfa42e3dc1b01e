package lessonplan

import "github.com/abhisek/keypals/internal/content"

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// OutlineEnabled asks the provider for an advisory outline when a plan
	// is created.
	OutlineEnabled   bool
	OutlineMaxTokens int
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	cc := content.DefaultConfig()
	return Config{
		MaxTokens:        cc.MaxTokens,
		Temperature:      cc.Temperature,
		OutlineEnabled:   false,
		OutlineMaxTokens: cc.OutlineMaxTokens,
	}
}

// ContentConfig returns the provider settings derived from c.
func (c Config) ContentConfig() content.Config {
	return content.Config{
		MaxTokens:        c.MaxTokens,
		Temperature:      c.Temperature,
		OutlineMaxTokens: c.OutlineMaxTokens,
	}
}
