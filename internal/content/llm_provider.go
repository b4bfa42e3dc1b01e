package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/keypals/internal/llm"
)

// Config holds generation settings for LLMProvider.
type Config struct {
	MaxTokens        int
	Temperature      float64
	OutlineMaxTokens int
}

// DefaultConfig returns sensible defaults for typing-sentence generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        400,
		Temperature:      0.7,
		OutlineMaxTokens: 600,
	}
}

// LLMProvider implements Provider on top of an llm.Provider.
type LLMProvider struct {
	llm llm.Provider
	cfg Config
}

// NewLLMProvider wraps p.
func NewLLMProvider(p llm.Provider, cfg Config) *LLMProvider {
	return &LLMProvider{llm: p, cfg: cfg}
}

// Generate sends one request to the underlying model. Sentence requests are
// answered with the model's plain text; scene requests go through the
// outline schema and are rendered back into readable lines.
func (p *LLMProvider) Generate(ctx context.Context, req Request) (*Result, error) {
	switch req.Kind {
	case KindSentence, "":
		return p.sentences(ctx, req)
	case KindScene:
		return p.scene(ctx, req)
	default:
		return nil, fmt.Errorf("unknown content kind %q", req.Kind)
	}
}

func (p *LLMProvider) sentences(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLessonSession)

	resp, err := p.llm.Generate(ctx, llm.Request{
		System: buildSystemPrompt(req.LearnerAge),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: req.Instruction},
		},
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, classify(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, &Error{Kind: MalformedResponse, Err: errors.New("empty text")}
	}
	return &Result{Text: text, Model: resp.Model}, nil
}

type outlineOutput struct {
	Title    string   `json:"title"`
	Setting  string   `json:"setting"`
	Sessions []string `json:"sessions"`
}

func (p *LLMProvider) scene(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLessonOutline)

	resp, err := p.llm.Generate(ctx, llm.Request{
		System: buildSystemPrompt(req.LearnerAge),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildOutlineUserMessage(req)},
		},
		Schema:      OutlineSchema,
		MaxTokens:   p.cfg.OutlineMaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, classify(err)
	}
	if resp.StopReason == llm.StopMaxTokens {
		return nil, &Error{Kind: MalformedResponse, Err: &llm.ErrMaxTokensExceeded{Content: resp.Content}}
	}

	// Providers validate against the schema already; the mock does not.
	if err := llm.ValidateJSON(OutlineSchema, resp.Content); err != nil {
		return nil, classify(err)
	}

	var out outlineOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &Error{Kind: MalformedResponse, Err: fmt.Errorf("parse outline: %w", err)}
	}

	text := renderOutline(out)
	if text == "" {
		return nil, &Error{Kind: MalformedResponse, Err: errors.New("empty outline")}
	}
	return &Result{Text: text, Model: resp.Model}, nil
}

// renderOutline flattens an outline into one line per item.
func renderOutline(out outlineOutput) string {
	var lines []string
	if t := strings.TrimSpace(out.Title); t != "" {
		lines = append(lines, t)
	}
	if s := strings.TrimSpace(out.Setting); s != "" {
		lines = append(lines, s)
	}
	n := 0
	for _, s := range out.Sessions {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n++
		lines = append(lines, fmt.Sprintf("%d. %s", n, s))
	}
	return strings.Join(lines, "\n")
}
