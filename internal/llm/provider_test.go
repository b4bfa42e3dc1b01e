package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionRequest(n string) Request {
	return Request{
		System:   "You write typing practice for children.",
		Messages: []Message{{Role: RoleUser, Content: "Write session " + n + "."}},
	}
}

func TestMockProvider_AnswersInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockText("the owl hoots."),
		MockResponse{
			Content: json.RawMessage(`{"title":"Night Forest","sessions":[]}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 6, TotalTokens: 18},
		},
	)

	first, err := mock.Generate(context.Background(), sessionRequest("one"))
	require.NoError(t, err)
	assert.Equal(t, "the owl hoots.", first.Text())
	assert.Equal(t, StopEnd, first.StopReason)
	assert.Equal(t, "mock", first.Model)

	second, err := mock.Generate(context.Background(), sessionRequest("two"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Night Forest","sessions":[]}`, second.Text())
	assert.Equal(t, 18, second.Usage.TotalTokens)

	_, err = mock.Generate(context.Background(), sessionRequest("three"))
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail, "an empty queue means the provider is gone")

	assert.Equal(t, 3, mock.CallCount())
	last, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, "Write session three.", last.Messages[0].Content)
}

func TestMockProvider_ConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestMockProvider_BlockHonoursContext(t *testing.T) {
	block := make(chan struct{})
	mock := NewMockProvider(MockResponse{Content: json.RawMessage("x"), Block: block})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mock.Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)
	assert.ErrorIs(t, err, context.Canceled)

	mock.AddResponse(MockResponse{Content: json.RawMessage("the bee buzzes."), Block: block})
	close(block)
	resp, err := mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "the bee buzzes.", resp.Text())
}

func TestMockProvider_NoCalls(t *testing.T) {
	_, ok := NewMockProvider().LastCall()
	assert.False(t, ok)
}

func TestResponseText_Nil(t *testing.T) {
	var r *Response
	assert.Empty(t, r.Text())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, PurposeLessonSession, PurposeFrom(WithPurpose(ctx, PurposeLessonSession)))
	assert.Equal(t, PurposeLessonOutline, PurposeFrom(WithPurpose(ctx, PurposeLessonOutline)))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
