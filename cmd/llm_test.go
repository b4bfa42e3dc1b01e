package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/keypals/internal/store"
)

func TestCostTable_MarksUnpricedModels(t *testing.T) {
	tbl, unpriced := costTable([]store.LLMModelUsage{
		{Model: "gpt-4o-mini", Calls: 4, InputTokens: 1_000_000, OutputTokens: 1_000_000},
		{Model: "local/llama", Calls: 1, InputTokens: 10, OutputTokens: 10},
	})
	assert.Equal(t, []string{"local/llama"}, unpriced)

	out := tbl.String()
	assert.Contains(t, out, "$0.75")
	assert.Contains(t, out, "total (partial)")
	assert.Contains(t, out, "?")
}

func TestPurposeTable_Totals(t *testing.T) {
	out := purposeTable([]store.LLMUsageStats{
		{Purpose: "lesson-outline", Calls: 2, InputTokens: 100, OutputTokens: 40},
		{Purpose: "lesson-session", Calls: 8, Failures: 1, InputTokens: 900, OutputTokens: 300},
	}).String()
	assert.Contains(t, out, "lesson-session")
	assert.Contains(t, out, "1000")
	assert.Contains(t, out, "340")
}

func TestPrintLLMEvent(t *testing.T) {
	var buf bytes.Buffer
	printLLMEvent(&buf, &store.LLMRequestEventRecord{
		ID:        7,
		Timestamp: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			Provider:     "anthropic",
			Purpose:      "lesson-session",
			RequestBody:  "[user]\nwrite session two",
			ErrorMessage: "LLM provider unavailable",
		},
	})
	out := buf.String()
	assert.Contains(t, out, "anthropic")
	assert.Contains(t, out, "write session two")
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "(not captured)")
}
