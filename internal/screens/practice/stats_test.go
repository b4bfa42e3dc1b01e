package practice

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStats_Record(t *testing.T) {
	var s Stats
	assert.Equal(t, 1.0, s.Accuracy())

	assert.False(t, s.Record("the sun", "the sin"))
	assert.False(t, s.Record("the sun", "the su"))
	assert.True(t, s.Record("the sun", "the sun"))

	assert.Equal(t, 3, s.Attempts)
	assert.Equal(t, 1, s.Lines)
	assert.Equal(t, 6+6+7, s.Correct)
	assert.Equal(t, 2, s.Incorrect)
	assert.InDelta(t, 19.0/21.0, s.Accuracy(), 1e-9)
}

func TestStats_WPM(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	s := Stats{StartedAt: start, EndedAt: start.Add(time.Minute), Correct: 50}
	assert.Equal(t, time.Minute, s.Duration())
	assert.InDelta(t, 10.0, s.WPM(), 1e-9)

	assert.Zero(t, Stats{Correct: 50}.WPM())
	assert.Zero(t, Stats{StartedAt: start, EndedAt: start.Add(-time.Second)}.Duration())
}

func TestFirstMistake(t *testing.T) {
	tests := []struct {
		target, typed string
		want          int
	}{
		{"the cat", "", -1},
		{"the cat", "the c", -1},
		{"the cat", "the cat", -1},
		{"the cat", "thx", 2},
		{"the cat", "the cats", 7},
		{"día", "dí", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, firstMistake(tt.target, tt.typed), "%q vs %q", tt.target, tt.typed)
	}
}

func TestRenderTarget_KeepsText(t *testing.T) {
	tests := []struct {
		typed string
		want  string
	}{
		{"", "the cat sat"},
		{"the", "the cat sat"},
		{"thx", "the cat sat"},
		{"the cat sat", "the cat sat"},
		{"the cat sat on", "the cat sat "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripStyles(renderTarget("the cat sat", tt.typed)), tt.typed)
	}
}

// stripStyles drops ANSI escape sequences.
func stripStyles(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
