package lessonplan

import (
	"strings"
	"unicode/utf8"
)

// Classify grades text by its mean whitespace-separated token length:
// below 4 is easy, below 6 is medium, anything longer is hard. Text with
// no tokens is easy.
func Classify(text string) Difficulty {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return Easy
	}

	chars := 0
	for _, t := range tokens {
		chars += utf8.RuneCountInString(t)
	}
	mean := float64(chars) / float64(len(tokens))

	switch {
	case mean < 4:
		return Easy
	case mean < 6:
		return Medium
	default:
		return Hard
	}
}

// estimateMinutes allows one minute per 50 characters, at least one.
func estimateMinutes(content string) int {
	n := utf8.RuneCountInString(content)
	return max(1, (n+49)/50)
}
