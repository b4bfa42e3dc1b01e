package lessonplan

import (
	"fmt"
	"strings"
)

const styleRules = `Rules:
- Use only lowercase letters.
- Write 5 or 6 sentences.
- Each sentence has 8 to 15 words.
- Put each sentence on its own line.
- End each sentence with a period. Use no other punctuation.
- Do not number the sentences or add a title.`

func buildSessionInstruction(plan *Plan, n int, previous string, stage StageInstruction, action string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s (%s)\n", plan.Title, plan.Category.Subject()))
	b.WriteString(fmt.Sprintf("Session %d of %d\n", n, plan.TotalSessions))

	b.WriteString("\nStory so far:\n")
	if strings.TrimSpace(previous) == "" {
		b.WriteString("This is the beginning.\n")
	} else {
		b.WriteString(previous)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nStage: %s\n", stage.Stage))
	b.WriteString(fmt.Sprintf("Tone: %s\n", stage.Tone))
	b.WriteString("This session must:\n")
	for _, beat := range stage.Beats {
		b.WriteString(fmt.Sprintf("- %s\n", beat))
	}
	b.WriteString(fmt.Sprintf("Example sentence: %s\n", stage.Example))

	b.WriteString(fmt.Sprintf("\nToday's focus: %s\n", action))

	if plan.LearnerAge > 0 {
		b.WriteString(fmt.Sprintf("\nLearner age: %d\n", plan.LearnerAge))
	}
	if len(plan.Interests) > 0 {
		b.WriteString(fmt.Sprintf("Learner interests: %s\n", strings.Join(plan.Interests, ", ")))
	}

	b.WriteString("\n")
	b.WriteString(styleRules)

	return b.String()
}

// sanitizeLines turns provider text into typing lines: trimmed, without
// list markers, lowercased, empty lines dropped.
func sanitizeLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = stripListMarker(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		out = append(out, strings.ToLower(line))
	}
	return out
}

func stripListMarker(line string) string {
	for _, m := range []string{"-", "*", "•"} {
		if line == m {
			return ""
		}
		if strings.HasPrefix(line, m+" ") {
			return strings.TrimSpace(line[len(m)+1:])
		}
	}

	// "1. " or "1) "
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(line) && (line[i] == '.' || line[i] == ')') && line[i+1] == ' ' {
		return strings.TrimSpace(line[i+2:])
	}
	return line
}
