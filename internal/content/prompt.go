package content

import (
	"fmt"
	"strings"
)

const systemPromptBase = `You write typing practice text for autistic children. Use calm, concrete, literal language. Avoid sarcasm, idioms, sudden surprises and anything frightening. Keep sentences predictable and kind.`

func buildSystemPrompt(age int) string {
	if age <= 0 {
		return systemPromptBase
	}
	return fmt.Sprintf("%s The learner is %d years old.", systemPromptBase, age)
}

func buildOutlineUserMessage(req Request) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", req.Topic))
	if req.LearnerAge > 0 {
		b.WriteString(fmt.Sprintf("Learner age: %d\n", req.LearnerAge))
	}
	if req.Instruction != "" {
		b.WriteString("\n")
		b.WriteString(req.Instruction)
		b.WriteString("\n")
	}

	b.WriteString(`
Instructions:
Plan a short typing lesson about this topic.
1. Give the lesson a friendly title.
2. Describe the setting in one simple sentence.
3. Write one short line for each session saying what the child will type about.`)

	return b.String()
}
