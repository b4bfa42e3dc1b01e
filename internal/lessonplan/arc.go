package lessonplan

import "github.com/abhisek/keypals/internal/catalog"

// Stage is the phase of a lesson a session belongs to.
type Stage string

// Narrative and educational families share StageConclusion.
const (
	StageOpening       Stage = "opening"
	StageDevelopment   Stage = "development"
	StageRisingAction  Stage = "rising-action"
	StageClimax        Stage = "climax"
	StageConclusion    Stage = "conclusion"
	StageIntroduction  Stage = "introduction"
	StageExploration   Stage = "exploration"
	StageDeepDive      Stage = "deep-dive"
	StageCreativeStory Stage = "creative-narrative"
)

// StageInstruction describes what one session's text must accomplish.
type StageInstruction struct {
	Stage     Stage
	Family    catalog.Family
	Tone      string
	Beats     []string
	Example   string
	Objective string
}

// PlanStage picks the stage for a session from its position in the plan.
// It never fails: totalSessions below 1 is treated as 1 and sessionNumber
// is clamped into [1, totalSessions].
func PlanStage(sessionNumber, totalSessions int, cat catalog.Category) StageInstruction {
	n, total := clampPosition(sessionNumber, totalSessions)
	progress := float64(n) / float64(total)

	family := cat.Family()
	var stage Stage
	switch family {
	case catalog.FamilyNarrative:
		switch {
		case n == 1:
			stage = StageOpening
		case progress <= 0.4:
			stage = StageDevelopment
		case progress <= 0.7:
			stage = StageRisingAction
		case n < total:
			stage = StageClimax
		default:
			stage = StageConclusion
		}
	case catalog.FamilyEducational:
		switch {
		case n == 1:
			stage = StageIntroduction
		case progress <= 0.5:
			stage = StageExploration
		case n < total:
			stage = StageDeepDive
		default:
			stage = StageConclusion
		}
	default:
		stage = StageCreativeStory
	}

	tmpl := stageTemplates[stageKey{family, stage}]
	return StageInstruction{
		Stage:     stage,
		Family:    family,
		Tone:      tmpl.tone,
		Beats:     append([]string(nil), tmpl.beats...),
		Example:   tmpl.example,
		Objective: tmpl.objective,
	}
}

func clampPosition(sessionNumber, totalSessions int) (int, int) {
	total := max(1, totalSessions)
	return min(max(1, sessionNumber), total), total
}

type stageKey struct {
	family catalog.Family
	stage  Stage
}

type stageTemplate struct {
	tone      string
	beats     []string
	example   string
	objective string
}

var stageTemplates = map[stageKey]stageTemplate{
	{catalog.FamilyNarrative, StageOpening}: {
		tone: "calm and welcoming",
		beats: []string{
			"introduce one main character by name",
			"describe where the character lives",
			"show one thing the character likes to do",
		},
		example:   "mia lives in a small house next to a quiet green park.",
		objective: "Meet the main character and their home",
	},
	{catalog.FamilyNarrative, StageDevelopment}: {
		tone: "warm and steady",
		beats: []string{
			"continue with the same character and place",
			"add a friend or helper",
			"show a normal day with a simple plan",
		},
		example:   "mia and her friend sam plan a picnic by the pond.",
		objective: "Build the story world with a friend and a plan",
	},
	{catalog.FamilyNarrative, StageRisingAction}: {
		tone: "gently curious",
		beats: []string{
			"introduce a small, safe problem",
			"show the characters noticing the problem",
			"let them think about what to do",
		},
		example:   "the picnic basket is missing and mia looks under the bench.",
		objective: "Introduce a small problem to solve",
	},
	{catalog.FamilyNarrative, StageClimax}: {
		tone: "hopeful and clear",
		beats: []string{
			"show the characters working together",
			"try one idea step by step",
			"solve the problem in a calm way",
		},
		example:   "sam finds the basket behind the big oak tree.",
		objective: "Work together to solve the problem",
	},
	{catalog.FamilyNarrative, StageConclusion}: {
		tone: "settled and happy",
		beats: []string{
			"show everyone safe and content",
			"repeat one thing the character learned",
			"end the day in a quiet, familiar way",
		},
		example:   "mia and sam eat their sandwiches and watch the ducks swim.",
		objective: "Finish the story with a calm ending",
	},
	{catalog.FamilyEducational, StageIntroduction}: {
		tone: "clear and friendly",
		beats: []string{
			"name the topic plainly",
			"share one easy true fact",
			"connect the topic to something the child knows",
		},
		example:   "the sun is a star that gives our earth light and heat.",
		objective: "Learn the first simple facts about the topic",
	},
	{catalog.FamilyEducational, StageExploration}: {
		tone: "curious and factual",
		beats: []string{
			"share two or three new facts",
			"describe size, color or shape",
			"use one new word and explain it",
		},
		example:   "mars looks red because its dust has a lot of rust.",
		objective: "Explore more facts and new words",
	},
	{catalog.FamilyEducational, StageDeepDive}: {
		tone: "focused and precise",
		beats: []string{
			"look closely at one interesting detail",
			"explain how or why something happens",
			"compare two things the child has learned",
		},
		example:   "jupiter is so big that all the other planets could fit inside.",
		objective: "Look closely at one detail and how it works",
	},
	{catalog.FamilyEducational, StageConclusion}: {
		tone: "proud and calm",
		beats: []string{
			"review the facts from earlier sessions",
			"name the favorite fact",
			"finish with a simple summary",
		},
		example:   "we learned that planets travel around the sun in long paths.",
		objective: "Review what was learned",
	},
	{catalog.FamilyGeneric, StageCreativeStory}: {
		tone: "light and creative",
		beats: []string{
			"describe a friendly scene",
			"use concrete nouns and simple actions",
			"keep the same setting all the way through",
		},
		example:   "a small blue bird sits on the fence and sings every morning.",
		objective: "Practice typing a short creative scene",
	},
}
