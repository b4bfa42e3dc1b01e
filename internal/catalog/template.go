package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the topic tag assigned to a template when it is defined.
type Category string

const (
	CategoryStory     Category = "story"
	CategorySpace     Category = "education-space"
	CategoryAnimals   Category = "education-animals"
	CategoryOcean     Category = "education-ocean"
	CategoryDinosaurs Category = "education-dinosaurs"
	CategoryCreative  Category = "creative"
	CategoryOther     Category = "other"
)

// AllCategories lists every category in declaration order.
var AllCategories = []Category{
	CategoryStory,
	CategorySpace,
	CategoryAnimals,
	CategoryOcean,
	CategoryDinosaurs,
	CategoryCreative,
	CategoryOther,
}

// Family groups categories by how their sessions are sequenced.
type Family string

const (
	FamilyNarrative   Family = "narrative"
	FamilyEducational Family = "educational"
	FamilyGeneric     Family = "generic"
)

// Family returns the sequencing family for the category.
func (c Category) Family() Family {
	switch c {
	case CategoryStory, CategoryCreative:
		return FamilyNarrative
	case CategorySpace, CategoryAnimals, CategoryOcean, CategoryDinosaurs:
		return FamilyEducational
	default:
		return FamilyGeneric
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Subject is a short human label for the category, used in prompts.
func (c Category) Subject() string {
	switch c {
	case CategoryStory:
		return "a story"
	case CategorySpace:
		return "space"
	case CategoryAnimals:
		return "animals"
	case CategoryOcean:
		return "the ocean"
	case CategoryDinosaurs:
		return "dinosaurs"
	case CategoryCreative:
		return "an invented world"
	default:
		return "a creative topic"
	}
}

// AgeRange is an inclusive learner age bracket.
type AgeRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether age falls inside the range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

func (r AgeRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Template is an immutable catalog entry describing a multi-session lesson.
type Template struct {
	ID                string   `yaml:"id"`
	Title             string   `yaml:"title"`
	Category          Category `yaml:"category"`
	Description       string   `yaml:"description"`
	SuggestedSessions int      `yaml:"sessions"`
	Ages              AgeRange `yaml:"ages"`
}

// ErrInvalidTemplate is returned when a template fails validation.
var ErrInvalidTemplate = errors.New("invalid lesson template")

// Validate checks the template's invariants.
func (t Template) Validate() error {
	switch {
	case strings.TrimSpace(t.Title) == "":
		return fmt.Errorf("%w: empty title", ErrInvalidTemplate)
	case !t.Category.Valid():
		return fmt.Errorf("%w %q: unknown category %q", ErrInvalidTemplate, t.Title, t.Category)
	case t.SuggestedSessions < 1:
		return fmt.Errorf("%w %q: session count %d", ErrInvalidTemplate, t.Title, t.SuggestedSessions)
	case t.Ages.Min > t.Ages.Max:
		return fmt.Errorf("%w %q: age range %s", ErrInvalidTemplate, t.Title, t.Ages)
	}
	return nil
}

// ClassifyTitle picks a category for a free-form title. Checks are
// case-insensitive substring matches and the first hit wins.
func ClassifyTitle(title string) Category {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "story"):
		return CategoryStory
	case strings.Contains(t, "animal"):
		return CategoryAnimals
	case strings.Contains(t, "ocean"), strings.Contains(t, "sea"):
		return CategoryOcean
	case strings.Contains(t, "space"):
		return CategorySpace
	case strings.Contains(t, "dinosaur"):
		return CategoryDinosaurs
	case strings.Contains(t, "invent"), strings.Contains(t, "world"), strings.Contains(t, "creative"):
		return CategoryCreative
	default:
		return CategoryOther
	}
}
