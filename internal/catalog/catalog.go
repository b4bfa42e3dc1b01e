// Package catalog holds the static list of lesson templates.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

// builtin is parsed once at init. A malformed embedded document is a build
// defect, so loading panics rather than returning an error.
var builtin = mustLoad(templatesYAML)

// Load parses a YAML template document and validates every entry.
func Load(data []byte) ([]Template, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	seen := make(map[string]bool, len(f.Templates))
	for _, t := range f.Templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if t.ID == "" {
			return nil, fmt.Errorf("%w %q: missing id", ErrInvalidTemplate, t.Title)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidTemplate, t.ID)
		}
		seen[t.ID] = true
	}
	return f.Templates, nil
}

func mustLoad(data []byte) []Template {
	ts, err := Load(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return ts
}

// All returns a copy of the built-in templates in catalog order.
func All() []Template {
	out := make([]Template, len(builtin))
	copy(out, builtin)
	return out
}

// Get returns the template with the given ID.
func Get(id string) (Template, error) {
	for _, t := range builtin {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("template %q not found", id)
}

// ByCategory returns the built-in templates tagged with cat.
func ByCategory(cat Category) []Template {
	var out []Template
	for _, t := range builtin {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// ForAge returns the built-in templates whose age range includes age.
func ForAge(age int) []Template {
	var out []Template
	for _, t := range builtin {
		if t.Ages.Contains(age) {
			out = append(out, t)
		}
	}
	return out
}
