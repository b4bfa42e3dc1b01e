package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalogLoads(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	for _, tmpl := range all {
		assert.NoError(t, tmpl.Validate(), tmpl.ID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Title = "mutated"
	assert.NotEqual(t, "mutated", All()[0].Title)
}

func TestGet(t *testing.T) {
	tmpl, err := Get("animals")
	require.NoError(t, err)
	assert.Equal(t, "Animal Adventures", tmpl.Title)
	assert.Equal(t, CategoryAnimals, tmpl.Category)
	assert.Equal(t, 5, tmpl.SuggestedSessions)

	_, err = Get("nope")
	assert.Error(t, err)
}

func TestByCategoryAndAge(t *testing.T) {
	stories := ByCategory(CategoryStory)
	require.Len(t, stories, 1)
	assert.Equal(t, "Let's Make a Story", stories[0].Title)

	for _, tmpl := range ForAge(5) {
		assert.True(t, tmpl.Ages.Contains(5), tmpl.ID)
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero sessions", `templates: [{id: a, title: A, category: story, sessions: 0, ages: {min: 5, max: 9}}]`},
		{"unknown category", `templates: [{id: a, title: A, category: cooking, sessions: 3, ages: {min: 5, max: 9}}]`},
		{"inverted ages", `templates: [{id: a, title: A, category: story, sessions: 3, ages: {min: 9, max: 5}}]`},
		{"empty title", `templates: [{id: a, title: "", category: story, sessions: 3, ages: {min: 5, max: 9}}]`},
		{"missing id", `templates: [{title: A, category: story, sessions: 3, ages: {min: 5, max: 9}}]`},
		{"duplicate id", `templates: [{id: a, title: A, category: story, sessions: 3, ages: {min: 5, max: 9}}, {id: a, title: B, category: story, sessions: 3, ages: {min: 5, max: 9}}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTemplate), "got %v", err)
		})
	}
}

func TestClassifyTitle(t *testing.T) {
	tests := []struct {
		title string
		want  Category
	}{
		{"Let's Make a Story", CategoryStory},
		{"Animal Adventures", CategoryAnimals},
		{"Deep SEA Divers", CategoryOcean},
		{"Ocean Friends", CategoryOcean},
		{"Space Explorers", CategorySpace},
		{"Dinosaur Discovery", CategoryDinosaurs},
		{"Invent a Gadget", CategoryCreative},
		{"My World", CategoryCreative},
		{"Creative Corner", CategoryCreative},
		{"Weather Watch", CategoryOther},
		// First match wins: story is checked before animal.
		{"An Animal Story", CategoryStory},
		// animal before ocean/sea.
		{"Sea Animals", CategoryAnimals},
		// ocean/sea before space.
		{"Seas in Space", CategoryOcean},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTitle(tt.title), tt.title)
	}
}

func TestCategoryFamily(t *testing.T) {
	assert.Equal(t, FamilyNarrative, CategoryStory.Family())
	assert.Equal(t, FamilyNarrative, CategoryCreative.Family())
	for _, c := range []Category{CategorySpace, CategoryAnimals, CategoryOcean, CategoryDinosaurs} {
		assert.Equal(t, FamilyEducational, c.Family(), string(c))
	}
	assert.Equal(t, FamilyGeneric, CategoryOther.Family())
	assert.Equal(t, FamilyGeneric, Category("unknown").Family())
}
