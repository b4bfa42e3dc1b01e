package lessonplan

import "github.com/abhisek/keypals/internal/catalog"

// SessionAction returns one line of concrete subject guidance for a
// session. The guidance list is indexed by sessionNumber-1 and saturates:
// sessions past the end of the list repeat its last line.
func SessionAction(sessionNumber, totalSessions int, cat catalog.Category) string {
	n, _ := clampPosition(sessionNumber, totalSessions)
	list := sessionActions[cat]
	if len(list) == 0 {
		list = genericActions
	}
	return list[min(n-1, len(list)-1)]
}

var genericActions = []string{
	"describe a place the child can picture clearly",
	"add a friendly character who visits that place",
	"show the character doing one calm activity",
	"end with the character feeling happy and safe",
}

var sessionActions = map[catalog.Category][]string{
	catalog.CategoryStory: {
		"introduce the hero and their favorite place",
		"the hero meets a kind friend",
		"the friends find something unusual",
		"they solve the puzzle together",
		"they celebrate and go home",
	},
	catalog.CategoryAnimals: {
		"describe a farm animal and the sound it makes",
		"describe a forest animal and what it eats",
		"describe a jungle animal and how it moves",
		"describe a polar animal and how it stays warm",
		"compare two favorite animals",
	},
	catalog.CategoryOcean: {
		"describe the beach and the waves",
		"meet a sea turtle swimming near the shore",
		"explore a coral reef full of fish",
		"visit the deep ocean and its glowing creatures",
	},
	catalog.CategorySpace: {
		"describe the sun and the moon",
		"visit the rocky planets near the sun",
		"fly past the giant gas planets",
		"learn about stars and constellations",
		"return to earth as a space explorer",
	},
	catalog.CategoryDinosaurs: {
		"describe a gentle plant-eating dinosaur",
		"describe a dinosaur with horns or spikes",
		"describe a flying reptile in the sky",
		"learn how scientists find dinosaur fossils",
	},
	catalog.CategoryCreative: {
		"name a new world and describe its sky",
		"describe the plants and animals that live there",
		"describe the people and their homes",
		"describe a festival in the new world",
		"describe a journey across the world",
		"describe what makes this world special",
	},
}
