package lessonplan

import "github.com/abhisek/keypals/internal/catalog"

// Fallback sessions are always easy and take five minutes.
const fallbackMinutes = 5

type fallbackKey string

const (
	fallbackAnimals   fallbackKey = "animals"
	fallbackSpace     fallbackKey = "space"
	fallbackOcean     fallbackKey = "ocean"
	fallbackDinosaurs fallbackKey = "dinosaurs"
	fallbackStory     fallbackKey = "story"
)

func fallbackKeyFor(cat catalog.Category) fallbackKey {
	switch cat {
	case catalog.CategoryAnimals:
		return fallbackAnimals
	case catalog.CategorySpace:
		return fallbackSpace
	case catalog.CategoryOcean:
		return fallbackOcean
	case catalog.CategoryDinosaurs:
		return fallbackDinosaurs
	default:
		return fallbackStory
	}
}

// FallbackPassages returns the built-in passages used for cat when the
// provider cannot be used.
func FallbackPassages(cat catalog.Category) []string {
	return append([]string(nil), fallbackPassages[fallbackKeyFor(cat)]...)
}

// Fallback builds a session from the built-in passages. The passage is
// chosen by sessionNumber modulo the list length, so long plans cycle
// through the list. Number is set; Stage and CreatedAt are left for the
// caller.
func Fallback(cat catalog.Category, sessionNumber int) Session {
	key := fallbackKeyFor(cat)
	list := fallbackPassages[key]

	i := sessionNumber % len(list)
	if i < 0 {
		i += len(list)
	}

	return Session{
		Number:           sessionNumber,
		Content:          list[i],
		Objective:        fallbackObjectives[key],
		Difficulty:       Easy,
		EstimatedMinutes: fallbackMinutes,
		Fallback:         true,
	}
}

var fallbackObjectives = map[fallbackKey]string{
	fallbackAnimals:   "Practice typing simple sentences about animals",
	fallbackSpace:     "Practice typing simple sentences about space",
	fallbackOcean:     "Practice typing simple sentences about the ocean",
	fallbackDinosaurs: "Practice typing simple sentences about dinosaurs",
	fallbackStory:     "Practice typing a short calm story",
}

var fallbackPassages = map[fallbackKey][]string{
	fallbackAnimals: {
		"the cat sits on the warm mat.\nthe dog runs in the green park.\na bird sings in the tall tree.\nthe fish swims in the clear pond.\nall the animals are happy today.",
		"the cow eats grass on the farm.\nthe pig rolls in the soft mud.\nthe hen lays a small brown egg.\nthe horse walks to the red barn.\nthe farmer says good morning to them.",
		"the bear sleeps in a deep cave.\nthe fox has a long orange tail.\nthe owl looks out at night.\nthe deer drinks from the cool river.\nthe forest is quiet and calm.",
		"the lion rests under a big tree.\nthe monkey swings from branch to branch.\nthe elephant sprays water with its trunk.\nthe zebra has black and white stripes.\nthe sun sets over the wide land.",
	},
	fallbackSpace: {
		"the sun is a big bright star.\nthe moon goes around the earth.\nwe see stars when the sky is dark.\nthe earth is our home planet.\nspace is very big and very quiet.",
		"mars is a red and dusty planet.\njupiter is the biggest planet of all.\nsaturn has wide rings made of ice.\nastronauts float inside their space station.\na rocket goes up with a loud sound.",
		"a comet has a long bright tail.\nthe stars make shapes in the sky.\nthe moon looks different every night.\nwe use a telescope to see far away.\none day we may visit other planets.",
	},
	fallbackOcean: {
		"the ocean is big and blue.\nwaves roll onto the soft sand.\na crab walks on the wet beach.\nshells shine in the morning sun.\nthe water is cool on our feet.",
		"a turtle swims slowly in the sea.\nsmall fish swim together in a group.\nthe coral is pink and orange.\na dolphin jumps out of the water.\nthe reef is full of life.",
		"the whale is the largest animal.\nit sings songs under the water.\nan octopus has eight long arms.\na starfish holds on to a rock.\nthe deep sea is dark and calm.",
	},
	fallbackDinosaurs: {
		"dinosaurs lived a long time ago.\nsome dinosaurs were very big.\nsome dinosaurs were very small.\nmany dinosaurs ate plants and leaves.\nwe learn about them from fossils.",
		"the long neck dinosaur ate from trees.\nthe three horn dinosaur had a big frill.\nsome dinosaurs walked on two legs.\nsome dinosaurs had hard plates on their backs.\nbaby dinosaurs hatched from eggs.",
		"scientists dig carefully to find bones.\nthey brush the dust off each fossil.\nmuseums show dinosaur bones to visitors.\nwe can see how tall they were.\nlearning about dinosaurs is fun.",
	},
	fallbackStory: {
		"once there was a small gray cat.\nthe cat lived in a cozy blue house.\nevery day the cat sat by the window.\nthe cat liked to watch the birds.\nat night the cat slept on a soft bed.",
		"a girl named lily had a red kite.\nshe took the kite to the hill.\nthe wind lifted the kite up high.\nlily held the string with both hands.\nshe smiled as the kite danced in the sky.",
		"tom found a map in an old box.\nthe map showed a path to the garden.\ntom followed the path with his dog.\nunder a tree they found a tin of marbles.\ntom shared the marbles with his friends.",
		"the little train went up the hill.\nit carried toys for the children in town.\nthe train went slowly but it did not stop.\nat the top the train rang its bell.\nall the children came out to say hello.",
	},
}
