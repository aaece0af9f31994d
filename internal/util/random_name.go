package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Hungry", "Sleepy", "Greedy", "Lucky", "Sneaky", "Lazy", "Crispy", "Steamed", "Salty", "Spicy", "Sticky",
	"Golden", "Smelly", "Fluffy", "Grumpy", "Jolly", "Soggy", "Tiny", "Grand", "Humble", "Clever", "Cheeky",
}

var animals = []string{
	"Panda", "Crane", "Tiger", "Monkey", "Dragon", "Rabbit", "Ox", "Rooster", "Goat", "Pig", "Rat", "Snake",
	"Horse", "Dog", "Carp", "Turtle", "Magpie", "Sparrow", "Fox", "Deer",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
