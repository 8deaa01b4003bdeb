package util

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"Lucky", "Smokey", "Midnight", "Quiet", "Crooked", "Honest", "Broke", "Flush", "Velvet", "Rusty",
	"Slick", "Neon", "Shady", "Steady", "Restless", "Gilded", "Humble", "Patient", "Reckless", "Clean",
}

var handles = []string{
	"Ace", "Deuce", "Dealer", "Shark", "Joker", "Gambler", "Drifter", "Stranger", "Regular", "Highroller",
	"Bluff", "Wager", "Marker", "Shuffle", "Cutcard", "Pitboss", "Runner", "Bankroll", "Holdout", "Tell",
}

var random = rand.New(rand.NewSource(rand.Int63())) // nolint:gosec

// GetRandomName returns a random table handle, used when a player signs up
// without a display name or deletes their account
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], handles[random.Intn(len(handles))])
}
