package game

import "golang.org/x/exp/rand"

// Random is the source of every die roll, direction draw and ladder shuffle
// in a game. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRandom returns a seeded generator. Equal seeds replay equal games.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}

// RollDie returns a uniform die face in [1, DieFaces].
func RollDie(r Random) int {
	return r.Intn(DieFaces) + 1
}
