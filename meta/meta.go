// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines simulating games.
const GO_ROUTINES = 8

// GAMES defines the number of games in a simulation batch.
const GAMES = 1000

// PLAYERS defines the number of seats in a simulated game.
const PLAYERS = 4

// MAX_TURNS caps a single game. Backward draws make a game unbounded in principle.
const MAX_TURNS = 2000

// TOP_N defines how many leaderboard rows are reported.
const TOP_N = 10

// MIN_PLAYERS and MAX_PLAYERS bound the seats a game can be set up with.
const (
	MIN_PLAYERS = 2
	MAX_PLAYERS = 8
)
