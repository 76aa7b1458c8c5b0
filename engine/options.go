package engine

import (
	"time"

	"ladderfall/game"
	"ladderfall/leaderboard"
)

type Option func(e *Engine)

// WithSeed seeds the engine's generator so games can be replayed.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.random = game.NewRandom(seed)
	}
}

// WithRandom supplies every die roll, direction draw and ladder shuffle.
func WithRandom(r game.Random) Option {
	return func(e *Engine) {
		if r != nil {
			e.random = r
		}
	}
}

// WithNames names players by seat. Seats without a name keep the default.
func WithNames(names ...string) Option {
	return func(e *Engine) {
		e.names = names
	}
}

// WithLadders fixes the ladder set for every game instead of generating one.
func WithLadders(ladders ...game.Ladder) Option {
	return func(e *Engine) {
		fixed := make([]game.Ladder, len(ladders))
		copy(fixed, ladders)
		e.fixedLadders = fixed
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.clock = now
		}
	}
}

// WithLeaderboard records winners on lb, which may be shared with other
// engines.
func WithLeaderboard(lb *leaderboard.Leaderboard) Option {
	return func(e *Engine) {
		if lb != nil {
			e.board = lb
		}
	}
}

func WithListener(l Listener) Option {
	return func(e *Engine) {
		if l != nil {
			e.listener = l
		}
	}
}

// WithBonusTurns makes a bonus tile put the player straight back at the head
// of the rotation. Without it, callers grant the extra turn themselves with
// GrantBonusTurn.
func WithBonusTurns(enabled bool) Option {
	return func(e *Engine) {
		e.bonusTurns = enabled
	}
}
