package engine

import "ladderfall/game"

// Listener is told what happened after each turn. Sound and animation layers
// hook in here; the engine never calls into them directly. Calls are made
// synchronously from PlayTurn and receive copies.
type Listener interface {
	TurnResolved(rec game.MoveRecord)
	LadderClimbed(player game.Player, ladder game.Ladder)
	GameOver(winner game.Player)
}

type NopListener struct{}

func (NopListener) TurnResolved(game.MoveRecord)           {}
func (NopListener) LadderClimbed(game.Player, game.Ladder) {}
func (NopListener) GameOver(game.Player)                   {}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnTurn     func(rec game.MoveRecord)
	OnLadder   func(player game.Player, ladder game.Ladder)
	OnGameOver func(winner game.Player)
}

func (f ListenerFuncs) TurnResolved(rec game.MoveRecord) {
	if f.OnTurn != nil {
		f.OnTurn(rec)
	}
}

func (f ListenerFuncs) LadderClimbed(player game.Player, ladder game.Ladder) {
	if f.OnLadder != nil {
		f.OnLadder(player, ladder)
	}
}

func (f ListenerFuncs) GameOver(winner game.Player) {
	if f.OnGameOver != nil {
		f.OnGameOver(winner)
	}
}
