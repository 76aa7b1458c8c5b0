// Package engine resolves turns of a Ladderfall game: it owns the players,
// the rotation, the ladders and the history of one game, and records winners
// on a leaderboard that outlives resets.
//
// An Engine is not safe for concurrent use; callers serialize PlayTurn,
// Reset and any player mutation.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"ladderfall/game"
	"ladderfall/leaderboard"
	"ladderfall/searcher"
	"ladderfall/utils"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrUnknownPlayer = errors.New("unknown player")
)

type Engine struct {
	roster   []*game.Player // Seat order
	rotation []int          // Seats waiting to play, head plays next
	history  []game.MoveRecord
	names    []string

	ladders      []game.Ladder
	fixedLadders []game.Ladder // Reused on every reset when set
	pathfinder   *searcher.Pathfinder

	gameOver  bool
	winner    int // Seat, -1 while in progress
	startedAt time.Time

	random     game.Random
	clock      func() time.Time
	board      *leaderboard.Leaderboard
	listener   Listener
	bonusTurns bool
}

// New sets up a game for playerCount players named "Player 1" onwards. The
// count is not validated; 2 to 8 players are expected.
func New(playerCount int, options ...Option) *Engine {
	e := &Engine{ // Default values
		winner:   -1,
		clock:    time.Now,
		listener: NopListener{},
	}
	for _, option := range options {
		option(e)
	}
	if e.random == nil {
		e.random = game.NewRandom(uint64(time.Now().UnixNano()))
	}
	if e.board == nil {
		e.board = leaderboard.New()
	}
	if e.fixedLadders != nil {
		if err := game.ValidateLadders(e.fixedLadders); err != nil {
			log.Warn().Err(err).Msg("ignoring fixed ladders, generating instead")
			e.fixedLadders = nil
		}
	}

	for seat := 0; seat < playerCount; seat++ {
		name := game.DefaultName(seat)
		if seat < len(e.names) && e.names[seat] != "" {
			name = e.names[seat]
		}
		e.roster = append(e.roster, game.NewPlayer(name, game.SeatColor(seat)))
	}

	e.Reset()
	return e
}

// Reset starts a new game with the same players: fresh ladders, everyone back
// on the start tile with no points, and the rotation in seat order. The
// leaderboard is kept.
func (e *Engine) Reset() {
	e.gameOver = false
	e.winner = -1
	e.history = nil

	if e.fixedLadders != nil {
		e.ladders = append([]game.Ladder(nil), e.fixedLadders...)
	} else {
		e.ladders = game.GenerateLadders(e.random)
	}
	e.pathfinder = searcher.NewPathfinder(e.ladders)

	e.rotation = e.rotation[:0]
	for seat, p := range e.roster {
		p.Reset()
		e.rotation = append(e.rotation, seat)
	}
	e.startedAt = e.clock()

	log.Debug().Int("players", len(e.roster)).Interface("ladders", e.ladders).Msg("game reset")
}

// PlayTurn resolves one turn for the player at the head of the rotation. It
// returns false, and changes nothing, once the game is over.
func (e *Engine) PlayTurn() (game.MoveRecord, bool) {
	if e.gameOver || len(e.rotation) == 0 {
		return game.MoveRecord{}, false
	}

	seat := e.rotation[0]
	e.rotation = e.rotation[1:]
	player := e.roster[seat]

	die := game.RollDie(e.random)
	probability := e.random.Float64()
	steps := die
	if probability > game.ForwardProbability {
		steps = -die
	}

	from := player.Position
	player.Move(steps)
	landed := player.Position

	// Scored on the tile the die reached, before any ladder
	points := game.TilePoints(landed)
	bonus := game.IsBonusTile(landed)
	if bonus {
		points += game.BonusPoints
	}
	player.AddPoints(points)

	rec := game.MoveRecord{
		Player:       player.Name,
		Die:          die,
		Probability:  probability,
		Steps:        steps,
		From:         from,
		To:           landed,
		Landed:       landed,
		PointsEarned: points,
		BonusTurn:    bonus,
	}

	// Backward moves never climb
	if rec.Forward() {
		if ladder, ok := game.FindLadder(e.ladders, landed); ok {
			player.SetPosition(ladder.To)
			rec = rec.WithLadder(ladder)
			e.listener.LadderClimbed(*player, ladder)
		}
	}
	e.history = append(e.history, rec)

	log.Debug().
		Str("player", rec.Player).
		Int("die", rec.Die).
		Int("steps", rec.Steps).
		Int("from", rec.From).
		Int("to", rec.To).
		Int("points", rec.PointsEarned).
		Bool("ladder", rec.HasLadder()).
		Bool("bonus", rec.BonusTurn).
		Msg("turn resolved")

	switch {
	case player.Finished():
		e.finish(seat)
	case bonus && e.bonusTurns:
		e.rotation = append([]int{seat}, e.rotation...)
	default:
		e.rotation = append(e.rotation, seat)
	}

	e.listener.TurnResolved(rec)
	if e.gameOver {
		e.listener.GameOver(*player)
	}
	return rec, true
}

func (e *Engine) finish(seat int) {
	player := e.roster[seat]
	e.gameOver = true
	e.winner = seat
	player.CompletionTime = e.clock().Sub(e.startedAt)
	player.AddPoints(game.WinBonus)
	e.board.AddScore(player.Name, player.Points, player.CompletionTime)

	log.Info().Msgf("%s wins with %d points after %d moves (%s)",
		player.Name, player.Points, player.MoveCount, leaderboard.FormatDuration(player.CompletionTime))
}

// Run plays turns until someone wins or maxTurns turns have been played, and
// returns the number of turns played.
func (e *Engine) Run(maxTurns int) int {
	turns := 0
	for !e.gameOver && turns < maxTurns {
		if _, ok := e.PlayTurn(); !ok {
			break
		}
		turns++
	}
	if !e.gameOver {
		log.Debug().Msgf("stopped after %d turns (no winner yet)", turns)
	}
	return turns
}

// GrantBonusTurn moves the named player to the head of the rotation so they
// play next.
func (e *Engine) GrantBonusTurn(name string) error {
	if e.gameOver {
		return ErrGameOver
	}
	seat, err := e.seatOf(name)
	if err != nil {
		return err
	}
	i := utils.FindIndex(e.rotation, seat)
	if i < 0 {
		return fmt.Errorf("%w: %s is not waiting to play", ErrUnknownPlayer, name)
	}
	e.rotation = utils.MoveToFront(e.rotation, i)
	return nil
}

// RenamePlayer renames the player in the given zero-based seat.
func (e *Engine) RenamePlayer(seat int, name string) error {
	if seat < 0 || seat >= len(e.roster) {
		return fmt.Errorf("%w: no seat %d", ErrUnknownPlayer, seat)
	}
	e.roster[seat].Name = name
	return nil
}

// DistanceToFinish returns the fewest rolls the named player needs to reach
// the finish, or searcher.Unreachable.
func (e *Engine) DistanceToFinish(name string) (int, error) {
	seat, err := e.seatOf(name)
	if err != nil {
		return searcher.Unreachable, err
	}
	return e.pathfinder.ShortestDistance(e.roster[seat].Position, game.BoardSize), nil
}

// CurrentPlayer returns the player due to play next.
func (e *Engine) CurrentPlayer() (game.Player, bool) {
	if len(e.rotation) == 0 {
		return game.Player{}, false
	}
	return *e.roster[e.rotation[0]], true
}

// Players returns copies of every player in seat order.
func (e *Engine) Players() []game.Player {
	players := make([]game.Player, len(e.roster))
	for i, p := range e.roster {
		players[i] = *p
	}
	return players
}

// RankedPlayers returns copies of every player, highest score first. Ties
// keep seat order.
func (e *Engine) RankedPlayers() []game.Player {
	ranked := e.Players()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	return ranked
}

func (e *Engine) HighestScore() int {
	highest := 0
	for _, p := range e.roster {
		highest = max(highest, p.Points)
	}
	return highest
}

func (e *Engine) IsGameOver() bool {
	return e.gameOver
}

func (e *Engine) Winner() (game.Player, bool) {
	if e.winner < 0 {
		return game.Player{}, false
	}
	return *e.roster[e.winner], true
}

func (e *Engine) Ladders() []game.Ladder {
	return append([]game.Ladder(nil), e.ladders...)
}

func (e *Engine) Pathfinder() *searcher.Pathfinder {
	return e.pathfinder
}

// History returns every move of the current game, newest first.
func (e *Engine) History() []game.MoveRecord {
	return utils.Reversed(e.history)
}

func (e *Engine) LastMove() (game.MoveRecord, bool) {
	if len(e.history) == 0 {
		return game.MoveRecord{}, false
	}
	return e.history[len(e.history)-1], true
}

func (e *Engine) Leaderboard() *leaderboard.Leaderboard {
	return e.board
}

func (e *Engine) seatOf(name string) (int, error) {
	for seat, p := range e.roster {
		if p.Name == name {
			return seat, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
}
