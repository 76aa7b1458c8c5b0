package metrics

import (
	"time"

	"ladderfall/game"
)

type TurnMetric struct {
	Game   int // GameMetric.ID
	Turn   int
	Player string
	Die    int
	Steps  int
	From   int
	To     int
	Points int
	Ladder bool
	Bonus  bool
}

type GameMetric struct {
	ID             int
	Seed           uint64
	Winner         string // "" when the game hit the turn cap
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	Turns          int
	LaddersClimbed int
	BonusLandings  int
	BackwardMoves  int
}

func (g GameMetric) Finished() bool {
	return g.Winner != ""
}

// Collector follows one game through the engine's listener hooks.
type Collector interface {
	TurnResolved(rec game.MoveRecord)
	LadderClimbed(player game.Player, ladder game.Ladder)
	GameOver(winner game.Player)
	Complete() (GameMetric, []TurnMetric)
}

type collector struct {
	game        GameMetric
	turns       []TurnMetric
	recordTurns bool
}

// NewCollector starts collecting for game id. Per-turn rows are only kept
// when recordTurns is set.
func NewCollector(id int, seed uint64, recordTurns bool) Collector {
	return &collector{
		game: GameMetric{
			ID:        id,
			Seed:      seed,
			StartTime: time.Now(),
		},
		recordTurns: recordTurns,
	}
}

func (c *collector) TurnResolved(rec game.MoveRecord) {
	c.game.Turns++
	if rec.BonusTurn {
		c.game.BonusLandings++
	}
	if !rec.Forward() {
		c.game.BackwardMoves++
	}
	if !c.recordTurns {
		return
	}
	c.turns = append(c.turns, TurnMetric{
		Game:   c.game.ID,
		Turn:   c.game.Turns,
		Player: rec.Player,
		Die:    rec.Die,
		Steps:  rec.Steps,
		From:   rec.From,
		To:     rec.To,
		Points: rec.PointsEarned,
		Ladder: rec.HasLadder(),
		Bonus:  rec.BonusTurn,
	})
}

func (c *collector) LadderClimbed(player game.Player, ladder game.Ladder) {
	c.game.LaddersClimbed++
}

func (c *collector) GameOver(winner game.Player) {
	c.game.Winner = winner.Name
}

func (c *collector) Complete() (GameMetric, []TurnMetric) {
	c.game.EndTime = time.Now()
	c.game.Duration = c.game.EndTime.Sub(c.game.StartTime)
	return c.game, c.turns
}
