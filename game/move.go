package game

import "fmt"

// MoveRecord is the audit entry for one resolved turn. Records are passed by
// value; the engine attaches ladder results right after creating one and
// never touches it again.
type MoveRecord struct {
	Player       string
	Die          int     // Face rolled, 1-6
	Probability  float64 // Direction draw in [0,1)
	Steps        int     // Signed: negative when moving backward
	From         int
	To           int // Final tile, after any ladder
	Landed       int // Tile reached by the die before any ladder; scored
	PointsEarned int
	Ladder       Ladder // Zero unless a ladder was climbed
	BonusTurn    bool
}

func (m MoveRecord) Forward() bool {
	return m.Steps > 0
}

func (m MoveRecord) HasLadder() bool {
	return m.Ladder != (Ladder{})
}

// WithLadder returns a copy of the record that climbed l.
func (m MoveRecord) WithLadder(l Ladder) MoveRecord {
	m.Ladder = l
	m.To = l.To
	return m
}

func (m MoveRecord) String() string {
	direction := "backward"
	if m.Forward() {
		direction = "forward"
	}
	s := fmt.Sprintf("%s rolled %d (prob: %.2f) - moved %s %d steps (%d → %d) +%d pts",
		m.Player, m.Die, m.Probability, direction, abs(m.Steps), m.From, m.To, m.PointsEarned)
	if m.HasLadder() {
		s += fmt.Sprintf(" climbed ladder (%d → %d)", m.Ladder.From, m.Ladder.To)
	}
	if m.BonusTurn {
		s += " bonus turn"
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
