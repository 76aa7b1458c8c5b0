package game

import (
	"fmt"
	"time"
)

// DefaultColors is the token palette handed out to players by seat.
var DefaultColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A",
	"#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E2",
}

// Player is one participant's mutable state. Only the engine mutates the
// players it owns; everything it hands out is a copy.
type Player struct {
	Name           string
	Color          string
	Position       int           // Tile in [StartTile, BoardSize]
	Points         int           // Never negative
	CompletionTime time.Duration // Zero until the player finishes
	MoveCount      int
}

func NewPlayer(name, color string) *Player {
	return &Player{
		Name:     name,
		Color:    color,
		Position: StartTile,
	}
}

// DefaultName returns the name of the player in the given zero-based seat.
func DefaultName(seat int) string {
	return fmt.Sprintf("Player %d", seat+1)
}

func SeatColor(seat int) string {
	return DefaultColors[seat%len(DefaultColors)]
}

// Move shifts the player by steps, clamped to the board, and counts the move.
func (p *Player) Move(steps int) {
	p.SetPosition(p.Position + steps)
	p.MoveCount++
}

func (p *Player) SetPosition(tile int) {
	p.Position = ClampTile(tile)
}

func (p *Player) AddPoints(points int) {
	if points > 0 {
		p.Points += points
	}
}

func (p *Player) Finished() bool {
	return p.Position >= BoardSize
}

// Reset puts the player back on the start tile with nothing earned.
func (p *Player) Reset() {
	p.Position = StartTile
	p.Points = 0
	p.CompletionTime = 0
	p.MoveCount = 0
}

func (p Player) String() string {
	return fmt.Sprintf("%s (Position: %d, Points: %d)", p.Name, p.Position, p.Points)
}
