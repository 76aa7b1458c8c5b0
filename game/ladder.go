package game

import (
	"errors"
	"fmt"
	"sort"
)

const (
	NumLadders      = 5
	MinLadderLength = 8
	MaxLadderLength = 20

	// Ladders start on a prime tile no higher than this and end no higher
	// than LadderCeiling.
	MaxLadderStart = 57
	LadderCeiling  = 63
)

var ErrInvalidLadders = errors.New("invalid ladder set")

// Ladder is a directed warp taken when a forward move lands exactly on From.
type Ladder struct {
	From int
	To   int
}

func (l Ladder) Length() int {
	return l.To - l.From
}

func (l Ladder) String() string {
	return fmt.Sprintf("Ladder %d→%d (+%d tiles)", l.From, l.To, l.Length())
}

// LadderIndex maps each ladder start to its destination.
func LadderIndex(ladders []Ladder) map[int]int {
	index := make(map[int]int, len(ladders))
	for _, l := range ladders {
		index[l.From] = l.To
	}
	return index
}

// FindLadder returns the ladder starting at tile, if any.
func FindLadder(ladders []Ladder, tile int) (Ladder, bool) {
	for _, l := range ladders {
		if l.From == tile {
			return l, true
		}
	}
	return Ladder{}, false
}

// ValidateLadders checks that every ladder rises on the board and that no
// two ladders share a start tile.
func ValidateLadders(ladders []Ladder) error {
	seen := make(map[int]bool, len(ladders))
	for _, l := range ladders {
		if !OnBoard(l.From) || !OnBoard(l.To) {
			return fmt.Errorf("%w: %v leaves the board", ErrInvalidLadders, l)
		}
		if l.To <= l.From {
			return fmt.Errorf("%w: %v does not rise", ErrInvalidLadders, l)
		}
		if seen[l.From] {
			return fmt.Errorf("%w: more than one ladder starts at %d", ErrInvalidLadders, l.From)
		}
		seen[l.From] = true
	}
	return nil
}

// LadderStarts returns the prime tiles a ladder may start on, ascending.
func LadderStarts() []int {
	starts := []int{}
	for tile := StartTile; tile <= MaxLadderStart; tile++ {
		if IsPrime(tile) {
			starts = append(starts, tile)
		}
	}
	return starts
}

// GenerateLadders places NumLadders ladders on distinct prime tiles, each
// rising MinLadderLength to MaxLadderLength tiles (capped at LadderCeiling).
// Starts too close to the ceiling for the minimum span are only used by a
// relaxed second pass, and only when the first pass comes up short.
func GenerateLadders(r Random) []Ladder {
	starts := LadderStarts()
	r.Shuffle(len(starts), func(i, j int) {
		starts[i], starts[j] = starts[j], starts[i]
	})

	ladders := make([]Ladder, 0, NumLadders)
	used := make(map[int]bool, NumLadders)

	for _, from := range starts {
		if len(ladders) == NumLadders {
			break
		}
		to := ladderEnd(r, from)
		if to-from < MinLadderLength {
			continue
		}
		ladders = append(ladders, Ladder{From: from, To: to})
		used[from] = true
	}

	// relaxed pass
	for _, from := range starts {
		if len(ladders) == NumLadders {
			break
		}
		if used[from] {
			continue
		}
		to := ladderEnd(r, from)
		if to <= from {
			continue
		}
		ladders = append(ladders, Ladder{From: from, To: to})
		used[from] = true
	}

	sort.Slice(ladders, func(i, j int) bool {
		return ladders[i].From < ladders[j].From
	})
	return ladders
}

func ladderEnd(r Random, from int) int {
	length := MinLadderLength + r.Intn(MaxLadderLength-MinLadderLength+1)
	return min(from+length, LadderCeiling)
}
