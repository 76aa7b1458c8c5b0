// Package searcher answers planning questions about a board: how many rolls
// a player needs at best to reach a tile and along which tiles.
package searcher

import (
	"math"

	"ladderfall/game"
)

// Unreachable is the distance reported when no sequence of rolls reaches
// the goal.
const Unreachable = math.MaxInt

// backwardPenalty scales a best-case roll count to account for the share of
// draws that move a player backward.
const backwardPenalty = 1.5

// Pathfinder searches the board as a graph where every die face is an edge of
// cost 1 and a ladder start is replaced by its destination. Every roll is
// assumed to move forward, so distances are best-case.
//
// A Pathfinder is immutable and safe for concurrent use. Build a new one when
// the ladders change.
type Pathfinder struct {
	ladders []game.Ladder
	warps   map[int]int // Ladder start -> destination
}

func NewPathfinder(ladders []game.Ladder) *Pathfinder {
	own := make([]game.Ladder, len(ladders))
	copy(own, ladders)
	return &Pathfinder{
		ladders: own,
		warps:   game.LadderIndex(own),
	}
}

func (pf *Pathfinder) Ladders() []game.Ladder {
	ladders := make([]game.Ladder, len(pf.ladders))
	copy(ladders, pf.ladders)
	return ladders
}

// ShortestDistance returns the fewest rolls from start to goal, or
// Unreachable.
func (pf *Pathfinder) ShortestDistance(start, goal int) int {
	if start == goal {
		return 0
	}
	if !pf.searchable(start, goal) {
		return Unreachable
	}
	distances, _ := pf.search(start, goal)
	return distances[goal]
}

// ShortestPath returns the tiles visited by an optimal sequence of rolls,
// start and goal included. A roll that climbs a ladder appears as the
// ladder's destination. The path is empty when goal cannot be reached.
func (pf *Pathfinder) ShortestPath(start, goal int) []int {
	if start == goal {
		return []int{start}
	}
	if !pf.searchable(start, goal) {
		return nil
	}
	distances, previous := pf.search(start, goal)
	if distances[goal] == Unreachable {
		return nil
	}

	path := []int{}
	for tile := goal; tile != 0; tile = previous[tile] {
		path = append(path, tile)
	}
	if path[len(path)-1] != start {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// StepByStepPath lists every tile from one to the other, one step at a time,
// ignoring dice and ladders. Animations walk tokens along it.
func (pf *Pathfinder) StepByStepPath(from, to int) []int {
	step := 1
	if to < from {
		step = -1
	}
	path := make([]int, 0, abs(to-from)+1)
	for tile := from; tile != to; tile += step {
		path = append(path, tile)
	}
	return append(path, to)
}

// ExpectedMovesToFinish estimates the rolls left from position, allowing for
// backward draws.
func (pf *Pathfinder) ExpectedMovesToFinish(position int) float64 {
	if position >= game.BoardSize {
		return 0
	}
	moves := pf.ShortestDistance(position, game.BoardSize)
	if moves == Unreachable {
		return math.Inf(1)
	}
	return float64(moves) * backwardPenalty
}

func (pf *Pathfinder) searchable(start, goal int) bool {
	return start <= goal && game.OnBoard(start) && game.OnBoard(goal)
}

// search runs Dijkstra from start until goal is settled. Tiles are indexed
// directly; a zero predecessor means none.
func (pf *Pathfinder) search(start, goal int) (distances, previous [game.BoardSize + 1]int) {
	for i := range distances {
		distances[i] = Unreachable
	}
	distances[start] = 0

	queue := &frontier{}
	queue.push(start, 0)

	for queue.Len() > 0 {
		current := queue.pop()
		if current.tile == goal {
			break
		}
		// stale entry
		if current.distance > distances[current.tile] {
			continue
		}

		for face := 1; face <= game.DieFaces; face++ {
			next := current.tile + face
			if next > game.BoardSize {
				continue
			}
			if to, ok := pf.warps[next]; ok && game.OnBoard(to) {
				next = to
			}

			distance := current.distance + 1
			if distance < distances[next] {
				distances[next] = distance
				previous[next] = current.tile
				queue.push(next, distance)
			}
		}
	}
	return distances, previous
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
