package searcher

import (
	"testing"

	"ladderfall/game"

	"github.com/stretchr/testify/require"
)

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func TestShortestDistance(t *testing.T) {
	t.Run("zero to itself", func(t *testing.T) {
		pf := NewPathfinder(game.GenerateLadders(game.NewRandom(1)))
		for tile := 1; tile <= game.BoardSize; tile++ {
			require.Equal(t, 0, pf.ShortestDistance(tile, tile), "tile %d", tile)
		}
	})

	t.Run("backward and off-board goals are unreachable", func(t *testing.T) {
		pf := NewPathfinder(nil)
		for s := 2; s <= game.BoardSize; s++ {
			for g := 1; g < s; g++ {
				require.Equal(t, Unreachable, pf.ShortestDistance(s, g))
			}
		}
		require.Equal(t, Unreachable, pf.ShortestDistance(0, 10))
		require.Equal(t, Unreachable, pf.ShortestDistance(1, 65))
	})

	t.Run("no ladders is a plain division by six", func(t *testing.T) {
		pf := NewPathfinder(nil)
		require.Equal(t, 11, pf.ShortestDistance(1, 64))
		for s := 1; s <= game.BoardSize; s++ {
			for g := s; g <= game.BoardSize; g++ {
				require.Equal(t, ceilDiv(g-s, 6), pf.ShortestDistance(s, g), "%d -> %d", s, g)
			}
		}
	})

	t.Run("ladders never push the finish further away", func(t *testing.T) {
		plain := NewPathfinder(nil)
		for seed := uint64(0); seed < 50; seed++ {
			pf := NewPathfinder(game.GenerateLadders(game.NewRandom(seed)))
			for s := 1; s <= game.BoardSize; s++ {
				require.LessOrEqual(t, pf.ShortestDistance(s, game.BoardSize), plain.ShortestDistance(s, game.BoardSize), "seed %d from %d", seed, s)
			}
		}
	})

	t.Run("a long ladder shortcuts the finish", func(t *testing.T) {
		pf := NewPathfinder([]game.Ladder{{From: 7, To: 60}})

		require.Equal(t, 2, pf.ShortestDistance(1, 64))
		require.LessOrEqual(t, pf.ShortestDistance(1, 64), 3)
		require.Less(t, pf.ShortestDistance(1, 64), NewPathfinder(nil).ShortestDistance(1, 64))
	})

	t.Run("a ladder start cannot be stopped on", func(t *testing.T) {
		pf := NewPathfinder([]game.Ladder{{From: 5, To: 20}})

		require.Equal(t, Unreachable, pf.ShortestDistance(1, 5))
		require.Equal(t, 1, pf.ShortestDistance(3, 20))
	})

	t.Run("repeated queries agree", func(t *testing.T) {
		pf := NewPathfinder(game.GenerateLadders(game.NewRandom(3)))
		first := pf.ShortestDistance(1, 64)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, pf.ShortestDistance(1, 64))
		}
	})
}

func TestShortestPath(t *testing.T) {
	t.Run("same tile", func(t *testing.T) {
		require.Equal(t, []int{12}, NewPathfinder(nil).ShortestPath(12, 12))
	})

	t.Run("unreachable is empty", func(t *testing.T) {
		pf := NewPathfinder(nil)
		require.Empty(t, pf.ShortestPath(30, 10))
		require.Empty(t, pf.ShortestPath(1, 70))
	})

	t.Run("path climbs the ladder", func(t *testing.T) {
		pf := NewPathfinder([]game.Ladder{{From: 7, To: 60}})
		path := pf.ShortestPath(1, 64)

		require.Equal(t, []int{1, 60, 64}, path)
		require.Len(t, path, pf.ShortestDistance(1, 64)+1)
	})

	t.Run("path length matches distance", func(t *testing.T) {
		pf := NewPathfinder(game.GenerateLadders(game.NewRandom(11)))
		for s := 1; s < game.BoardSize; s += 7 {
			distance := pf.ShortestDistance(s, game.BoardSize)
			path := pf.ShortestPath(s, game.BoardSize)

			require.Len(t, path, distance+1)
			require.Equal(t, s, path[0])
			require.Equal(t, game.BoardSize, path[len(path)-1])
		}
	})
}

func TestStepByStepPath(t *testing.T) {
	pf := NewPathfinder([]game.Ladder{{From: 5, To: 20}})

	require.Equal(t, []int{3, 4, 5, 6}, pf.StepByStepPath(3, 6))
	require.Equal(t, []int{6, 5, 4}, pf.StepByStepPath(6, 4))
	require.Equal(t, []int{9}, pf.StepByStepPath(9, 9))
}

func TestExpectedMovesToFinish(t *testing.T) {
	pf := NewPathfinder(nil)

	require.Equal(t, 0.0, pf.ExpectedMovesToFinish(game.BoardSize))
	require.InDelta(t, 16.5, pf.ExpectedMovesToFinish(1), 1e-9)
}

func TestPathfinderOwnsLadders(t *testing.T) {
	ladders := []game.Ladder{{From: 7, To: 60}}
	pf := NewPathfinder(ladders)
	ladders[0].To = 8

	require.Equal(t, 2, pf.ShortestDistance(1, 64))
	got := pf.Ladders()
	got[0].To = 9
	require.Equal(t, []game.Ladder{{From: 7, To: 60}}, pf.Ladders())
}
