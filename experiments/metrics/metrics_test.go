package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ladderfall/game"
	"ladderfall/leaderboard"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts turns, ladders and bonus landings", func(t *testing.T) {
		c := NewCollector(3, 42, true)
		ladder := game.Ladder{From: 5, To: 20}

		c.TurnResolved(game.MoveRecord{Player: "Ada", Die: 2, Steps: 2, From: 3, To: 5, BonusTurn: true})
		c.LadderClimbed(game.Player{Name: "Ada"}, ladder)
		c.TurnResolved(game.MoveRecord{Player: "Bob", Die: 4, Steps: 4, From: 3, To: 20, Ladder: ladder})
		c.TurnResolved(game.MoveRecord{Player: "Ada", Die: 1, Steps: -1, From: 5, To: 4})
		c.GameOver(game.Player{Name: "Ada"})

		g, turns := c.Complete()

		require.Equal(t, 3, g.ID)
		require.Equal(t, uint64(42), g.Seed)
		require.Equal(t, "Ada", g.Winner)
		require.True(t, g.Finished())
		require.Equal(t, 3, g.Turns)
		require.Equal(t, 1, g.LaddersClimbed)
		require.Equal(t, 1, g.BonusLandings)
		require.Equal(t, 1, g.BackwardMoves)
		require.False(t, g.EndTime.Before(g.StartTime))

		require.Len(t, turns, 3)
		require.Equal(t, TurnMetric{Game: 3, Turn: 2, Player: "Bob", Die: 4, Steps: 4, From: 3, To: 20, Ladder: true}, turns[1])
	})

	t.Run("turn rows are optional", func(t *testing.T) {
		c := NewCollector(1, 1, false)
		c.TurnResolved(game.MoveRecord{Player: "Ada", Die: 1, Steps: 1})

		g, turns := c.Complete()

		require.Equal(t, 1, g.Turns)
		require.Empty(t, turns)
		require.False(t, g.Finished())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, uuid.New())
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("games", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		err := w.WriteGameMetrics([]GameMetric{{
			ID: 1, Seed: 9, Winner: "Ada", StartTime: start, EndTime: start.Add(time.Millisecond),
			Duration: time.Millisecond, Turns: 40, LaddersClimbed: 2, BonusLandings: 5, BackwardMoves: 12,
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "games.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "winner", rows[0][2])
		require.Equal(t, []string{"1", "9", "Ada"}, rows[1][:3])
		require.Equal(t, []string{"1ms", "40", "2", "5", "12"}, rows[1][5:])
	})

	t.Run("turns", func(t *testing.T) {
		err := w.WriteTurnMetrics([]TurnMetric{{Game: 1, Turn: 1, Player: "Ada", Die: 3, Steps: -3, From: 4, To: 1}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "turns.csv"))
		require.Equal(t, []string{"1", "1", "Ada", "3", "-3", "4", "1", "0", "false", "false"}, rows[1])
	})

	t.Run("leaderboard", func(t *testing.T) {
		lb := leaderboard.New()
		lb.AddScore("Ada", 900, 2*time.Second)
		require.NoError(t, w.WriteLeaderboard(lb.Entries()))

		rows := readCSV(t, filepath.Join(w.Dir(), "leaderboard.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"Ada", "900", "2s"}, rows[1][1:4])
	})
}
