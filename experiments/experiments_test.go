package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ladderfall/config"
	"ladderfall/leaderboard"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func smallSimulation() config.Simulation {
	sim := config.Default().Simulation
	sim.Games = 40
	sim.Players = 3
	sim.Goroutines = 4
	sim.Seed = 1234
	return sim
}

func TestRun(t *testing.T) {
	t.Run("every game is played and won", func(t *testing.T) {
		lb := leaderboard.New()

		report, err := Run(context.Background(), smallSimulation(), lb)

		require.NoError(t, err)
		require.Len(t, report.Games, 40)
		require.Equal(t, 40, report.Finished)
		require.Equal(t, 40, lb.Len(), "one leaderboard entry per winner")
		wins := 0
		for _, n := range report.Wins {
			wins += n
		}
		require.Equal(t, 40, wins)
		for id, g := range report.Games {
			require.Equal(t, id, g.ID)
			require.Equal(t, report.Seed+uint64(id), g.Seed)
		}
		require.LessOrEqual(t, report.ShortestGame, report.LongestGame)
		require.Greater(t, report.MeanTurns, 0.0)
		require.Empty(t, report.Turns, "turn rows are only kept when writing results")
	})

	t.Run("a seed replays the same games on any number of goroutines", func(t *testing.T) {
		sim := smallSimulation()
		first, err := Run(context.Background(), sim, nil)
		require.NoError(t, err)

		sim.Goroutines = 1
		second, err := Run(context.Background(), sim, nil)
		require.NoError(t, err)

		require.Equal(t, first.Wins, second.Wins)
		for i := range first.Games {
			require.Equal(t, first.Games[i].Turns, second.Games[i].Turns)
			require.Equal(t, first.Games[i].Winner, second.Games[i].Winner)
		}
	})

	t.Run("cancelled before starting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		report, err := Run(ctx, smallSimulation(), nil)

		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, report.Games)
	})

	t.Run("invalid simulation", func(t *testing.T) {
		sim := smallSimulation()
		sim.Players = 1

		_, err := Run(context.Background(), sim, nil)

		require.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("turn cap", func(t *testing.T) {
		sim := smallSimulation()
		sim.MaxTurns = 3

		report, err := Run(context.Background(), sim, nil)

		require.NoError(t, err)
		require.Zero(t, report.Finished)
		require.Equal(t, 3, report.LongestGame)
	})

	t.Run("writes results", func(t *testing.T) {
		sim := smallSimulation()
		sim.Games = 5
		sim.OutputDir = t.TempDir()

		report, err := Run(context.Background(), sim, nil)

		require.NoError(t, err)
		require.NotEmpty(t, report.Turns)
		for _, name := range []string{"games.csv", "turns.csv", "leaderboard.csv"} {
			_, err := os.Stat(filepath.Join(report.OutputDir, name))
			require.NoError(t, err, name)
		}
	})
}
