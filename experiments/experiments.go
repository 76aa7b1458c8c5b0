// Package experiments plays batches of games to measure how the board
// behaves: how long games run, how often ladders fire and who wins by seat.
package experiments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ladderfall/config"
	"ladderfall/engine"
	"ladderfall/experiments/metrics"
	"ladderfall/leaderboard"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Report struct {
	RunID        uuid.UUID
	Seed         uint64
	Games        []metrics.GameMetric // Indexed by game ID
	Turns        []metrics.TurnMetric
	Wins         map[string]int // Player name -> games won
	Finished     int
	MeanTurns    float64
	ShortestGame int
	LongestGame  int
	OutputDir    string // Where CSV results were written, if anywhere
}

type result struct {
	game  metrics.GameMetric
	turns []metrics.TurnMetric
}

// Run plays sim.Games games on sim.Goroutines workers. Game i is seeded with
// the run seed plus i, so a run is reproducible from its seed. Winners are
// recorded on lb. Cancelling ctx stops new games from starting; the report
// covers the games already played.
func Run(ctx context.Context, sim config.Simulation, lb *leaderboard.Leaderboard) (Report, error) {
	if err := sim.Validate(); err != nil {
		return Report{}, err
	}
	if lb == nil {
		lb = leaderboard.New()
	}
	seed := sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	report := Report{
		RunID: uuid.New(),
		Seed:  seed,
		Wins:  map[string]int{},
	}
	recordTurns := sim.OutputDir != ""

	log.Info().Msgf("starting simulation %s: %d games, %d players, %d goroutines, seed %d",
		report.RunID, sim.Games, sim.Players, sim.Goroutines, seed)

	results := make([]*result, sim.Games)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < sim.Goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range jobs {
				results[id] = playGame(id, seed+uint64(id), sim, lb, recordTurns)
			}
		}()
	}

	var err error
dispatch:
	for id := 0; id < sim.Games; id++ {
		if ctx.Err() != nil {
			err = fmt.Errorf("simulation interrupted after %d games: %w", id, ctx.Err())
			break
		}
		select {
		case <-ctx.Done():
			err = fmt.Errorf("simulation interrupted after %d games: %w", id, ctx.Err())
			break dispatch
		case jobs <- id:
		}
	}
	close(jobs)
	wg.Wait()

	report.summarize(results)
	log.Info().Msgf("simulation %s finished: %d of %d games won, %.1f turns on average",
		report.RunID, report.Finished, len(report.Games), report.MeanTurns)

	if sim.OutputDir != "" {
		dir, werr := write(sim.OutputDir, report, lb)
		if werr != nil {
			return report, werr
		}
		report.OutputDir = dir
		log.Info().Msgf("results written to %s", dir)
	}
	return report, err
}

func playGame(id int, seed uint64, sim config.Simulation, lb *leaderboard.Leaderboard, recordTurns bool) *result {
	collector := metrics.NewCollector(id, seed, recordTurns)
	e := engine.New(sim.Players,
		engine.WithSeed(seed),
		engine.WithNames(sim.Names...),
		engine.WithBonusTurns(sim.BonusTurns),
		engine.WithLeaderboard(lb),
		engine.WithListener(collector),
	)
	e.Run(sim.MaxTurns)

	game, turns := collector.Complete()
	if !game.Finished() {
		log.Warn().Msgf("game %d stopped after %d turns without a winner", id, game.Turns)
	}
	return &result{game: game, turns: turns}
}

func (r *Report) summarize(results []*result) {
	total := 0
	for _, res := range results {
		if res == nil { // never dispatched
			continue
		}
		g := res.game
		r.Games = append(r.Games, g)
		r.Turns = append(r.Turns, res.turns...)
		if g.Finished() {
			r.Finished++
			r.Wins[g.Winner]++
		}
		total += g.Turns
		if r.ShortestGame == 0 || g.Turns < r.ShortestGame {
			r.ShortestGame = g.Turns
		}
		r.LongestGame = max(r.LongestGame, g.Turns)
	}
	if len(r.Games) > 0 {
		r.MeanTurns = float64(total) / float64(len(r.Games))
	}
}

func write(root string, report Report, lb *leaderboard.Leaderboard) (string, error) {
	writer, err := metrics.NewWriter(root, report.RunID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameMetrics(report.Games); err != nil {
		return "", fmt.Errorf("failed to store game metrics: %w", err)
	}
	if err := writer.WriteTurnMetrics(report.Turns); err != nil {
		return "", fmt.Errorf("failed to store turn metrics: %w", err)
	}
	if err := writer.WriteLeaderboard(lb.Entries()); err != nil {
		return "", fmt.Errorf("failed to store leaderboard: %w", err)
	}
	return writer.Dir(), nil
}
