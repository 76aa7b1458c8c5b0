package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"ladderfall/config"
	"ladderfall/engine"
	"ladderfall/experiments"
	"ladderfall/game"
	"ladderfall/leaderboard"
	"ladderfall/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	play := flag.Bool("play", false, "Play a single game turn by turn instead of a simulation")
	players := flag.Int("players", 0, "Number of players (2-8)")
	games := flag.Int("games", 0, "Number of games to simulate")
	goroutines := flag.Int("goroutines", 0, "Number of goroutines simulating games")
	seed := flag.Uint64("seed", 0, "Seed for reproducible games (0 picks one)")
	bonus := flag.Bool("bonus-turns", false, "Let bonus tiles grant an extra turn")
	out := flag.String("out", "", "Directory to write CSV results to")
	level := flag.String("log", "", "Log level (debug, info, warn, ...)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Simulation.Players = *players
		case "games":
			cfg.Simulation.Games = *games
		case "goroutines":
			cfg.Simulation.Goroutines = *goroutines
		case "seed":
			cfg.Simulation.Seed = *seed
		case "bonus-turns":
			cfg.Simulation.BonusTurns = *bonus
		case "out":
			cfg.Simulation.OutputDir = *out
		case "log":
			cfg.LogLevel = *level
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *play {
		playGame(cfg.Simulation)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lb := leaderboard.New()
	report, err := experiments.Run(ctx, cfg.Simulation, lb)
	printReport(report, lb, cfg.Simulation.TopN)
	if err != nil {
		log.Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}
}

func playGame(sim config.Simulation) {
	options := []engine.Option{
		engine.WithNames(sim.Names...),
		engine.WithBonusTurns(sim.BonusTurns),
	}
	if sim.Seed != 0 {
		options = append(options, engine.WithSeed(sim.Seed))
	}
	e := engine.New(sim.Players, options...)

	fmt.Println("Ladders:")
	for _, l := range e.Ladders() {
		fmt.Printf("  %v\n", l)
	}
	fmt.Printf("Best case from the start: %d rolls via %v\n\n",
		e.Pathfinder().ShortestDistance(game.StartTile, game.BoardSize),
		e.Pathfinder().ShortestPath(game.StartTile, game.BoardSize))

	for turn := 1; turn <= sim.MaxTurns; turn++ {
		rec, ok := e.PlayTurn()
		if !ok {
			break
		}
		left, _ := e.DistanceToFinish(rec.Player)
		if left == searcher.Unreachable {
			fmt.Printf("%3d. %v\n", turn, rec)
		} else {
			fmt.Printf("%3d. %v [%d to go]\n", turn, rec, left)
		}
	}

	fmt.Println()
	if winner, ok := e.Winner(); ok {
		fmt.Printf("%s wins in %s!\n", winner.Name, leaderboard.FormatDuration(winner.CompletionTime))
	} else {
		fmt.Printf("Stopped after %d turns (no winner yet)\n", sim.MaxTurns)
	}
	for i, p := range e.RankedPlayers() {
		fmt.Printf("%d. %-12s %5d pts  tile %2d  %d moves\n", i+1, p.Name, p.Points, p.Position, p.MoveCount)
	}
}

func printReport(report experiments.Report, lb *leaderboard.Leaderboard, topN int) {
	fmt.Printf("Run %s (seed %d): %d games, %d won\n", report.RunID, report.Seed, len(report.Games), report.Finished)
	fmt.Printf("Turns per game: mean %.1f, shortest %d, longest %d\n", report.MeanTurns, report.ShortestGame, report.LongestGame)
	for name, wins := range report.Wins {
		fmt.Printf("  %-12s %d wins\n", name, wins)
	}

	score, name := lb.HighestScore()
	fmt.Printf("Highest score: %d by %s\n", score, name)
	fmt.Printf("Fastest finish: %s\n", lb.FormattedFastestTime())
	for i, e := range lb.TopScores(topN) {
		fmt.Printf("%2d. %-12s %5d pts  %s\n", i+1, e.PlayerName, e.Score, e.FormattedTime())
	}
	if report.OutputDir != "" {
		fmt.Printf("Results written to %s\n", report.OutputDir)
	}
}
