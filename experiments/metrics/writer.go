package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ladderfall/leaderboard"

	"github.com/google/uuid"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a folder for one simulation run under root, named by the
// current timestamp and the run's id.
func NewWriter(root string, run uuid.UUID) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp+"-"+run.String()[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameMetrics(games []GameMetric) error {
	header := []string{"id", "seed", "winner", "start_time", "end_time", "duration", "turns", "ladders_climbed", "bonus_landings", "backward_moves"}
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, []string{
			strconv.Itoa(g.ID),
			strconv.FormatUint(g.Seed, 10),
			g.Winner,
			g.StartTime.Format(time.RFC3339Nano),
			g.EndTime.Format(time.RFC3339Nano),
			g.Duration.String(),
			strconv.Itoa(g.Turns),
			strconv.Itoa(g.LaddersClimbed),
			strconv.Itoa(g.BonusLandings),
			strconv.Itoa(g.BackwardMoves),
		})
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) WriteTurnMetrics(turns []TurnMetric) error {
	header := []string{"game", "turn", "player", "die", "steps", "from", "to", "points", "ladder", "bonus"}
	rows := make([][]string, 0, len(turns))
	for _, t := range turns {
		rows = append(rows, []string{
			strconv.Itoa(t.Game),
			strconv.Itoa(t.Turn),
			t.Player,
			strconv.Itoa(t.Die),
			strconv.Itoa(t.Steps),
			strconv.Itoa(t.From),
			strconv.Itoa(t.To),
			strconv.Itoa(t.Points),
			strconv.FormatBool(t.Ladder),
			strconv.FormatBool(t.Bonus),
		})
	}
	return w.write("turns.csv", header, rows)
}

func (w *Writer) WriteLeaderboard(entries []leaderboard.Entry) error {
	header := []string{"id", "player", "score", "completion_time", "timestamp"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID.String(),
			e.PlayerName,
			strconv.Itoa(e.Score),
			e.CompletionTime.String(),
			e.Timestamp.Format(time.RFC3339Nano),
		})
	}
	return w.write("leaderboard.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
