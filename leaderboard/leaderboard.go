// Package leaderboard aggregates finished games across resets: every winner,
// the best score and the fastest finish seen so far.
package leaderboard

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const notAvailable = "N/A"

type Entry struct {
	ID             uuid.UUID
	PlayerName     string
	Score          int
	CompletionTime time.Duration
	Timestamp      time.Time
}

func (e Entry) FormattedTime() string {
	if e.CompletionTime <= 0 {
		return notAvailable
	}
	return FormatDuration(e.CompletionTime)
}

// Leaderboard is safe for concurrent use.
type Leaderboard struct {
	mu      sync.RWMutex
	entries []Entry // Sorted by score, highest first

	highestScore  int
	highestPlayer string
	fastestTime   time.Duration // Zero until a positive time is recorded
	fastestPlayer string
}

func New() *Leaderboard {
	return &Leaderboard{}
}

// AddScore records a finished game and returns the stored entry. A
// non-positive completion time is kept but never counts as fastest.
func (lb *Leaderboard) AddScore(name string, score int, completion time.Duration) Entry {
	entry := Entry{
		ID:             uuid.New(),
		PlayerName:     name,
		Score:          score,
		CompletionTime: completion,
		Timestamp:      time.Now(),
	}

	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.entries = append(lb.entries, entry)
	if score > lb.highestScore {
		lb.highestScore = score
		lb.highestPlayer = name
	}
	if completion > 0 && (lb.fastestTime == 0 || completion < lb.fastestTime) {
		lb.fastestTime = completion
		lb.fastestPlayer = name
	}
	sort.SliceStable(lb.entries, func(i, j int) bool {
		return lb.entries[i].Score > lb.entries[j].Score
	})
	return entry
}

// TopScores returns up to limit entries, highest score first.
func (lb *Leaderboard) TopScores(limit int) []Entry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	return head(lb.entries, limit)
}

// FastestTimes returns up to limit entries with a positive completion time,
// quickest first.
func (lb *Leaderboard) FastestTimes(limit int) []Entry {
	lb.mu.RLock()
	timed := []Entry{}
	for _, e := range lb.entries {
		if e.CompletionTime > 0 {
			timed = append(timed, e)
		}
	}
	lb.mu.RUnlock()

	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].CompletionTime < timed[j].CompletionTime
	})
	return head(timed, limit)
}

// Entries returns every entry, highest score first.
func (lb *Leaderboard) Entries() []Entry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	return head(lb.entries, len(lb.entries))
}

func (lb *Leaderboard) Len() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	return len(lb.entries)
}

// HighestScore returns the best score recorded and who scored it. The name
// is empty while the board is empty.
func (lb *Leaderboard) HighestScore() (int, string) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	return lb.highestScore, lb.highestPlayer
}

// FastestTime returns the quickest positive completion time and its owner.
// ok is false until one has been recorded.
func (lb *Leaderboard) FastestTime() (d time.Duration, name string, ok bool) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	return lb.fastestTime, lb.fastestPlayer, lb.fastestTime > 0
}

func (lb *Leaderboard) FormattedFastestTime() string {
	d, _, ok := lb.FastestTime()
	if !ok {
		return notAvailable
	}
	return FormatDuration(d)
}

func (lb *Leaderboard) Clear() {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.entries = nil
	lb.highestScore = 0
	lb.highestPlayer = ""
	lb.fastestTime = 0
	lb.fastestPlayer = ""
}

// FormatDuration renders d as minutes and zero-padded seconds, e.g. "1:05".
func FormatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func head(entries []Entry, limit int) []Entry {
	limit = max(0, min(limit, len(entries)))
	out := make([]Entry, limit)
	copy(out, entries[:limit])
	return out
}
