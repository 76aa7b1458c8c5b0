package game

const (
	BoardSize = 64
	StartTile = 1

	// ForwardProbability is the upper bound (inclusive) of a direction draw
	// that moves a player forward.
	ForwardProbability = 0.7

	BonusPoints = 50
	WinBonus    = 200
	DieFaces    = 6
)

// Points awarded for landing on each tile, indexed by tile-1.
var tilePoints = [BoardSize]int{
	0, 10, 15, 20, 25, 30, 15, 20, 25, 30, // 1-10
	35, 20, 25, 30, 35, 40, 25, 30, 35, 40, // 11-20
	45, 30, 35, 40, 45, 50, 35, 40, 45, 50, // 21-30
	55, 40, 45, 50, 55, 60, 45, 50, 55, 60, // 31-40
	65, 50, 55, 60, 65, 70, 55, 60, 65, 70, // 41-50
	75, 60, 65, 70, 75, 80, 65, 70, 75, 80, // 51-60
	85, 90, 95, 100, // 61-64
}

// TilePoints returns the points awarded for landing on tile, or 0 when the
// tile is off the board.
func TilePoints(tile int) int {
	if !OnBoard(tile) {
		return 0
	}
	return tilePoints[tile-1]
}

// IsBonusTile reports whether landing on tile awards BonusPoints and a
// bonus turn. The finish tile never does.
func IsBonusTile(tile int) bool {
	return OnBoard(tile) && tile%5 == 0 && tile < BoardSize
}

func OnBoard(tile int) bool {
	return tile >= StartTile && tile <= BoardSize
}

// ClampTile keeps tile within [StartTile, BoardSize].
func ClampTile(tile int) int {
	return max(StartTile, min(tile, BoardSize))
}

func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
