package model

// GameStatus represents the lifecycle phase of a game
type GameStatus string

const (
	GameRunning GameStatus = "running" // Accepting moves
	GameWon     GameStatus = "won"     // Every safe tile uncovered
	GameLost    GameStatus = "lost"    // A mine was uncovered
)

// IsOver returns true once the game has reached a terminal status
func (s GameStatus) IsOver() bool {
	return s == GameWon || s == GameLost
}

// GameID uniquely identifies one game played on an engine
type GameID string
