// Package view projects an engine snapshot into what a player should see:
// one display cell per tile plus the counter, face and timer.
package view

import (
	"strconv"
	"time"

	"github.com/mcoot/minesweeper/internal/model"
	"github.com/mcoot/minesweeper/internal/services/game"
)

// CellKind is how a single tile is drawn
type CellKind string

const (
	CellCovered    CellKind = "covered"
	CellFlagged    CellKind = "flagged"
	CellQuestioned CellKind = "questioned"
	CellNumber     CellKind = "number"     // Uncovered safe tile, Count holds its number
	CellBlownMine  CellKind = "blown_mine" // The mine that ended the game
	CellMine       CellKind = "mine"       // Unflagged mine shown after a loss
	CellFalseFlag  CellKind = "false_flag" // Flag on a safe tile shown after a loss
)

// Face is the status indicator above the board
type Face string

const (
	FaceHappy  Face = "happy"
	FaceDead   Face = "dead"
	FaceWinner Face = "winner"
)

// Cell is one drawable tile
type Cell struct {
	Kind  CellKind `json:"kind"`
	Count int      `json:"count,omitempty"`
}

// Board is the complete drawable state of a game
type Board struct {
	ID             string   `json:"id"`
	Status         string   `json:"status"`
	Face           Face     `json:"face"`
	Cols           int      `json:"cols"`
	Rows           int      `json:"rows"`
	Mines          int      `json:"mines"`
	MinesRemaining int      `json:"mines_remaining"`
	Uncovered      int      `json:"uncovered"`
	ElapsedSeconds int      `json:"elapsed_seconds"`
	Cells          [][]Cell `json:"cells"` // Row-major: Cells[row][col]
}

// Render builds the drawable board for a snapshot
func Render(snap game.Snapshot) Board {
	cells := make([][]Cell, len(snap.Tiles))
	for row, tiles := range snap.Tiles {
		cells[row] = make([]Cell, len(tiles))
		for col, tile := range tiles {
			cells[row][col] = Classify(tile, snap.Status)
		}
	}

	remaining := snap.Mines - snap.FlagsPlaced
	if snap.Status == model.GameWon {
		// Every mine is drawn flagged after a win
		remaining = 0
	}

	return Board{
		ID:             string(snap.ID),
		Status:         string(snap.Status),
		Face:           FaceFor(snap.Status),
		Cols:           snap.Cols,
		Rows:           snap.Rows,
		Mines:          snap.Mines,
		MinesRemaining: remaining,
		Uncovered:      snap.Uncovered,
		ElapsedSeconds: int(snap.Elapsed / time.Second),
		Cells:          cells,
	}
}

// Classify decides how a tile is drawn given the game status.
// After a win every mine is shown flagged; after a loss hidden mines and
// wrong flags are exposed.
func Classify(tile model.Tile, status model.GameStatus) Cell {
	switch tile.State {
	case model.TileUncovered:
		if tile.IsMine {
			return Cell{Kind: CellBlownMine}
		}
		return Cell{Kind: CellNumber, Count: tile.AdjacentCount}
	case model.TileFlagged:
		if status == model.GameLost && !tile.IsMine {
			return Cell{Kind: CellFalseFlag}
		}
		return Cell{Kind: CellFlagged}
	case model.TileQuestioned:
		if hidden, ok := revealedMine(tile, status); ok {
			return hidden
		}
		return Cell{Kind: CellQuestioned}
	default:
		if hidden, ok := revealedMine(tile, status); ok {
			return hidden
		}
		return Cell{Kind: CellCovered}
	}
}

func revealedMine(tile model.Tile, status model.GameStatus) (Cell, bool) {
	if !tile.IsMine {
		return Cell{}, false
	}
	switch status {
	case model.GameLost:
		return Cell{Kind: CellMine}, true
	case model.GameWon:
		return Cell{Kind: CellFlagged}, true
	default:
		return Cell{}, false
	}
}

// FaceFor picks the face for a status
func FaceFor(status model.GameStatus) Face {
	switch status {
	case model.GameLost:
		return FaceDead
	case model.GameWon:
		return FaceWinner
	default:
		return FaceHappy
	}
}

// Symbol is a one-character rendering of the cell for plain text output
func (c Cell) Symbol() string {
	switch c.Kind {
	case CellNumber:
		if c.Count == 0 {
			return "."
		}
		return strconv.Itoa(c.Count)
	case CellFlagged:
		return "F"
	case CellQuestioned:
		return "?"
	case CellBlownMine:
		return "X"
	case CellMine:
		return "*"
	case CellFalseFlag:
		return "x"
	default:
		return "#"
	}
}
