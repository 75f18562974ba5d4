package model

// TileState is the player-visible state of a single tile
type TileState string

const (
	TileCovered    TileState = "covered"
	TileFlagged    TileState = "flagged"
	TileQuestioned TileState = "questioned"
	TileUncovered  TileState = "uncovered"
)

// Tile is one cell of the minefield
type Tile struct {
	State         TileState
	IsMine        bool
	AdjacentCount int // Mines among the 8 neighbours, fixed at placement
}

// NewTile returns a covered, mine-free tile
func NewTile() Tile {
	return Tile{State: TileCovered}
}

// IsUncovered reports whether the tile has been revealed
func (t Tile) IsUncovered() bool {
	return t.State == TileUncovered
}

// IsFlagged reports whether the tile carries a flag
func (t Tile) IsFlagged() bool {
	return t.State == TileFlagged
}

// IsRevealable reports whether a flood fill may reveal the tile
func (t Tile) IsRevealable() bool {
	return t.State == TileCovered || t.State == TileQuestioned
}
