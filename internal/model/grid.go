package model

import "fmt"

// Position identifies a tile on the grid
type Position struct {
	Col int // x, 0-indexed from left
	Row int // y, 0-indexed from top
}

// Pos is shorthand for Position{Col: x, Row: y}
func Pos(x, y int) Position {
	return Position{Col: x, Row: y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Grid stores the tiles of a minefield. It has no game behaviour of its own.
type Grid struct {
	Cols  int
	Rows  int
	Tiles [][]Tile // Row-major: Tiles[row][col]
}

// NewGrid creates a grid of covered, mine-free tiles
func NewGrid(cols, rows int) *Grid {
	tiles := make([][]Tile, rows)
	for row := range tiles {
		tiles[row] = make([]Tile, cols)
		for col := range tiles[row] {
			tiles[row][col] = NewTile()
		}
	}
	return &Grid{
		Cols:  cols,
		Rows:  rows,
		Tiles: tiles,
	}
}

// Contains returns true if the position is within bounds
func (g *Grid) Contains(pos Position) bool {
	return pos.Col >= 0 && pos.Col < g.Cols && pos.Row >= 0 && pos.Row < g.Rows
}

// At returns the tile at pos for reading or writing.
// Panics if pos is outside the grid.
func (g *Grid) At(pos Position) *Tile {
	if !g.Contains(pos) {
		panic(fmt.Sprintf("position %s outside %dx%d grid", pos, g.Cols, g.Rows))
	}
	return &g.Tiles[pos.Row][pos.Col]
}

// Neighbors returns the in-bounds 8-connected neighbours of pos, row by row
// from the top-left. Panics if pos is outside the grid.
func (g *Grid) Neighbors(pos Position) []Position {
	if !g.Contains(pos) {
		panic(fmt.Sprintf("position %s outside %dx%d grid", pos, g.Cols, g.Rows))
	}
	result := make([]Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Position{Col: pos.Col + dx, Row: pos.Row + dy}
			if g.Contains(n) {
				result = append(result, n)
			}
		}
	}
	return result
}

// Positions returns every position on the grid in row-major order
func (g *Grid) Positions() []Position {
	result := make([]Position, 0, g.Cols*g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			result = append(result, Position{Col: col, Row: row})
		}
	}
	return result
}

// Size returns the total number of tiles
func (g *Grid) Size() int {
	return g.Cols * g.Rows
}

// CountMines returns the number of mine-bearing tiles
func (g *Grid) CountMines() int {
	count := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Tiles[row][col].IsMine {
				count++
			}
		}
	}
	return count
}

// CountState returns the number of tiles in the given state
func (g *Grid) CountState(state TileState) int {
	count := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Tiles[row][col].State == state {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, g.Rows)
	for row := range tiles {
		tiles[row] = make([]Tile, g.Cols)
		copy(tiles[row], g.Tiles[row])
	}
	return &Grid{
		Cols:  g.Cols,
		Rows:  g.Rows,
		Tiles: tiles,
	}
}
