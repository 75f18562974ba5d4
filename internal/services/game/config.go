package game

import (
	"fmt"
	"strings"

	"github.com/mcoot/minesweeper/internal/model"
)

// Board size and mine count bounds
const (
	MinCols  = 9
	MaxCols  = 30
	MinRows  = 9
	MaxRows  = 24
	MinMines = 10
)

// SafeZone selects which tiles are kept mine-free on the first uncover
type SafeZone string

const (
	SafeZoneTile         SafeZone = "tile"         // Only the clicked tile
	SafeZoneNeighborhood SafeZone = "neighborhood" // The clicked tile and its 8 neighbours
)

// Size returns the largest number of tiles the zone can reserve
func (z SafeZone) Size() int {
	if z == SafeZoneTile {
		return 1
	}
	return 9
}

// ParseSafeZone converts a flag or env value into a SafeZone
func ParseSafeZone(s string) (SafeZone, error) {
	switch SafeZone(strings.ToLower(strings.TrimSpace(s))) {
	case SafeZoneTile:
		return SafeZoneTile, nil
	case SafeZoneNeighborhood, "":
		return SafeZoneNeighborhood, nil
	default:
		return "", fmt.Errorf("%w: unknown safe zone %q", model.ErrInvalidConfiguration, s)
	}
}

// Config holds the parameters of a game
type Config struct {
	Cols  int
	Rows  int
	Mines int

	// SafeZone controls first-click protection. Empty means SafeZoneNeighborhood.
	SafeZone SafeZone
	// QuestionMarks adds a Questioned step to flag cycling
	QuestionMarks bool
}

// DefaultConfig returns the beginner board with neighbourhood protection
func DefaultConfig() Config {
	return Beginner.Config()
}

// MaxMines returns the largest mine count allowed for the board size
func (c Config) MaxMines() int {
	return (c.Cols - 1) * (c.Rows - 1)
}

// Validate checks the configuration against the board bounds
func (c Config) Validate() error {
	if c.Cols < MinCols || c.Cols > MaxCols {
		return fmt.Errorf("%w: cols %d outside [%d, %d]", model.ErrInvalidConfiguration, c.Cols, MinCols, MaxCols)
	}
	if c.Rows < MinRows || c.Rows > MaxRows {
		return fmt.Errorf("%w: rows %d outside [%d, %d]", model.ErrInvalidConfiguration, c.Rows, MinRows, MaxRows)
	}
	if c.Mines < MinMines || c.Mines > c.MaxMines() {
		return fmt.Errorf("%w: mines %d outside [%d, %d]", model.ErrInvalidConfiguration, c.Mines, MinMines, c.MaxMines())
	}
	zone, err := ParseSafeZone(string(c.SafeZone))
	if err != nil {
		return err
	}
	if c.Mines > c.Cols*c.Rows-zone.Size() {
		return fmt.Errorf("%w: %d mines do not fit outside the safe zone", model.ErrInvalidConfiguration, c.Mines)
	}
	return nil
}

// withDefaults fills optional fields
func (c Config) withDefaults() Config {
	if c.SafeZone == "" {
		c.SafeZone = SafeZoneNeighborhood
	}
	return c
}

// Preset is a named classic board size
type Preset struct {
	Name  string
	Cols  int
	Rows  int
	Mines int
}

var (
	Beginner     = Preset{Name: "beginner", Cols: 9, Rows: 9, Mines: 10}
	Intermediate = Preset{Name: "intermediate", Cols: 16, Rows: 16, Mines: 40}
	Expert       = Preset{Name: "expert", Cols: 30, Rows: 16, Mines: 99}
)

// Presets lists the built-in presets from smallest to largest
var Presets = []Preset{Beginner, Intermediate, Expert}

// PresetByName looks up a preset case-insensitively
func PresetByName(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", model.ErrUnknownPreset, name)
}

// Config returns a Config for the preset with default options
func (p Preset) Config() Config {
	return Config{
		Cols:     p.Cols,
		Rows:     p.Rows,
		Mines:    p.Mines,
		SafeZone: SafeZoneNeighborhood,
	}
}
