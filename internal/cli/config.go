package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mcoot/minesweeper/internal/services/game"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Preset    string
	SafeZone  string
	Questions bool
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Preset:    getEnvOrDefault("MINESWEEPER_PRESET", game.Beginner.Name),
		SafeZone:  getEnvOrDefault("MINESWEEPER_SAFE_ZONE", string(game.SafeZoneNeighborhood)),
		Questions: getEnvBool("MINESWEEPER_QUESTIONS", false),
		Output:    getEnvOrDefault("MINESWEEPER_OUTPUT", OutputText),
		Verbose:   false,
	}
}

// Validate checks the values that cannot be checked by flag parsing
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrBadArguments, OutputText, OutputJSON, c.Output)
	}
	return nil
}

// LoadDotEnv loads a .env file into the environment if it exists.
// Variables that are already set win over the file.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // No .env file is fine
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return val
}
