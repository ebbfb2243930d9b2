package game

import (
	"os"
	"strconv"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible runs:
	// the same seed rolls the same dwarf into the same dungeon.
	// A seed of 0 means a time-based seed will be used.
	Seed int64
}

// ConfigFromEnv builds a Config from the environment.
// DWARFSLAYER_SEED pins the master seed; unset, empty or unparsable
// values leave the time-based default.
func ConfigFromEnv() Config {
	var cfg Config
	if raw := os.Getenv("DWARFSLAYER_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg
}
