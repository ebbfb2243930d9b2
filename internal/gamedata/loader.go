package gamedata

import (
	"encoding/json"
	"fmt"
)

// validatable lets a definition file check itself after decoding, so
// corrupt embedded data fails at startup instead of mid-run.
type validatable interface {
	Validate() error
}

// Load reads and unmarshals a JSON definition file from the embedded
// filesystem, running the file's validation when it has one.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	if v, ok := any(result).(validatable); ok {
		if err := v.Validate(); err != nil {
			return result, fmt.Errorf("invalid game data in %s: %w", filename, err)
		}
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
