package gamedata

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// HeroDef defines the playable character loaded from JSON.
type HeroDef struct {
	Name               string         `json:"name"`       // Display name (e.g., "Dwarf Slayer")
	Race               string         `json:"race"`       // Race label shown in logs
	Profession         string         `json:"profession"` // Profession label shown in logs
	Glyph              string         `json:"glyph"`      // Single character for rendering (e.g., "S")
	Color              string         `json:"color"`      // Hex color code
	Attributes         []string       `json:"attributes"` // Attribute names in display order
	RollMin            int            `json:"rollMin"`    // Lower bound of the attribute roll
	RollMax            int            `json:"rollMax"`    // Upper bound of the attribute roll
	RaceModifiers      map[string]int `json:"raceModifiers"`
	ProfessionModifiers map[string]int `json:"professionModifiers"`
	Weapon             string         `json:"weapon"` // Starting weapon label
	Armor              string         `json:"armor"`  // Starting armor label
}

// Validate checks the definition for the fields the game relies on.
func (h HeroDef) Validate() error {
	if len(h.Attributes) == 0 {
		return errors.New("hero: no attributes")
	}
	if h.RollMin > h.RollMax {
		return fmt.Errorf("hero: bad roll range %d..%d", h.RollMin, h.RollMax)
	}
	if h.Glyph == "" {
		return errors.New("hero: empty glyph")
	}
	return nil
}

// RollAttributes rolls a fresh attribute set: each attribute uniform in
// [RollMin, RollMax], then race and profession modifiers applied on top.
func (h *HeroDef) RollAttributes(rng *rand.Rand) map[string]int {
	attrs := make(map[string]int, len(h.Attributes))
	for _, name := range h.Attributes {
		attrs[name] = h.RollMin + rng.Intn(h.RollMax-h.RollMin+1)
	}
	for name, mod := range h.RaceModifiers {
		attrs[name] += mod
	}
	for name, mod := range h.ProfessionModifiers {
		attrs[name] += mod
	}
	return attrs
}

// GlyphRune returns the glyph as a rune for rendering.
func (h *HeroDef) GlyphRune() rune {
	if len(h.Glyph) == 0 {
		return '@'
	}
	return rune(h.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (h *HeroDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(h.Color)
	if err != nil {
		return tcell.ColorYellow // fallback
	}
	return color
}

// LoadHero loads the hero definition from the embedded hero.json file.
func LoadHero() (*HeroDef, error) {
	hero, err := Load[HeroDef]("hero.json")
	if err != nil {
		return nil, err
	}
	return &hero, nil
}

// MustLoadHero loads the hero definition, panicking on error.
func MustLoadHero() *HeroDef {
	hero, err := LoadHero()
	if err != nil {
		panic(err)
	}
	return hero
}
