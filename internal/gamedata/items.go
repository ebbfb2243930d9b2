package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ItemDef defines a floor item loaded from JSON.
type ItemDef struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "potion")
	Name     string `json:"name"`     // Display name, lowercase (e.g., "healing draught")
	Glyph    string `json:"glyph"`    // Single character for rendering (e.g., "!")
	Color    string `json:"color"`    // Hex color code
	HealBase int    `json:"healBase"` // Base HP restored when quaffed
	HealMin  int    `json:"healMin"`  // Floor on the restored amount
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	if len(i.Glyph) == 0 {
		return '?'
	}
	return rune(i.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (i *ItemDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(i.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// Validate checks every definition for the fields the game relies on.
func (f ItemsFile) Validate() error {
	if len(f.Items) == 0 {
		return errors.New("no item definitions")
	}
	for _, item := range f.Items {
		if item.ID == "" || item.Glyph == "" {
			return fmt.Errorf("item %q: missing id or glyph", item.ID)
		}
		if item.HealBase <= 0 || item.HealMin <= 0 {
			return fmt.Errorf("item %s: heal values must be positive, got %d/%d",
				item.ID, item.HealBase, item.HealMin)
		}
	}
	return nil
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// MustLoadItems loads item definitions, panicking on error.
func MustLoadItems() []ItemDef {
	items, err := LoadItems()
	if err != nil {
		panic(err)
	}
	return items
}
