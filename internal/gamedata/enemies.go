package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Behavior selects the AI routine an enemy runs on its turn.
type Behavior string

const (
	// BehaviorMelee closes on the player and attacks when adjacent.
	BehaviorMelee Behavior = "melee"
	// BehaviorRunner closes like melee but covers two steps while far away.
	BehaviorRunner Behavior = "runner"
	// BehaviorRanged shoots at range with line of sight and keeps its distance.
	BehaviorRanged Behavior = "ranged"
)

// SpawnRule describes how an enemy's spawn weight scales with dungeon depth.
// The weight at depth d is max(min, base + d*perDepthNum/perDepthDen), using
// integer division, and zero below minDepth.
type SpawnRule struct {
	Base        int `json:"base"`
	PerDepthNum int `json:"perDepthNum"`
	PerDepthDen int `json:"perDepthDen"`
	Min         int `json:"min"`
	MinDepth    int `json:"minDepth,omitempty"`
}

// Weight returns the spawn weight at the given depth.
func (r SpawnRule) Weight(depth int) int {
	if depth < r.MinDepth {
		return 0
	}
	den := r.PerDepthDen
	if den == 0 {
		den = 1
	}
	w := r.Base + depth*r.PerDepthNum/den
	if w < r.Min {
		w = r.Min
	}
	return w
}

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID        string    `json:"id"`        // Unique identifier (e.g., "goblin")
	Name      string    `json:"name"`      // Display name (e.g., "Goblin")
	Glyph     string    `json:"glyph"`     // Single character for rendering (e.g., "g")
	Color     string    `json:"color"`     // Hex color code (e.g., "#22C55E")
	HP        int       `json:"hp"`        // Starting hit points
	Attack    int       `json:"attack"`    // Attack rating rolled against on a d20
	DamageMin int       `json:"damageMin"` // Lower bound of damage dealt on a hit
	DamageMax int       `json:"damageMax"` // Upper bound of damage dealt on a hit
	Behavior  Behavior  `json:"behavior"`  // AI routine
	Speed     int       `json:"speed"`     // Steps per turn while closing
	Regen     int       `json:"regen,omitempty"`          // HP recovered at the start of its turn
	Range     int       `json:"range,omitempty"`          // Maximum shooting distance (ranged only)
	Preferred int       `json:"preferredRange,omitempty"` // Distance a ranged enemy tries to keep
	XP        int       `json:"xp"`    // Experience awarded on death
	Spawn     SpawnRule `json:"spawn"` // Depth-dependent spawn weighting
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// Validate checks every definition for the fields the game relies on.
func (f EnemiesFile) Validate() error {
	if len(f.Enemies) == 0 {
		return errors.New("no enemy definitions")
	}
	seen := make(map[string]bool, len(f.Enemies))
	for _, e := range f.Enemies {
		switch {
		case e.ID == "":
			return errors.New("enemy with empty id")
		case seen[e.ID]:
			return fmt.Errorf("duplicate enemy id %q", e.ID)
		case e.Glyph == "":
			return fmt.Errorf("enemy %s: empty glyph", e.ID)
		case e.HP <= 0:
			return fmt.Errorf("enemy %s: hp must be positive, got %d", e.ID, e.HP)
		case e.DamageMin < 1 || e.DamageMax < e.DamageMin:
			return fmt.Errorf("enemy %s: bad damage range %d-%d", e.ID, e.DamageMin, e.DamageMax)
		case e.XP <= 0:
			return fmt.Errorf("enemy %s: xp must be positive, got %d", e.ID, e.XP)
		}
		switch e.Behavior {
		case BehaviorMelee, BehaviorRunner:
		case BehaviorRanged:
			if e.Range <= 0 {
				return fmt.Errorf("enemy %s: ranged behavior needs a positive range", e.ID)
			}
		default:
			return fmt.Errorf("enemy %s: unknown behavior %q", e.ID, e.Behavior)
		}
		seen[e.ID] = true
	}
	return nil
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// MustLoadEnemies loads enemy definitions, panicking on error.
func MustLoadEnemies() []EnemyDef {
	enemies, err := LoadEnemies()
	if err != nil {
		panic(err)
	}
	return enemies
}
