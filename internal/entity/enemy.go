// Package entity provides game entities like the slayer and monsters.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/AlexanderMetz/ascii-roguelike/internal/combat"
	"github.com/AlexanderMetz/ascii-roguelike/internal/gamedata"
)

// Enemy represents a hostile creature in the dungeon.
type Enemy struct {
	Def    *gamedata.EnemyDef // Reference to the enemy definition
	Name   string             // Enemy name (e.g., "goblin")
	Symbol rune               // Display symbol
	X, Y   int                // Position in the dungeon
	HP     int                // Current hit points
	MaxHP  int                // Maximum hit points

	fresh bool // True until the player lands the first hit
}

// NewEnemyFromDef creates a new enemy from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef, x, y int) *Enemy {
	return &Enemy{
		Def:    def,
		Name:   def.Name,
		Symbol: def.GlyphRune(),
		X:      x,
		Y:      y,
		HP:     def.HP,
		MaxHP:  def.HP,
		fresh:  true,
	}
}

// Position returns the enemy's current x, y coordinates.
func (e *Enemy) Position() (int, int) {
	return e.X, e.Y
}

// SetPosition updates the enemy's position.
func (e *Enemy) SetPosition(x, y int) {
	e.X = x
	e.Y = y
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	return e.Def.TCellColor()
}

// ID returns the enemy's type identifier.
func (e *Enemy) ID() string {
	return e.Def.ID
}

// Regenerate applies the per-turn regeneration some creatures carry.
// Only living, wounded creatures regenerate.
func (e *Enemy) Regenerate() {
	if e.Def.Regen <= 0 || e.HP <= 0 || e.HP >= e.MaxHP {
		return
	}
	e.HP = min(e.MaxHP, e.HP+e.Def.Regen)
}

// =============================================================================
// Monster interface implementation
// =============================================================================

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// AttackValue returns the attack stat.
func (e *Enemy) AttackValue() int { return e.Def.Attack }

// DamageRange returns the inclusive damage bounds.
func (e *Enemy) DamageRange() (int, int) {
	return e.Def.DamageMin, e.Def.DamageMax
}

// XPValue returns the XP awarded for the kill.
func (e *Enemy) XPValue() int { return e.Def.XP }

// Fresh returns true until the player first connects.
func (e *Enemy) Fresh() bool { return e.fresh }

// MarkStruck clears the first-strike state.
func (e *Enemy) MarkStruck() { e.fresh = false }

// TakeDamage reduces HP and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.HP {
		actual = e.HP
	}
	e.HP -= actual
	return actual
}

// Ensure Enemy implements combat.Monster
var _ combat.Monster = (*Enemy)(nil)
