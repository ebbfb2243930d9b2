// Package entity provides game entities like the slayer and monsters.
package entity

import (
	"math/rand"

	"github.com/AlexanderMetz/ascii-roguelike/internal/combat"
	"github.com/AlexanderMetz/ascii-roguelike/internal/gamedata"
)

// Player represents the dwarf slayer descending the dungeon.
type Player struct {
	Name       string
	Race       string
	Profession string
	Symbol     rune
	Color      string // Hex color for rendering
	X, Y       int

	// Rolled attributes keyed by short name (MU, KL, IN, CH, FF, GE, KO, KK)
	Attributes map[string]int

	// Derived combat stats
	HP, MaxHP int
	Attack    int
	Parry     int

	// Progression
	Level  int
	XP     int
	NextXP int

	// Belongings
	Potions int
	Weapon  string
	Armor   string
}

// LevelUp describes a single level gained from an XP award.
type LevelUp struct {
	Level       int
	ParryGained bool // Parry only rises on even levels
}

// NewPlayer rolls a fresh slayer from the hero definition. The rng drives
// the attribute rolls, so a seeded run always meets the same dwarf.
func NewPlayer(def *gamedata.HeroDef, rng *rand.Rand) *Player {
	attrs := def.RollAttributes(rng)
	maxHP, attack, parry := deriveStats(attrs)

	return &Player{
		Name:       def.Name,
		Race:       def.Race,
		Profession: def.Profession,
		Symbol:     def.GlyphRune(),
		Color:      def.Color,
		Attributes: attrs,
		HP:         maxHP,
		MaxHP:      maxHP,
		Attack:     attack,
		Parry:      parry,
		Level:      1,
		NextXP:     xpThreshold(1),
		Weapon:     def.Weapon,
		Armor:      def.Armor,
	}
}

// deriveStats computes hit points, attack and parry from rolled attributes.
// MaxHP: 20 + excess constitution + KK/5. AT: 6 + (KK+GE)/4.
// PA: 4 + (GE+MU)/5.
func deriveStats(attrs map[string]int) (maxHP, attack, parry int) {
	koBonus := attrs["KO"] - 10
	if koBonus < 0 {
		koBonus = 0
	}
	maxHP = 20 + koBonus + attrs["KK"]/5
	attack = 6 + (attrs["KK"]+attrs["GE"])/4
	parry = 4 + (attrs["GE"]+attrs["MU"])/5
	return maxHP, attack, parry
}

// xpThreshold returns the XP required to clear the given level.
func xpThreshold(level int) int {
	return 20 + level*10
}

// SetPosition updates the player's position.
func (p *Player) SetPosition(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the player's current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// GainXP awards experience and returns one entry per level gained.
// Thresholds are consumed: leftover XP counts toward the next level,
// and big awards can cascade through several levels at once. Each level
// adds 4 MaxHP, 1 AT and, on even levels, 1 PA, and restores up to 4 HP.
func (p *Player) GainXP(amount int) []LevelUp {
	p.XP += amount

	var ups []LevelUp
	for p.XP >= p.NextXP {
		p.XP -= p.NextXP
		p.Level++
		p.NextXP = xpThreshold(p.Level)
		p.MaxHP += 4
		p.Attack++
		gained := p.Level%2 == 0
		if gained {
			p.Parry++
		}
		p.HP = min(p.MaxHP, p.HP+4)
		ups = append(ups, LevelUp{Level: p.Level, ParryGained: gained})
	}
	return ups
}

// Heal restores HP and returns the actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.HP+actual > p.MaxHP {
		actual = p.MaxHP - p.HP
	}
	p.HP += actual
	return actual
}

// HealBonus returns the constitution bonus applied to potions.
func (p *Player) HealBonus() int {
	bonus := (p.Attributes["KO"] - 10) / 2
	if bonus < 0 {
		return 0
	}
	return bonus
}

// =============================================================================
// Hero interface implementation
// =============================================================================

// AttackValue returns the attack stat.
func (p *Player) AttackValue() int { return p.Attack }

// ParryValue returns the parry stat.
func (p *Player) ParryValue() int { return p.Parry }

// DamageBonus returns the strength bonus added to weapon damage.
func (p *Player) DamageBonus() int {
	bonus := (p.Attributes["KK"] - 10) / 2
	if bonus < 0 {
		return 0
	}
	return bonus
}

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.HP {
		actual = p.HP
	}
	p.HP -= actual
	return actual
}

// Ensure Player implements combat.Hero
var _ combat.Hero = (*Player)(nil)
