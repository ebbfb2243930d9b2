// Package combat provides the turn-based combat system for Dwarf Slayer.
package combat

import (
	"math/rand"
)

// Hero is the resolver's view of the player character.
type Hero interface {
	// Stats
	AttackValue() int
	ParryValue() int
	DamageBonus() int

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken
}

// Monster is the resolver's view of a dungeon creature.
type Monster interface {
	// Identity
	IsAlive() bool

	// Stats
	AttackValue() int
	DamageRange() (int, int)
	XPValue() int

	// First-strike bookkeeping
	Fresh() bool
	MarkStruck()

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken
}

// StrikeResult contains the outcome of a single attack.
type StrikeResult struct {
	Hit    bool
	Damage int  // Rolled damage on a hit
	Killed bool // True if the strike dropped the target
	XP     int  // XP awarded for the kill
}

// Resolver rolls attacks for both sides of a fight. All randomness comes
// from the injected rng, so a seeded run replays identically.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a new combat resolver.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// HeroStrike resolves the player attacking a monster.
// Hit: d20 <= max(3, AT-2). Damage: 2 + d3 + strength bonus, with a d2
// opener against a target that has not been struck this floor (min 1).
// A landed hit clears the target's first-strike state; a miss leaves it.
func (r *Resolver) HeroStrike(hero Hero, target Monster) StrikeResult {
	threshold := hero.AttackValue() - 2
	if threshold < 3 {
		threshold = 3
	}
	if r.d(20) > threshold {
		return StrikeResult{}
	}

	opener := 0
	if target.Fresh() {
		opener = r.d(2)
	}
	target.MarkStruck()

	damage := 2 + r.d(3) + hero.DamageBonus() + opener
	if damage < 1 {
		damage = 1
	}
	target.TakeDamage(damage)

	result := StrikeResult{Hit: true, Damage: damage}
	if !target.IsAlive() {
		result.Killed = true
		result.XP = target.XPValue()
	}
	return result
}

// MonsterStrike resolves a monster attacking the player.
// Hit: d20 <= monster attack, then a second d20 must beat the player's
// parry. The parry die only rolls when the attack die connects.
func (r *Resolver) MonsterStrike(attacker Monster, hero Hero) StrikeResult {
	if r.d(20) > attacker.AttackValue() {
		return StrikeResult{}
	}
	if r.d(20) <= hero.ParryValue() {
		return StrikeResult{}
	}

	lo, hi := attacker.DamageRange()
	damage := lo + r.rng.Intn(hi-lo+1)
	hero.TakeDamage(damage)
	return StrikeResult{Hit: true, Damage: damage}
}

// d rolls a single die with the given number of sides.
func (r *Resolver) d(sides int) int {
	return 1 + r.rng.Intn(sides)
}
