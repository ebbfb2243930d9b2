package entity

import (
	"math/rand"
	"testing"

	"github.com/AlexanderMetz/ascii-roguelike/internal/gamedata"
)

func TestDeriveStats(t *testing.T) {
	tests := []struct {
		name   string
		attrs  map[string]int
		wantHP int
		wantAT int
		wantPA int
	}{
		{
			name:   "all average",
			attrs:  map[string]int{"MU": 10, "GE": 10, "KO": 10, "KK": 10},
			wantHP: 22, // 20 + 0 + 10/5
			wantAT: 11, // 6 + 20/4
			wantPA: 8,  // 4 + 20/5
		},
		{
			name:   "stout dwarf",
			attrs:  map[string]int{"MU": 12, "GE": 10, "KO": 14, "KK": 15},
			wantHP: 27, // 20 + 4 + 15/5
			wantAT: 12, // 6 + 25/4
			wantPA: 8,  // 4 + 22/5
		},
		{
			name:   "frail roll",
			attrs:  map[string]int{"MU": 9, "GE": 9, "KO": 8, "KK": 9},
			wantHP: 21, // low KO adds nothing
			wantAT: 10,
			wantPA: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxHP, attack, parry := deriveStats(tt.attrs)
			if maxHP != tt.wantHP {
				t.Errorf("MaxHP = %d, want %d", maxHP, tt.wantHP)
			}
			if attack != tt.wantAT {
				t.Errorf("Attack = %d, want %d", attack, tt.wantAT)
			}
			if parry != tt.wantPA {
				t.Errorf("Parry = %d, want %d", parry, tt.wantPA)
			}
		})
	}
}

func TestNewPlayerFromDef(t *testing.T) {
	def := gamedata.MustLoadHero()
	p := NewPlayer(def, rand.New(rand.NewSource(42)))

	if p.Name != "Dwarf Slayer" {
		t.Errorf("Name = %q, want Dwarf Slayer", p.Name)
	}
	if p.Symbol != 'S' {
		t.Errorf("Symbol = %q, want S", p.Symbol)
	}
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1", p.Level)
	}
	if p.NextXP != 30 {
		t.Errorf("NextXP = %d, want 30", p.NextXP)
	}
	if p.HP != p.MaxHP {
		t.Errorf("Fresh slayer should start at full HP: %d/%d", p.HP, p.MaxHP)
	}
	if p.Potions != 0 {
		t.Errorf("Potions = %d, want 0", p.Potions)
	}
	if p.Weapon != "Axe" || p.Armor != "Cloth" {
		t.Errorf("Equipment = %q/%q, want Axe/Cloth", p.Weapon, p.Armor)
	}

	for _, attr := range def.Attributes {
		if _, ok := p.Attributes[attr]; !ok {
			t.Errorf("Missing rolled attribute %s", attr)
		}
	}

	// Derived stats must agree with the rolled attributes
	maxHP, attack, parry := deriveStats(p.Attributes)
	if p.MaxHP != maxHP || p.Attack != attack || p.Parry != parry {
		t.Errorf("Derived stats %d/%d/%d do not match attributes (%d/%d/%d)",
			p.MaxHP, p.Attack, p.Parry, maxHP, attack, parry)
	}
}

func TestNewPlayerDeterministic(t *testing.T) {
	def := gamedata.MustLoadHero()

	p1 := NewPlayer(def, rand.New(rand.NewSource(7)))
	p2 := NewPlayer(def, rand.New(rand.NewSource(7)))

	for attr, v := range p1.Attributes {
		if p2.Attributes[attr] != v {
			t.Errorf("Attribute %s differs between same-seed rolls: %d != %d", attr, v, p2.Attributes[attr])
		}
	}
	if p1.MaxHP != p2.MaxHP || p1.Attack != p2.Attack || p1.Parry != p2.Parry {
		t.Error("Same-seed rolls produced different derived stats")
	}
}

func TestPlayerGainXPBelowThreshold(t *testing.T) {
	p := testPlayer()

	ups := p.GainXP(8)

	if len(ups) != 0 {
		t.Fatalf("Expected no level, got %d", len(ups))
	}
	if p.XP != 8 {
		t.Errorf("XP = %d, want 8", p.XP)
	}
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1", p.Level)
	}
}

func TestPlayerGainXPSingleLevel(t *testing.T) {
	p := testPlayer()
	baseHP := p.MaxHP
	baseAT := p.Attack
	basePA := p.Parry

	ups := p.GainXP(38)

	if len(ups) != 1 {
		t.Fatalf("Expected 1 level, got %d", len(ups))
	}
	if ups[0].Level != 2 || !ups[0].ParryGained {
		t.Errorf("LevelUp = %+v, want level 2 with parry", ups[0])
	}
	if p.XP != 8 {
		t.Errorf("Leftover XP = %d, want 8", p.XP)
	}
	if p.NextXP != 40 {
		t.Errorf("NextXP = %d, want 40", p.NextXP)
	}
	if p.MaxHP != baseHP+4 {
		t.Errorf("MaxHP = %d, want %d", p.MaxHP, baseHP+4)
	}
	if p.Attack != baseAT+1 {
		t.Errorf("Attack = %d, want %d", p.Attack, baseAT+1)
	}
	if p.Parry != basePA+1 {
		t.Errorf("Parry = %d, want %d", p.Parry, basePA+1)
	}
}

func TestPlayerGainXPCascade(t *testing.T) {
	p := testPlayer()
	basePA := p.Parry

	// 75 XP clears level 1 (30) and level 2 (40) in one award
	ups := p.GainXP(75)

	if len(ups) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(ups))
	}
	if ups[0].Level != 2 || !ups[0].ParryGained {
		t.Errorf("First LevelUp = %+v, want level 2 with parry", ups[0])
	}
	if ups[1].Level != 3 || ups[1].ParryGained {
		t.Errorf("Second LevelUp = %+v, want level 3 without parry", ups[1])
	}
	if p.XP != 5 {
		t.Errorf("Leftover XP = %d, want 5", p.XP)
	}
	if p.NextXP != 50 {
		t.Errorf("NextXP = %d, want 50", p.NextXP)
	}
	if p.Parry != basePA+1 {
		t.Errorf("Parry = %d, want %d (odd level adds none)", p.Parry, basePA+1)
	}
}

func TestPlayerGainXPRestoresSomeHP(t *testing.T) {
	p := testPlayer()
	p.HP = 1

	p.GainXP(30)

	if p.HP != 5 {
		t.Errorf("HP = %d, want 5 after the level-up surge", p.HP)
	}
	if p.HP > p.MaxHP {
		t.Errorf("HP %d exceeds MaxHP %d", p.HP, p.MaxHP)
	}
}

func TestPlayerTakeDamageAndHeal(t *testing.T) {
	p := testPlayer()
	p.HP = 10
	p.MaxHP = 22

	if actual := p.TakeDamage(3); actual != 3 {
		t.Errorf("TakeDamage(3) = %d, want 3", actual)
	}
	if p.HP != 7 {
		t.Errorf("HP = %d, want 7", p.HP)
	}

	// Overkill clamps at zero
	if actual := p.TakeDamage(100); actual != 7 {
		t.Errorf("TakeDamage(100) = %d, want 7", actual)
	}
	if p.HP != 0 || p.IsAlive() {
		t.Errorf("Expected a dead slayer at 0 HP, got %d", p.HP)
	}

	// Overheal clamps at MaxHP
	if actual := p.Heal(100); actual != 22 {
		t.Errorf("Heal(100) = %d, want 22", actual)
	}
	if p.HP != p.MaxHP {
		t.Errorf("HP = %d, want %d", p.HP, p.MaxHP)
	}
	if actual := p.Heal(5); actual != 0 {
		t.Errorf("Heal at full HP = %d, want 0", actual)
	}
}

func TestPlayerBonuses(t *testing.T) {
	tests := []struct {
		kk, ko               int
		wantDamage, wantHeal int
	}{
		{10, 10, 0, 0},
		{12, 12, 1, 1},
		{15, 14, 2, 2},
		{9, 8, 0, 0}, // below-average attributes never punish
	}

	for _, tt := range tests {
		p := &Player{Attributes: map[string]int{"KK": tt.kk, "KO": tt.ko}}
		if got := p.DamageBonus(); got != tt.wantDamage {
			t.Errorf("KK %d: DamageBonus = %d, want %d", tt.kk, got, tt.wantDamage)
		}
		if got := p.HealBonus(); got != tt.wantHeal {
			t.Errorf("KO %d: HealBonus = %d, want %d", tt.ko, got, tt.wantHeal)
		}
	}
}

// testPlayer builds a level 1 slayer with fixed average attributes.
func testPlayer() *Player {
	attrs := map[string]int{"MU": 10, "KL": 10, "IN": 10, "CH": 10, "FF": 10, "GE": 10, "KO": 10, "KK": 10}
	maxHP, attack, parry := deriveStats(attrs)
	return &Player{
		Name:       "Dwarf Slayer",
		Attributes: attrs,
		HP:         maxHP,
		MaxHP:      maxHP,
		Attack:     attack,
		Parry:      parry,
		Level:      1,
		NextXP:     xpThreshold(1),
	}
}
