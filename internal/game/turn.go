package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AlexanderMetz/ascii-roguelike/internal/entity"
	"github.com/AlexanderMetz/ascii-roguelike/internal/logger"
	"github.com/AlexanderMetz/ascii-roguelike/internal/telemetry"
	"github.com/AlexanderMetz/ascii-roguelike/internal/world"
)

// tryMove attempts to move the player by the given delta. Bumping into
// a living monster attacks it instead; stepping onto loot picks it up,
// and stepping onto the stairs descends immediately.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	newX := clamp(g.player.X+dx, 0, g.dungeon.Width-1)
	newY := clamp(g.player.Y+dy, 0, g.dungeon.Height-1)

	if g.dungeon.GetTile(newX, newY) == world.TileWall {
		return
	}

	for _, mob := range g.mobs {
		if mob.IsAlive() && mob.X == newX && mob.Y == newY {
			g.attackMonster(mob)
			return
		}
	}

	g.player.SetPosition(newX, newY)
	g.pickUpLoot()

	if newX == g.dungeon.Stairs.X && newY == g.dungeon.Stairs.Y {
		g.descend(ctx)
	}
}

// endTurn advances the clock and lets every monster act. The death
// check runs after every enemy phase, whatever the player's action was.
func (g *Game) endTurn() {
	g.state = StateResolvingTurn
	g.turn++
	g.enemyPhase()
	g.view.Update(g.dungeon, g.player.X, g.player.Y)

	if !g.player.IsAlive() {
		g.state = StateGameOver
		g.log.Push("You fall...")
		logger.Log.WithFields(logrus.Fields{"depth": g.depth, "turn": g.turn}).Info("player died")
		return
	}
	g.state = StateAwaitingInput
}

// attackMonster resolves the player striking a monster and logs the
// outcome.
func (g *Game) attackMonster(mob *entity.Enemy) {
	result := g.resolver.HeroStrike(g.player, mob)
	if !result.Hit {
		g.log.Push(fmt.Sprintf("You miss the %s.", mob.Name))
		return
	}

	g.log.Push(fmt.Sprintf("You hit the %s for %d.", mob.Name, result.Damage))
	if result.Killed {
		g.log.Push(fmt.Sprintf("%s dies!", capitalize(mob.Name)))
		g.awardXP(result.XP)
	}
}

// awardXP logs the gain and any level-ups it cascades into.
func (g *Game) awardXP(amount int) {
	g.log.Push(fmt.Sprintf("You gain %d XP.", amount))
	for _, up := range g.player.GainXP(amount) {
		suffix := ""
		if up.ParryGained {
			suffix = ", PA+1"
		}
		g.log.Push(fmt.Sprintf("*** Level Up! Level %d. MaxHP+4, AT+1%s.", up.Level, suffix))
		logger.Log.WithFields(logrus.Fields{"level": up.Level, "turn": g.turn}).Info("level up")
	}
}

// pickUpLoot collects a healing draught under the player, if any.
func (g *Game) pickUpLoot() {
	for i, item := range g.loot {
		if item.X == g.player.X && item.Y == g.player.Y && item.Def.ID == "potion" {
			g.player.Potions++
			g.loot = append(g.loot[:i], g.loot[i+1:]...)
			g.log.Push("You pick up a healing draught.")
			return
		}
	}
}

// quaffPotion drinks a healing draught. The heal scales with the
// slayer's constitution.
func (g *Game) quaffPotion() {
	if g.player.Potions <= 0 {
		return
	}
	def := g.items.GetByID("potion")
	if def == nil {
		return
	}

	g.player.Potions--
	heal := def.HealBase + g.player.HealBonus()
	if heal < def.HealMin {
		heal = def.HealMin
	}
	g.player.Heal(heal)
	g.log.Push("You quaff a bitter dwarf brew. (+HP)")
}

// descend advances to the next depth. The descent costs a turn on top
// of the action that triggered it.
func (g *Game) descend(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.descend")
	defer span.End()

	g.depth++
	g.turn++
	g.log.Push(fmt.Sprintf("You descend to Depth %d.", g.depth))
	g.newFloor(ctx)

	span.SetAttributes(
		attribute.Int("game.depth", g.depth),
		attribute.Int("game.turn", g.turn),
		attribute.Int("dungeon.rooms", len(g.dungeon.Rooms)),
	)
	logger.Log.WithFields(logrus.Fields{"depth": g.depth, "turn": g.turn}).Info("descended")
}

// capitalize upper-cases the first letter of a creature name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// clamp pins v into [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
