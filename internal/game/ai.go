package game

import (
	"fmt"
	"math"

	"github.com/AlexanderMetz/ascii-roguelike/internal/entity"
	"github.com/AlexanderMetz/ascii-roguelike/internal/fov"
	"github.com/AlexanderMetz/ascii-roguelike/internal/gamedata"
	"github.com/AlexanderMetz/ascii-roguelike/internal/world"
)

// meleeReach is the distance at which a monster can swing instead of
// stepping. Covers diagonals (sqrt 2) but not knight-move gaps.
const meleeReach = 1.5

// enemyPhase lets every living monster act once, in spawn order.
func (g *Game) enemyPhase() {
	for _, mob := range g.mobs {
		if !mob.IsAlive() {
			continue
		}

		mob.Regenerate()

		dist := g.distanceToPlayer(mob)

		if mob.Def.Behavior == gamedata.BehaviorRanged {
			g.rangedAct(mob, dist)
			continue
		}

		// Melee closes in; runners cover two steps while far out
		steps := 1
		if mob.Def.Behavior == gamedata.BehaviorRunner && dist > 2 {
			steps = 2
		}
		for i := 0; i < steps; i++ {
			if dist <= meleeReach {
				g.monsterAttack(mob)
				break
			}
			g.stepToward(mob, g.player.X, g.player.Y)
			dist = g.distanceToPlayer(mob)
		}
	}
}

// rangedAct fires when the player is in range with a clear line, and
// otherwise keeps distance: archers back off to their preferred range
// before loosing again.
func (g *Game) rangedAct(mob *entity.Enemy, dist float64) {
	if dist > 1 && dist <= float64(mob.Def.Range) &&
		fov.LineClear(g.dungeon, mob.X, mob.Y, g.player.X, g.player.Y) {
		g.monsterAttack(mob)
		return
	}

	if dist < float64(mob.Def.Preferred) {
		// Retreat toward the tile mirrored away from the player
		g.stepToward(mob, 2*mob.X-g.player.X, 2*mob.Y-g.player.Y)
		return
	}
	g.stepToward(mob, g.player.X, g.player.Y)
}

// monsterAttack resolves a monster striking the player and logs it.
func (g *Game) monsterAttack(mob *entity.Enemy) {
	result := g.resolver.MonsterStrike(mob, g.player)
	if result.Hit {
		g.log.Push(fmt.Sprintf("%s hits you (%d).", capitalize(mob.Name), result.Damage))
		return
	}
	g.log.Push(fmt.Sprintf("You fend off the %s.", mob.Name))
}

// stepToward moves the mob one step along the sign of the delta.
// Diagonals are allowed. Bounds, walls, the player and other living
// monsters all block; a blocked mob stays put.
func (g *Game) stepToward(mob *entity.Enemy, tx, ty int) {
	nx := mob.X + sign(tx-mob.X)
	ny := mob.Y + sign(ty-mob.Y)

	if !g.dungeon.InBounds(nx, ny) {
		return
	}
	if g.dungeon.GetTile(nx, ny) == world.TileWall {
		return
	}
	if nx == g.player.X && ny == g.player.Y {
		return
	}
	for _, other := range g.mobs {
		if other != mob && other.IsAlive() && other.X == nx && other.Y == ny {
			return
		}
	}

	mob.SetPosition(nx, ny)
}

// distanceToPlayer returns the Euclidean distance from the mob to the
// player.
func (g *Game) distanceToPlayer(mob *entity.Enemy) float64 {
	return math.Hypot(float64(mob.X-g.player.X), float64(mob.Y-g.player.Y))
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
