package game

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AlexanderMetz/ascii-roguelike/internal/entity"
	"github.com/AlexanderMetz/ascii-roguelike/internal/fov"
	"github.com/AlexanderMetz/ascii-roguelike/internal/logger"
	"github.com/AlexanderMetz/ascii-roguelike/internal/telemetry"
	"github.com/AlexanderMetz/ascii-roguelike/internal/world"
)

const (
	potionsPerFloor  = 7
	monstersPerFloor = 12

	// Placement retries before a spawn is skipped
	potionPlacementTries  = 200
	monsterPlacementTries = 300
)

// newRun rolls a fresh slayer and builds the first floor. Everything
// resets except the rng stream, so starting over mid-run abandons the
// old dwarf for good.
func (g *Game) newRun(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new_run")
	defer span.End()

	g.player = entity.NewPlayer(g.heroDef, g.rng)
	g.depth = 1
	g.turn = 1
	g.log = NewLog()
	g.log.Push("You shoulder your axe and enter.")
	g.state = StateAwaitingInput

	g.newFloor(ctx)

	span.SetAttributes(
		attribute.Int("player.max_hp", g.player.MaxHP),
		attribute.Int("player.attack", g.player.Attack),
		attribute.Int("player.parry", g.player.Parry),
	)
	logger.Log.WithFields(logrus.Fields{
		"max_hp": g.player.MaxHP,
		"attack": g.player.Attack,
		"parry":  g.player.Parry,
	}).Info("new run")
}

// newFloor generates the current depth and restocks it. The player
// keeps level and belongings; position, visibility, monsters and loot
// all reset.
func (g *Game) newFloor(ctx context.Context) {
	g.dungeon = world.NewDungeon(world.DefaultWidth, world.DefaultHeight, g.rng)
	g.dungeon.Generate(ctx)

	g.player.SetPosition(g.dungeon.Entrance.X, g.dungeon.Entrance.Y)

	if g.view == nil {
		g.view = fov.NewView(fov.DefaultRadius)
	} else {
		g.view.Reset()
	}

	g.mobs = nil
	g.loot = nil
	g.spawnLoot()
	g.spawnMobs()

	g.view.Update(g.dungeon, g.player.X, g.player.Y)

	logger.Log.WithFields(logrus.Fields{
		"depth":    g.depth,
		"rooms":    len(g.dungeon.Rooms),
		"monsters": len(g.mobs),
		"potions":  len(g.loot),
	}).Debug("floor stocked")
}

// spawnLoot scatters healing draughts across open floor. The entrance
// and stairs tiles stay clear; draughts may share a tile.
func (g *Game) spawnLoot() {
	def := g.items.GetByID("potion")
	if def == nil {
		return
	}
	for i := 0; i < potionsPerFloor; i++ {
		if x, y, ok := g.rollSpawnTile(potionPlacementTries); ok {
			g.loot = append(g.loot, entity.NewItem(def, x, y))
		}
	}
}

// spawnMobs stocks the floor from the depth-weighted spawn table.
func (g *Game) spawnMobs() {
	for i := 0; i < monstersPerFloor; i++ {
		if x, y, ok := g.rollSpawnTile(monsterPlacementTries); ok {
			def := g.enemies.PickForDepth(g.rng, g.depth)
			g.mobs = append(g.mobs, entity.NewEnemyFromDef(def, x, y))
		}
	}
}

// rollSpawnTile hunts for a floor tile that is neither the entrance
// nor the stairs. Gives up after the given number of tries, skipping
// that spawn.
func (g *Game) rollSpawnTile(tries int) (int, int, bool) {
	for t := 0; t < tries; t++ {
		x := 1 + g.rng.Intn(g.dungeon.Width-2)
		y := 1 + g.rng.Intn(g.dungeon.Height-2)

		if g.dungeon.GetTile(x, y) != world.TileFloor {
			continue
		}
		if x == g.dungeon.Entrance.X && y == g.dungeon.Entrance.Y {
			continue
		}
		if x == g.dungeon.Stairs.X && y == g.dungeon.Stairs.Y {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}
