package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AlexanderMetz/ascii-roguelike/internal/combat"
	"github.com/AlexanderMetz/ascii-roguelike/internal/entity"
	"github.com/AlexanderMetz/ascii-roguelike/internal/fov"
	"github.com/AlexanderMetz/ascii-roguelike/internal/gamedata"
	"github.com/AlexanderMetz/ascii-roguelike/internal/logger"
	"github.com/AlexanderMetz/ascii-roguelike/internal/telemetry"
	"github.com/AlexanderMetz/ascii-roguelike/internal/ui"
	"github.com/AlexanderMetz/ascii-roguelike/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer

	heroDef *gamedata.HeroDef
	enemies *gamedata.EnemyRegistry
	items   *gamedata.ItemRegistry

	rng      *rand.Rand
	resolver *combat.Resolver

	dungeon *world.Dungeon
	view    *fov.View
	player  *entity.Player
	mobs    []*entity.Enemy
	loot    []*entity.Item

	depth int
	turn  int
	log   *Log
	state State

	running bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	heroDef, err := gamedata.LoadHero()
	if err != nil {
		screen.Close()
		return nil, err
	}
	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	logger.Log.WithFields(logrus.Fields{"seed": seed, "run_id": telemetry.RunID()}).Info("game created")

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		heroDef:  heroDef,
		enemies:  enemies,
		items:    items,
		rng:      rng,
		resolver: combat.NewResolver(rng),
		log:      NewLog(),
		state:    StateAwaitingInput,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.newRun(ctx)
	initSpan.SetAttributes(
		attribute.Int("dungeon.rooms", len(g.dungeon.Rooms)),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
	initSpan.End()

	// Main game loop
	for g.running {
		// Render current state
		g.renderer.Render(g.frame())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	// Cleanup
	g.screen.Close()
	return nil
}

// frame assembles the render snapshot for the current state.
func (g *Game) frame() ui.Frame {
	return ui.Frame{
		Dungeon: g.dungeon,
		View:    g.view,
		Player:  g.player,
		Enemies: g.mobs,
		Items:   g.loot,
		Depth:   g.depth,
		Turn:    g.turn,
		Log:     g.log.Recent(ui.LogLines),
		Over:    g.state == StateGameOver,
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return

	case tcell.KeyUp:
		g.moveAction(ctx, 0, -1)
		return
	case tcell.KeyDown:
		g.moveAction(ctx, 0, 1)
		return
	case tcell.KeyLeft:
		g.moveAction(ctx, -1, 0)
		return
	case tcell.KeyRight:
		g.moveAction(ctx, 1, 0)
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case 'w', 'W':
		g.moveAction(ctx, 0, -1)
	case 's', 'S':
		g.moveAction(ctx, 0, 1)
	case 'a', 'A':
		g.moveAction(ctx, -1, 0)
	case 'd', 'D':
		g.moveAction(ctx, 1, 0)
	case '.':
		g.moveAction(ctx, 0, 0)
	case 'r', 'R':
		g.restAction()
	case 'p', 'P':
		g.potionAction()
	case '>':
		g.descendAction(ctx)
	case 'n', 'N':
		g.newRun(ctx)
	case 'q', 'Q':
		g.running = false
	}
}

// moveAction handles a movement or wait command, then runs the enemy
// phase. Waiting in place still resolves pickups and stairs.
func (g *Game) moveAction(ctx context.Context, dx, dy int) {
	if g.state == StateGameOver {
		return
	}
	g.tryMove(ctx, dx, dy)
	g.endTurn()
}

// restAction trades the turn for a single point of breath.
func (g *Game) restAction() {
	if g.state == StateGameOver {
		return
	}
	g.player.Heal(1)
	g.log.Push("You catch your breath.")
	g.endTurn()
}

// potionAction quaffs a healing draught. Fumbling for a missing bottle
// still costs the turn.
func (g *Game) potionAction() {
	if g.state == StateGameOver {
		return
	}
	g.quaffPotion()
	g.endTurn()
}

// descendAction takes the stairs under the player's feet. Off the
// stairs it does nothing and costs nothing.
func (g *Game) descendAction(ctx context.Context) {
	if g.state == StateGameOver {
		return
	}
	if g.player.X != g.dungeon.Stairs.X || g.player.Y != g.dungeon.Stairs.Y {
		return
	}
	g.descend(ctx)
	g.endTurn()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
