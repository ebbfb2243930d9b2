package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/AlexanderMetz/ascii-roguelike/internal/entity"
	"github.com/AlexanderMetz/ascii-roguelike/internal/fov"
	"github.com/AlexanderMetz/ascii-roguelike/internal/gamedata"
	"github.com/AlexanderMetz/ascii-roguelike/internal/world"
)

// LogLines is the number of saga log entries shown in the side panel.
const LogLines = 18

const (
	panelGap   = 2  // Columns between the map edge and the panel
	panelWidth = 30 // Width of the side panel
)

// Map palette. Entity colors come from game data; these cover the tiles
// and the panel text.
const (
	wallColor   = "#64748B"
	floorColor  = "#475569"
	stairsColor = "#FBBF24"
	titleColor  = "#F59E0B"
	textColor   = "#E2E8F0"
	logColor    = "#94A3B8"
	overColor   = "#EF4444"
)

// Frame is the render snapshot for one turn: everything the renderer
// needs, with no back-reference into game state.
type Frame struct {
	Dungeon *world.Dungeon
	View    *fov.View
	Player  *entity.Player
	Enemies []*entity.Enemy
	Items   []*entity.Item
	Depth   int
	Turn    int
	Log     []string // Newest first
	Over    bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen

	// Style caches keyed by hex color, bright and fog-dimmed
	bright map[string]tcell.Style
	dimmed map[string]tcell.Style
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		bright: make(map[string]tcell.Style),
		dimmed: make(map[string]tcell.Style),
	}
}

// Render draws the full frame: map with fog of war, entities, the side
// panel and the help line, plus the game-over banner when the run has
// ended.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	r.drawMap(f)
	r.drawItems(f)
	r.drawEnemies(f)
	r.drawPlayer(f)
	r.drawPanel(f)
	r.drawHelp(f)
	if f.Over {
		r.drawGameOver(f)
	}

	r.screen.Show()
}

// drawMap draws the dungeon tiles. Unexplored tiles stay blank;
// explored-but-unseen tiles draw in their fog variant.
func (r *Renderer) drawMap(f Frame) {
	for y := 0; y < f.Dungeon.Height; y++ {
		for x := 0; x < f.Dungeon.Width; x++ {
			if !f.View.Explored(x, y) {
				continue
			}
			tile := f.Dungeon.GetTile(x, y)
			style := r.tileStyle(tile, f.View.Visible(x, y))
			r.screen.SetContent(x, y, tile.Rune(), style)
		}
	}
}

// drawItems draws loot on explored tiles, dimmed outside the current
// field of view.
func (r *Renderer) drawItems(f Frame) {
	for _, item := range f.Items {
		if !f.View.Explored(item.X, item.Y) {
			continue
		}
		r.screen.SetContent(item.X, item.Y, item.Symbol(), r.colorStyle(item.Def.Color, f.View.Visible(item.X, item.Y)))
	}
}

// drawEnemies draws living monsters on explored tiles, fog-dimmed when
// the tile is out of the current field of view.
func (r *Renderer) drawEnemies(f Frame) {
	for _, mob := range f.Enemies {
		if !mob.IsAlive() || !f.View.Explored(mob.X, mob.Y) {
			continue
		}
		r.screen.SetContent(mob.X, mob.Y, mob.Symbol, r.colorStyle(mob.Def.Color, f.View.Visible(mob.X, mob.Y)))
	}
}

// drawPlayer draws the slayer on top of everything else.
func (r *Renderer) drawPlayer(f Frame) {
	style := r.colorStyle(f.Player.Color, true).Bold(true)
	r.screen.SetContent(f.Player.X, f.Player.Y, f.Player.Symbol, style)
}

// drawPanel draws the status column to the right of the map.
func (r *Renderer) drawPanel(f Frame) {
	px := f.Dungeon.Width + panelGap
	text := r.colorStyle(textColor, true)
	title := r.colorStyle(titleColor, true).Bold(true)
	log := r.colorStyle(logColor, true)

	p := f.Player
	r.drawText(px, 0, title, fmt.Sprintf("%s — Depth %d", p.Name, f.Depth))
	r.drawText(px, 2, text, fmt.Sprintf("HP %d/%d   Turn %d", p.HP, p.MaxHP, f.Turn))
	r.drawText(px, 3, text, fmt.Sprintf("Lvl %d  XP %d/%d", p.Level, p.XP, p.NextXP))
	r.drawText(px, 4, text, fmt.Sprintf("AT %d  PA %d", p.Attack, p.Parry))
	r.drawText(px, 5, text, fmt.Sprintf("Potions: %d", p.Potions))
	r.drawText(px, 6, text, fmt.Sprintf("%s / %s", p.Weapon, p.Armor))
	r.drawText(px, 7, log, strings.Repeat("─", panelWidth-2))

	for i, msg := range f.Log {
		if i >= LogLines {
			break
		}
		r.drawText(px, 8+i, log, "• "+msg)
	}
}

// drawHelp draws the key legend below the map.
func (r *Renderer) drawHelp(f Frame) {
	help := "[Arrows/WASD] Move  [.] Wait  [R] Rest  [P] Potion  [Q] Quit"
	r.drawText(0, f.Dungeon.Height, r.colorStyle(logColor, true), help)
}

// drawGameOver drops the banner over the middle of the map. The last
// frame stays up behind it so the player can survey the scene of the
// defeat.
func (r *Renderer) drawGameOver(f Frame) {
	style := r.colorStyle(overColor, true).Bold(true)
	lines := []string{
		"  YOU HAVE FALLEN  ",
		"  [N] New saga  [Q] Quit  ",
	}
	cy := f.Dungeon.Height / 2
	for i, line := range lines {
		cx := (f.Dungeon.Width - len([]rune(line))) / 2
		r.drawText(cx, cy+i, style, line)
	}
}

// drawText writes a string starting at the given cell.
func (r *Renderer) drawText(x, y int, style tcell.Style, msg string) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// tileStyle returns the style for a tile, bright or fogged.
func (r *Renderer) tileStyle(tile world.Tile, visible bool) tcell.Style {
	var hex string
	switch tile {
	case world.TileWall:
		hex = wallColor
	case world.TileStairs:
		hex = stairsColor
	default:
		hex = floorColor
	}
	return r.colorStyle(hex, visible)
}

// colorStyle resolves a hex color into a cached style; visible picks
// the bright variant, otherwise the fog-dimmed one.
func (r *Renderer) colorStyle(hex string, visible bool) tcell.Style {
	cache := r.bright
	if !visible {
		cache = r.dimmed
	}
	if style, ok := cache[hex]; ok {
		return style
	}

	var color tcell.Color
	var err error
	if visible {
		color, err = gamedata.ParseHexColor(hex)
	} else {
		color, err = gamedata.DimHexColor(hex)
	}
	if err != nil {
		color = tcell.ColorWhite
	}

	style := tcell.StyleDefault.Foreground(color)
	cache[hex] = style
	return style
}
