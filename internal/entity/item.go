// Package entity provides game entities like the slayer and monsters.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/AlexanderMetz/ascii-roguelike/internal/gamedata"
)

// Item represents something lying on the dungeon floor.
type Item struct {
	Def  *gamedata.ItemDef // Reference to the item definition
	X, Y int               // Position in the dungeon
}

// NewItem places an item from a data-driven definition.
func NewItem(def *gamedata.ItemDef, x, y int) *Item {
	return &Item{Def: def, X: x, Y: y}
}

// Position returns the item's x, y coordinates.
func (i *Item) Position() (int, int) {
	return i.X, i.Y
}

// Symbol returns the display symbol.
func (i *Item) Symbol() rune {
	return i.Def.GlyphRune()
}

// Color returns the tcell color for this item.
func (i *Item) Color() tcell.Color {
	return i.Def.TCellColor()
}
