// Package fov provides line-of-sight checks and fog-of-war tracking.
package fov

import (
	"github.com/AlexanderMetz/ascii-roguelike/internal/world"
)

// LineClear traces a Bresenham line from (x0,y0) to (x1,y1) and reports
// whether sight reaches the endpoint. The origin never blocks its own
// view, and the endpoint is reached even when it is a wall, so room
// walls show up at the edge of the lit area.
func LineClear(d *world.Dungeon, x0, y0, x1, y1 int) bool {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	cx, cy := x0, y0

	for {
		if cx == x1 && cy == y1 {
			return true
		}
		if (cx != x0 || cy != y0) && d.GetTile(cx, cy).BlocksSight() {
			return false
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			cx += sx
		}
		if e2 < dx {
			err += dx
			cy += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
