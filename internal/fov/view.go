package fov

import (
	"github.com/AlexanderMetz/ascii-roguelike/internal/world"
)

// DefaultRadius is the sight radius used for the player.
const DefaultRadius = 8

// View tracks what the viewer currently sees and everything seen so far
// on the current floor. Visible tiles draw bright, explored-but-unseen
// tiles draw dimmed, everything else stays dark.
type View struct {
	Radius   int
	visible  map[world.Point]struct{}
	explored map[world.Point]struct{}
}

// NewView creates an empty view with the given sight radius.
func NewView(radius int) *View {
	return &View{
		Radius:   radius,
		visible:  make(map[world.Point]struct{}),
		explored: make(map[world.Point]struct{}),
	}
}

// Update recomputes the visible set around the viewer position and folds
// it into the explored set. Tiles qualify when they lie within the
// Euclidean radius and an unblocked sight line reaches them.
func (v *View) Update(d *world.Dungeon, px, py int) {
	v.visible = make(map[world.Point]struct{})

	r := v.Radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := px+dx, py+dy
			if !d.InBounds(x, y) {
				continue
			}
			if !LineClear(d, px, py, x, y) {
				continue
			}
			p := world.Point{X: x, Y: y}
			v.visible[p] = struct{}{}
			v.explored[p] = struct{}{}
		}
	}
}

// Visible returns true if the tile is currently in sight.
func (v *View) Visible(x, y int) bool {
	_, ok := v.visible[world.Point{X: x, Y: y}]
	return ok
}

// Explored returns true if the tile has been seen at any point on this
// floor.
func (v *View) Explored(x, y int) bool {
	_, ok := v.explored[world.Point{X: x, Y: y}]
	return ok
}

// Reset forgets everything. Called when the player descends to a fresh
// floor.
func (v *View) Reset() {
	v.visible = make(map[world.Point]struct{})
	v.explored = make(map[world.Point]struct{})
}

// ExploredCount returns the number of tiles seen so far on this floor.
func (v *View) ExploredCount() int {
	return len(v.explored)
}
