package fov

import (
	"context"
	"math/rand"
	"testing"

	"github.com/AlexanderMetz/ascii-roguelike/internal/world"
)

// openBox builds a dungeon whose whole interior is floor.
func openBox(width, height int) *world.Dungeon {
	d := world.NewDungeon(width, height, rand.New(rand.NewSource(1)))
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			d.Tiles[y][x] = world.TileFloor
		}
	}
	return d
}

func TestLineClearOpenFloor(t *testing.T) {
	d := openBox(12, 7)

	if !LineClear(d, 2, 3, 8, 3) {
		t.Error("Straight line across open floor should be clear")
	}
	if !LineClear(d, 2, 2, 8, 5) {
		t.Error("Diagonal line across open floor should be clear")
	}
	if !LineClear(d, 3, 3, 3, 3) {
		t.Error("A tile always sees itself")
	}
}

func TestLineClearBlockedByWall(t *testing.T) {
	d := openBox(12, 7)
	d.Tiles[3][5] = world.TileWall

	if LineClear(d, 2, 3, 6, 3) {
		t.Error("Line through a wall should be blocked")
	}
	if LineClear(d, 2, 3, 8, 3) {
		t.Error("Line through a wall should stay blocked further out")
	}
	// The blocking wall itself is reachable as an endpoint
	if !LineClear(d, 2, 3, 5, 3) {
		t.Error("The first wall along a line should be visible")
	}
	// Rays that route around the pillar are unaffected
	if !LineClear(d, 2, 3, 6, 2) {
		t.Error("Line passing beside the wall should be clear")
	}
}

func TestViewRadiusBound(t *testing.T) {
	d := openBox(40, 27)
	v := NewView(DefaultRadius)

	px, py := 20, 13
	v.Update(d, px, py)

	r := DefaultRadius
	for p := range v.visible {
		dx, dy := p.X-px, p.Y-py
		if dx*dx+dy*dy > r*r {
			t.Errorf("Tile (%d,%d) visible outside radius %d", p.X, p.Y, r)
		}
	}

	if !v.Visible(px+r, py) {
		t.Errorf("Tile at exactly radius %d should be visible", r)
	}
	if v.Visible(px+r+1, py) {
		t.Errorf("Tile beyond radius %d should not be visible", r)
	}
	if !v.Visible(px, py) {
		t.Error("Viewer tile should be visible")
	}
}

func TestViewWallEdgeVisible(t *testing.T) {
	d := openBox(12, 7)
	v := NewView(DefaultRadius)

	v.Update(d, 2, 3)

	if !v.Visible(0, 3) {
		t.Error("Border wall in sight range should be visible")
	}
}

func TestViewOcclusion(t *testing.T) {
	d := openBox(12, 7)
	d.Tiles[3][5] = world.TileWall
	v := NewView(DefaultRadius)

	v.Update(d, 2, 3)

	if !v.Visible(5, 3) {
		t.Error("Blocking wall should be visible")
	}
	if v.Visible(6, 3) {
		t.Error("Tile in the wall's shadow should be hidden")
	}
	if !v.Visible(6, 2) {
		t.Error("Tile beside the shadow should be visible")
	}
}

func TestViewExploredGrowsMonotonically(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	d := world.NewDungeon(world.DefaultWidth, world.DefaultHeight, rng)
	d.Generate(context.Background())

	v := NewView(DefaultRadius)
	px, py := d.Entrance.X, d.Entrance.Y
	v.Update(d, px, py)

	deltas := []world.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	for step := 0; step < 200; step++ {
		seen := make([]world.Point, 0, len(v.explored))
		for p := range v.explored {
			seen = append(seen, p)
		}
		before := v.ExploredCount()

		delta := deltas[rng.Intn(len(deltas))]
		if d.IsPassable(px+delta.X, py+delta.Y) {
			px += delta.X
			py += delta.Y
		}
		v.Update(d, px, py)

		if v.ExploredCount() < before {
			t.Fatalf("Step %d: explored count shrank from %d to %d", step, before, v.ExploredCount())
		}
		for _, p := range seen {
			if !v.Explored(p.X, p.Y) {
				t.Fatalf("Step %d: tile (%d,%d) forgotten", step, p.X, p.Y)
			}
		}
	}
}

func TestViewVisibleSubsetOfExplored(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := world.NewDungeon(world.DefaultWidth, world.DefaultHeight, rng)
	d.Generate(context.Background())

	v := NewView(DefaultRadius)
	v.Update(d, d.Entrance.X, d.Entrance.Y)

	for p := range v.visible {
		if !v.Explored(p.X, p.Y) {
			t.Errorf("Visible tile (%d,%d) not marked explored", p.X, p.Y)
		}
	}
	if v.ExploredCount() == 0 {
		t.Error("Updating the view should explore at least the viewer tile")
	}
}

func TestViewReset(t *testing.T) {
	d := openBox(12, 7)
	v := NewView(DefaultRadius)

	v.Update(d, 5, 3)
	if v.ExploredCount() == 0 {
		t.Fatal("Expected explored tiles before reset")
	}

	v.Reset()

	if v.ExploredCount() != 0 {
		t.Errorf("Expected empty explored set after reset, got %d", v.ExploredCount())
	}
	if v.Visible(5, 3) {
		t.Error("Expected empty visible set after reset")
	}
}
