package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AlexanderMetz/ascii-roguelike/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 60
	DefaultHeight = 28

	// Room placement parameters
	minRoomSize     = 4  // Minimum room dimension
	maxRoomSize     = 9  // Maximum room dimension
	maxRoomAttempts = 12 // Placement attempts per floor; overlaps are discarded
)

// Dungeon represents the game map for a single depth.
type Dungeon struct {
	Width    int
	Height   int
	Tiles    [][]Tile
	Rooms    []Room
	Entrance Point // Center of the first accepted room
	Stairs   Point // Center of the last accepted room
	rng      *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls. The rng drives every
// placement decision, so the same seed reproduces the same layout.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Room, 0, maxRoomAttempts),
		rng:    rng,
	}
}

// Generate carves the dungeon layout: up to maxRoomAttempts rooms are
// placed at random, discarding any that overlap or touch an accepted
// room, and each accepted room is joined to the previous one with an
// L-corridor. The corridor chain guarantees every room reaches every
// other, so the entrance always connects to the stairs.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	for i := 0; i < maxRoomAttempts; i++ {
		w := d.randRange(minRoomSize, maxRoomSize)
		h := d.randRange(minRoomSize, maxRoomSize)
		room := Room{
			X:      d.randRange(1, d.Width-w-2),
			Y:      d.randRange(1, d.Height-h-2),
			Width:  w,
			Height: h,
		}

		if d.overlapsAny(room) {
			continue
		}

		d.carveRoom(room)
		if len(d.Rooms) > 0 {
			prev := d.Rooms[len(d.Rooms)-1]
			d.carveCorridor(prev, room)
		}
		d.Rooms = append(d.Rooms, room)
	}

	ex, ey := d.Rooms[0].Center()
	sx, sy := d.Rooms[len(d.Rooms)-1].Center()
	d.Entrance = Point{X: ex, Y: ey}
	d.Stairs = Point{X: sx, Y: sy}
	d.Tiles[sy][sx] = TileStairs

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// InBounds returns true if the position lies on the map.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.Tiles[y][x].IsPassable()
}

// GetTile returns the tile at the given position.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return TileWall
	}
	return d.Tiles[y][x]
}

// randRange returns a uniform value in [lo, hi].
func (d *Dungeon) randRange(lo, hi int) int {
	return lo + d.rng.Intn(hi-lo+1)
}

// overlapsAny reports whether the candidate overlaps or touches any
// accepted room.
func (d *Dungeon) overlapsAny(candidate Room) bool {
	for _, room := range d.Rooms {
		if candidate.Intersects(room) {
			return true
		}
	}
	return false
}

// carveRoom sets all tiles within the room to floor.
func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			if x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1 {
				d.Tiles[y][x] = TileFloor
			}
		}
	}
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (d *Dungeon) carveCorridor(room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if d.rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1 {
			d.Tiles[y][x] = TileFloor
		}
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1 {
			d.Tiles[y][x] = TileFloor
		}
	}
}
