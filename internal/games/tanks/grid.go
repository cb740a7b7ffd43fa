package tanks

import (
	"github.com/vovakirdan/tancheke/internal/config"
	"github.com/vovakirdan/tancheke/internal/core"
)

// layout is the fixed 20×15 campaign map, top row first. '#' is a wall.
var layout = [...]string{
	"####################",
	"#..................#",
	"#.##.###.##.###.##.#",
	"#.##............##.#",
	"#..................#",
	"#.##.#.######.#.##.#",
	"#....#........#....#",
	"####.###....###.####",
	"#........##........#",
	"#.##.#.######.#.##.#",
	"#..................#",
	"#.##.###.##.###.##.#",
	"#.##.###.##.###.##.#",
	"#..................#",
	"####################",
}

// Map dimensions in tiles.
const (
	MapCols = 20
	MapRows = 15
)

// Field is the static and pushable geometry a mover is checked against:
// world bounds, walls and barrels.
type Field struct {
	world     config.WorldConfig
	moveProbe float64
	pushProbe float64
	Walls     []core.Box
	Barrels   []*Barrel
}

// NewField creates an empty field for the given tuning.
func NewField(cfg config.TanksConfig) *Field {
	return &Field{
		world:     cfg.World,
		moveProbe: cfg.Player.MoveProbe,
		pushProbe: cfg.Barrel.PushProbe,
	}
}

// InBounds reports whether (x, y) is a legal center for a mover.
func (f *Field) InBounds(x, y float64) bool {
	m := f.world.Margin
	return x >= m && x <= f.world.Width-m && y >= m && y <= f.world.Height-m
}

// WallAt reports whether box overlaps any wall.
func (f *Field) WallAt(box core.Box) bool {
	return core.AnyOverlap(box, f.Walls)
}

// BarrelAt returns the first barrel overlapping box, skipping except.
func (f *Field) BarrelAt(box core.Box, except *Barrel) *Barrel {
	for _, b := range f.Barrels {
		if b == except {
			continue
		}
		if box.Overlaps(b.Bounds()) {
			return b
		}
	}
	return nil
}

// BarrelClaiming is like BarrelAt but also matches a sliding barrel by the
// cell it is heading to, so two movers never commit to the same cell.
func (f *Field) BarrelClaiming(box core.Box, except *Barrel) *Barrel {
	for _, b := range f.Barrels {
		if b == except {
			continue
		}
		if box.Overlaps(b.Bounds()) || box.Overlaps(core.SquareBox(b.TargetX, b.TargetY, b.Size)) {
			return b
		}
	}
	return nil
}

// RemoveBarrel drops b from the field.
func (f *Field) RemoveBarrel(b *Barrel) {
	for i, other := range f.Barrels {
		if other == b {
			f.Barrels = append(f.Barrels[:i], f.Barrels[i+1:]...)
			return
		}
	}
}

// CellCenter returns the world center of a tile. Row 0 is the bottom row.
func CellCenter(world config.WorldConfig, col, row int) (float64, float64) {
	half := world.TileSize / 2
	return float64(col)*world.TileSize + half, float64(row)*world.TileSize + half
}

// campaignWalls builds the wall boxes of the fixed map. Layout rows are
// listed top first, so row r sits at y = height - (r*tile + tile/2).
func campaignWalls(world config.WorldConfig) []core.Box {
	var walls []core.Box
	half := world.TileSize / 2
	for r, line := range layout {
		for c, ch := range line {
			if ch != '#' {
				continue
			}
			x := float64(c)*world.TileSize + half
			y := world.Height - (float64(r)*world.TileSize + half)
			walls = append(walls, core.SquareBox(x, y, world.WallSize))
		}
	}
	return walls
}
