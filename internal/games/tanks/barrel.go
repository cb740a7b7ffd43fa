package tanks

import "github.com/vovakirdan/tancheke/internal/core"

// Barrel is a pushable, destructible obstacle.
type Barrel struct {
	Mover
	HP   int
	Size float64
}

func newBarrel(x, y float64, hp int, speed, size float64) *Barrel {
	return &Barrel{
		Mover: newMover(x, y, 0, speed),
		HP:    hp,
		Size:  size,
	}
}

// Bounds returns the barrel hitbox.
func (b *Barrel) Bounds() core.Box {
	return core.SquareBox(b.X, b.Y, b.Size)
}

// Push starts a one-tile slide by (dx, dy). It fails, leaving the barrel
// untouched, if the barrel is already sliding or the destination is out of
// bounds, walled, or taken or claimed by another barrel.
func (b *Barrel) Push(dx, dy int, f *Field) bool {
	if b.Moving {
		return false
	}
	nx := b.X + float64(dx)*f.world.TileSize
	ny := b.Y + float64(dy)*f.world.TileSize
	if !f.InBounds(nx, ny) {
		return false
	}
	probe := core.SquareBox(nx, ny, f.pushProbe)
	if f.WallAt(probe) || f.BarrelClaiming(probe, b) != nil {
		return false
	}
	b.moveTo(nx, ny)
	return true
}

// TakeDamage removes one hit point and reports whether the barrel is
// destroyed. Destruction happens exactly when HP reaches zero.
func (b *Barrel) TakeDamage() bool {
	b.HP--
	return b.HP <= 0
}

// Tier returns the damage tier shown by the renderer: 0 intact, 1 dented,
// 2 cracked.
func (b *Barrel) Tier() int {
	switch {
	case b.HP >= 3:
		return 0
	case b.HP == 2:
		return 1
	default:
		return 2
	}
}
