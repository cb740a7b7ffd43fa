package tanks

import (
	"math"

	"github.com/vovakirdan/tancheke/internal/core"
)

// Kind tags every entity with its variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBoss
	KindBarrel
)

// String returns the kind name used in logs and snapshots.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindBarrel:
		return "barrel"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Mover is the grid-locked motion shared by tanks and barrels. A mover is
// either idle on a tile or moving toward its target tile.
type Mover struct {
	X, Y             float64
	TargetX, TargetY float64
	Angle            float64 // Facing in degrees
	Speed            float64 // Units per tick
	Moving           bool
}

func newMover(x, y, angle, speed float64) Mover {
	return Mover{X: x, Y: y, TargetX: x, TargetY: y, Angle: angle, Speed: speed}
}

// Step advances the mover one tick. The x distance is closed before the y
// distance, one axis per tick. Within tolerance on both axes the mover snaps
// onto the target and becomes idle.
func (m *Mover) Step(tolerance float64) {
	if !m.Moving {
		return
	}
	switch {
	case m.X < m.TargetX:
		m.X += math.Min(m.Speed, m.TargetX-m.X)
	case m.X > m.TargetX:
		m.X -= math.Min(m.Speed, m.X-m.TargetX)
	case m.Y < m.TargetY:
		m.Y += math.Min(m.Speed, m.TargetY-m.Y)
	case m.Y > m.TargetY:
		m.Y -= math.Min(m.Speed, m.Y-m.TargetY)
	}
	if math.Abs(m.X-m.TargetX) < tolerance && math.Abs(m.Y-m.TargetY) < tolerance {
		m.X, m.Y = m.TargetX, m.TargetY
		m.Moving = false
	}
}

// Place teleports the mover onto (x, y) and leaves it idle.
func (m *Mover) Place(x, y float64) {
	m.X, m.Y = x, y
	m.TargetX, m.TargetY = x, y
	m.Moving = false
}

func (m *Mover) moveTo(x, y float64) {
	m.TargetX, m.TargetY = x, y
	m.Moving = true
}

// Tank is a player, enemy or boss unit.
type Tank struct {
	Mover
	Kind       Kind
	HP         int     // Boss only; regular tanks die from a single hit
	Size       float64 // Hitbox edge
	ShootTimer float64 // Seconds since the last shot
}

// Bounds returns the tank hitbox.
func (t *Tank) Bounds() core.Box {
	return core.SquareBox(t.X, t.Y, t.Size)
}

// RequestMove turns the tank to angle and, if it is idle, tries to start a
// one-tile move by (dx, dy). A barrel in the destination is pushed first and
// the tank only moves if the push succeeds. Blocked or out-of-bounds moves
// leave the tank idle and return false.
func (t *Tank) RequestMove(dx, dy int, angle float64, f *Field) bool {
	t.Angle = angle
	if t.Moving {
		return false
	}
	nx := t.X + float64(dx)*f.world.TileSize
	ny := t.Y + float64(dy)*f.world.TileSize
	if !f.InBounds(nx, ny) {
		return false
	}

	probe := core.SquareBox(nx, ny, f.moveProbe)
	if b := f.BarrelClaiming(probe, nil); b != nil {
		if !b.Push(dx, dy, f) {
			return false
		}
		t.moveTo(nx, ny)
		return true
	}
	if f.WallAt(probe) {
		return false
	}
	t.moveTo(nx, ny)
	return true
}

// TakeDamage removes one hit point and reports whether the tank is destroyed.
func (t *Tank) TakeDamage() bool {
	t.HP--
	return t.HP <= 0
}

// aimAt points the tank at (x, y) in math degrees (0 = +x, counterclockwise).
func (t *Tank) aimAt(x, y float64) {
	t.Angle = math.Atan2(y-t.Y, x-t.X) * 180 / math.Pi
}
