package tanks

import (
	"math"

	"github.com/vovakirdan/tancheke/internal/core"
)

// Bullet is a shell in flight.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Enemy  bool // Fired by an enemy or the boss
	Age    int  // Ticks since it was fired
}

// Bounds returns the bullet hitbox.
func (b *Bullet) Bounds() core.Box {
	return core.SquareBox(b.X, b.Y, b.Size)
}

func (b *Bullet) advance() {
	b.X += b.VX
	b.Y += b.VY
	b.Age++
}

// firingAngle maps a tank facing onto the direction its shell travels.
// Facings 0 and 180 are swapped; every other facing fires straight ahead.
func firingAngle(facing float64) float64 {
	switch facing {
	case 0:
		return 180
	case 180:
		return 0
	}
	return facing
}

// newShell spawns a bullet offset units from (x, y) along angle degrees.
func newShell(x, y, angle, offset, speed, size float64, enemy bool) Bullet {
	rad := angle * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Bullet{
		X:     x + cos*offset,
		Y:     y + sin*offset,
		VX:    cos * speed,
		VY:    sin * speed,
		Size:  size,
		Enemy: enemy,
	}
}

// fire spawns a regular shell from t along its corrected facing.
func (g *Game) fire(t *Tank) {
	bc := g.cfg.Bullet
	angle := firingAngle(t.Angle)
	g.bullets = append(g.bullets, newShell(t.X, t.Y, angle, bc.MuzzleOffset, bc.Speed, bc.Size, t.Kind != KindPlayer))
	g.emit(core.EventShotFired)
}

// fireFan spawns the boss's spread. The fan follows the aim angle directly.
func (g *Game) fireFan(boss *Tank) {
	bc, bs := g.cfg.Bullet, g.cfg.Boss
	speed := bc.Speed * bs.FanSpeedFactor
	for _, off := range bs.FanOffsets {
		g.bullets = append(g.bullets, newShell(boss.X, boss.Y, boss.Angle+off, bs.MuzzleOffset, speed, bc.BossSize, true))
	}
}

// expired reports whether a bullet left the world or outlived its range.
func (g *Game) expired(b *Bullet) bool {
	w := g.cfg.World
	if b.X < 0 || b.X > w.Width || b.Y < 0 || b.Y > w.Height {
		return true
	}
	return b.Age > g.cfg.Bullet.MaxTicks
}

// resolveBullets checks every bullet once against walls, barrels, the player
// and the enemies, in that order. The first match absorbs the shell.
// Resolution stops as soon as the run reaches a terminal phase.
func (g *Game) resolveBullets() {
	kept := g.bullets[:0]
	for i := range g.bullets {
		b := g.bullets[i]
		if g.phase != PhasePlaying || !g.hit(&b) {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// hit applies the effect of b and reports whether it was consumed.
func (g *Game) hit(b *Bullet) bool {
	box := b.Bounds()

	if g.field.WallAt(box) {
		return true
	}

	if barrel := g.field.BarrelAt(box, nil); barrel != nil {
		if barrel.TakeDamage() {
			g.barrelDestroyed(barrel)
		}
		return true
	}

	if b.Enemy {
		if box.Overlaps(g.player.Bounds()) {
			g.playerHit()
			return true
		}
		return false
	}

	idx := core.FirstOverlap(box, g.enemies)
	if idx < 0 {
		return false
	}
	target := g.enemies[idx]
	switch target.Kind {
	case KindBoss:
		if target.TakeDamage() {
			g.explode(target.X, target.Y, core.ColorGold, 50)
			g.removeEnemy(idx)
			g.score += g.cfg.Scoring.Boss
			g.finish(PhaseBossDefeated)
		} else {
			g.explode(target.X, target.Y, core.ColorWhite, 5)
		}
	default:
		g.explode(target.X, target.Y, core.ColorYellow, 25)
		g.removeEnemy(idx)
		g.score += g.cfg.Scoring.Enemy
	}
	return true
}

func (g *Game) barrelDestroyed(b *Barrel) {
	g.explode(b.X, b.Y, core.ColorOrange, 20)
	if g.rng.Float64() < g.cfg.Barrel.BonusLifeChance {
		g.lives++
		g.floatText(b.X, b.Y, "+1 LIFE")
		g.emit(core.EventBonusLife)
	}
	g.field.RemoveBarrel(b)
	g.score += g.cfg.Scoring.Barrel
}

func (g *Game) playerHit() {
	g.lives--
	g.explode(g.player.X, g.player.Y, core.ColorRed, 30)
	g.emit(core.EventPlayerHit)
	if g.lives <= 0 {
		g.finish(PhaseDefeated)
		return
	}
	if g.level != BonusLevel {
		g.player.Place(g.cfg.Player.StartX, g.cfg.Player.StartY)
	}
}

func (g *Game) removeEnemy(i int) {
	g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
}
