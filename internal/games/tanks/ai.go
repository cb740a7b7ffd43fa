package tanks

import "math"

// move is one of the four cardinal steps with the facing it sets.
type move struct {
	dx, dy int
	angle  float64
}

// enemyMoves is the random-walk table for regular enemies.
var enemyMoves = [4]move{
	{1, 0, 0},
	{-1, 0, 180},
	{0, 1, 90},
	{0, -1, 270},
}

// think runs one tick of enemy and boss decisions.
func (g *Game) think(dt float64) {
	p := g.player
	ec := g.cfg.Enemy
	for _, e := range g.enemies {
		e.ShootTimer += dt
		if e.Kind == KindBoss {
			e.aimAt(p.X, p.Y)
			if e.ShootTimer > g.cfg.Boss.FanCooldown {
				g.fireFan(e)
				e.ShootTimer = 0
			}
			continue
		}

		if !e.Moving {
			m := enemyMoves[g.rng.Intn(len(enemyMoves))]
			e.RequestMove(m.dx, m.dy, m.angle, g.field)
		}
		if e.ShootTimer > ec.ShootCooldown && aligned(e, p, ec.AlignTolerance) {
			g.fire(e)
			e.ShootTimer = 0
		}
	}
}

// aligned reports whether a and b share a row or column within tol units.
func aligned(a, b *Tank, tol float64) bool {
	return math.Abs(a.X-b.X) < tol || math.Abs(a.Y-b.Y) < tol
}
