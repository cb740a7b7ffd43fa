package tanks

import "github.com/vovakirdan/tancheke/internal/core"

// Visual effects never feed back into the simulation.

const (
	explosionTicks = 24
	floatTextTicks = 85 // Fades 3 alpha steps per tick from 255
)

// Explosion is a burst drawn around a point. Particles scales its radius.
type Explosion struct {
	X, Y      float64
	Color     core.Color
	Particles int
	Age       int
}

// Radius returns the current burst radius in world units.
func (e Explosion) Radius() float64 {
	return float64(e.Particles) * float64(e.Age+1) / float64(explosionTicks)
}

// FloatingText is a short message rising from a point.
type FloatingText struct {
	X, Y float64
	Text string
	TTL  int
}

func (g *Game) explode(x, y float64, c core.Color, particles int) {
	g.explosions = append(g.explosions, Explosion{X: x, Y: y, Color: c, Particles: particles})
	g.emit(core.EventExplosion)
}

func (g *Game) floatText(x, y float64, text string) {
	g.texts = append(g.texts, FloatingText{X: x, Y: y, Text: text, TTL: floatTextTicks})
}

func (g *Game) updateEffects() {
	explosions := g.explosions[:0]
	for _, e := range g.explosions {
		e.Age++
		if e.Age < explosionTicks {
			explosions = append(explosions, e)
		}
	}
	g.explosions = explosions

	texts := g.texts[:0]
	for _, t := range g.texts {
		t.Y++
		t.TTL--
		if t.TTL > 0 {
			texts = append(texts, t)
		}
	}
	g.texts = texts
}
