package tanks

// EntityView is a read-only copy of one entity for renderers and tests.
type EntityView struct {
	Kind   Kind    `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Angle  float64 `yaml:"angle"`
	HP     int     `yaml:"hp"`
	Moving bool    `yaml:"moving"`
}

// BulletView is a read-only copy of one bullet.
type BulletView struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Enemy bool    `yaml:"enemy"`
}

// Snapshot captures the complete game state for rendering, determinism
// testing and the headless simulator.
type Snapshot struct {
	Tick    uint64       `yaml:"tick"`
	Phase   Phase        `yaml:"phase"`
	Outcome string       `yaml:"outcome,omitempty"`
	Level   int          `yaml:"level"`
	Lives   int          `yaml:"lives"`
	Score   int          `yaml:"score"`
	Zoomed  bool         `yaml:"zoomed"`
	Paused  bool         `yaml:"paused"`
	Player  EntityView   `yaml:"player"`
	Enemies []EntityView `yaml:"enemies"`
	Barrels []EntityView `yaml:"barrels"`
	Bullets []BulletView `yaml:"bullets"`
}

func tankView(t *Tank) EntityView {
	return EntityView{Kind: t.Kind, X: t.X, Y: t.Y, Angle: t.Angle, HP: t.HP, Moving: t.Moving}
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Phase:   g.phase,
		Outcome: g.phase.Outcome(),
		Level:   g.level,
		Lives:   g.lives,
		Score:   g.score,
		Zoomed:  g.zoomed,
		Paused:  g.paused,
		Player:  tankView(g.player),
		Enemies: make([]EntityView, 0, len(g.enemies)),
		Barrels: make([]EntityView, 0, len(g.field.Barrels)),
		Bullets: make([]BulletView, 0, len(g.bullets)),
	}
	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies, tankView(e))
	}
	for _, b := range g.field.Barrels {
		s.Barrels = append(s.Barrels, EntityView{Kind: KindBarrel, X: b.X, Y: b.Y, HP: b.HP, Moving: b.Moving})
	}
	for _, b := range g.bullets {
		s.Bullets = append(s.Bullets, BulletView{X: b.X, Y: b.Y, Enemy: b.Enemy})
	}
	return s
}

// Boss returns the boss view and true while a boss is alive.
func (s Snapshot) Boss() (EntityView, bool) {
	for _, e := range s.Enemies {
		if e.Kind == KindBoss {
			return e, true
		}
	}
	return EntityView{}, false
}
