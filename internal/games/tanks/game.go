// Package tanks implements the tile-grid tank battle: grid-locked movers,
// pushable barrels, shells, enemy and boss AI, and the level/run orchestrator.
// It is pure and deterministic for a given seed; the platform owns timing,
// input mapping, audio and persistence.
package tanks

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tancheke/internal/config"
	"github.com/vovakirdan/tancheke/internal/core"
)

// BonusLevel is the level number of the boss level.
const BonusLevel = 999

// Phase is the run state.
type Phase string

const (
	PhasePlaying      Phase = "playing"
	PhaseDefeated     Phase = "defeated"
	PhaseVictory      Phase = "victory"
	PhaseBossDefeated Phase = "boss_defeated"
)

// Outcome returns the text shown for a terminal phase.
func (p Phase) Outcome() string {
	switch p {
	case PhaseDefeated:
		return "DEFEAT"
	case PhaseVictory:
		return "VICTORY!"
	case PhaseBossDefeated:
		return "BOSS DEFEATED!"
	default:
		return ""
	}
}

// Terminal reports whether the run has ended.
func (p Phase) Terminal() bool {
	return p != PhasePlaying
}

// HighScoreStore persists the best score across runs.
type HighScoreStore interface {
	Load() int
	Save(score int) error
}

type nopScores struct{}

func (nopScores) Load() int      { return 0 }
func (nopScores) Save(int) error { return nil }

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the tuning used from the next Reset on.
func WithConfig(cfg config.TanksConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithHighScores sets the store terminal scores are saved to.
func WithHighScores(s HighScoreStore) Option {
	return func(g *Game) { g.scores = s }
}

// WithLogger sets the logger for level and run events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game is the tank battle orchestrator. It owns every entity of the current
// level and drives the per-tick update order.
type Game struct {
	cfg     config.TanksConfig
	pending *config.TanksConfig // Staged by StageConfig, applied at the next setup
	runtime core.RuntimeConfig
	rng     *rand.Rand
	scores  HighScoreStore
	logger  *log.Logger

	phase Phase
	tick  uint64
	level int
	lives int
	score int

	field      *Field
	player     *Tank
	enemies    []*Tank // Regular enemies and the boss
	bullets    []Bullet
	explosions []Explosion
	texts      []FloatingText

	zoomed bool
	paused bool
	events []core.Event
}

// New creates a game with default tuning. Call Reset before stepping.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultTanksConfig(),
		scores: nopScores{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tancheke"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tancheke"
}

// Reset starts a fresh run at level 1 with full lives and zero score.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.applyPending()
	g.phase = PhasePlaying
	g.tick = 0
	g.level = 1
	g.lives = g.cfg.Player.Lives
	g.score = 0
	g.paused = false
	g.zoomed = false
	g.events = nil
	g.setup()
	g.logger.Info("run started", "seed", rc.Seed, "lives", g.lives)
}

// StageConfig queues new tuning. It takes effect at the next level setup so
// a level never changes rules halfway through.
func (g *Game) StageConfig(cfg config.TanksConfig) {
	g.pending = &cfg
}

func (g *Game) applyPending() {
	if g.pending == nil {
		return
	}
	g.cfg = *g.pending
	g.pending = nil
	g.logger.Info("tuning reloaded")
}

func (g *Game) clearLevel() {
	g.applyPending()
	g.field = NewField(g.cfg)
	g.enemies = nil
	g.bullets = nil
	g.explosions = nil
	g.texts = nil
	pc := g.cfg.Player
	g.player = &Tank{
		Mover: newMover(pc.StartX, pc.StartY, pc.StartAngle, pc.Speed),
		Kind:  KindPlayer,
		Size:  pc.Hitbox,
	}
}

// setup builds the current campaign level: walls from the fixed map, then
// barrels on free cells, then enemies on the spawn points.
func (g *Game) setup() {
	g.clearLevel()
	g.field.Walls = campaignWalls(g.cfg.World)

	bc := g.cfg.Barrel
	for range g.cfg.BarrelCount(g.level) {
		x, y, ok := g.freeCell()
		if !ok {
			g.logger.Warn("no free cell for barrel", "level", g.level)
			break
		}
		g.field.Barrels = append(g.field.Barrels, newBarrel(x, y, bc.HP, bc.Speed, bc.Hitbox))
	}

	ec := g.cfg.Enemy
	speed := g.cfg.EnemySpeed(g.level)
	for i := range g.cfg.EnemyCount(g.level) {
		sp := ec.SpawnPoints[i%len(ec.SpawnPoints)]
		g.enemies = append(g.enemies, &Tank{
			Mover: newMover(sp.X, sp.Y, ec.StartAngle, speed),
			Kind:  KindEnemy,
			Size:  ec.Hitbox,
		})
	}
	g.logger.Debug("level setup", "level", g.level, "barrels", len(g.field.Barrels), "enemies", len(g.enemies))
}

// maxPlacementTries bounds the rerolls for one barrel.
const maxPlacementTries = 1000

// freeCell rolls interior cells until one is clear of walls, the player,
// other barrels and enemy spawn points.
func (g *Game) freeCell() (float64, float64, bool) {
	w := g.cfg.World
	cols := int(w.Width / w.TileSize)
	rows := int(w.Height / w.TileSize)
	size := g.cfg.Barrel.PlacementProbe
	for range maxPlacementTries {
		col := 1 + g.rng.Intn(cols-2)
		row := 1 + g.rng.Intn(rows-2)
		x, y := CellCenter(w, col, row)
		probe := core.SquareBox(x, y, size)
		if g.field.WallAt(probe) || probe.Overlaps(g.player.Bounds()) || g.field.BarrelAt(probe, nil) != nil {
			continue
		}
		if g.onSpawnPoint(probe) {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

func (g *Game) onSpawnPoint(probe core.Box) bool {
	for _, sp := range g.cfg.Enemy.SpawnPoints {
		if probe.Overlaps(core.SquareBox(sp.X, sp.Y, g.cfg.Enemy.Hitbox)) {
			return true
		}
	}
	return false
}

// setupBonus switches to the boss level: no walls, a single boss and barrels
// scattered over the middle rows.
func (g *Game) setupBonus() {
	g.level = BonusLevel
	g.clearLevel()

	bs := g.cfg.Boss
	g.enemies = append(g.enemies, &Tank{
		Mover: newMover(bs.X, bs.Y, 0, 0),
		Kind:  KindBoss,
		HP:    bs.HP,
		Size:  bs.Hitbox,
	})

	w, bc := g.cfg.World, g.cfg.Barrel
	cols := int(w.Width / w.TileSize)
	rows := int(w.Height / w.TileSize)
	for col := 1; col < cols-1; col++ {
		for row := 3; row < rows-3; row++ {
			if g.rng.Float64() < bc.BonusDensity {
				x, y := CellCenter(w, col, row)
				g.field.Barrels = append(g.field.Barrels, newBarrel(x, y, bc.HP, bc.Speed, bc.Hitbox))
			}
		}
	}
	g.emit(core.EventBonusActivated)
	g.logger.Info("bonus level activated", "barrels", len(g.field.Barrels))
}

// resetLevel re-runs setup for the level being played.
func (g *Game) resetLevel() {
	if g.level == BonusLevel {
		g.setupBonus()
		return
	}
	g.setup()
}

// Step advances the game by one tick.
// Order: input, AI decisions, motion, bullet resolution, effects, level check.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.phase.Terminal() {
		if input.Has(core.ActionConfirm) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	g.handleInput(input)

	g.think(g.runtime.TickSeconds())

	tol := g.cfg.World.SnapTolerance
	g.player.Step(tol)
	for _, e := range g.enemies {
		e.Step(tol)
	}
	for _, b := range g.field.Barrels {
		b.Step(tol)
	}

	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		b.advance()
		if !g.expired(&b) {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets
	g.resolveBullets()

	g.updateEffects()
	g.checkLevel()
	g.checkInvariants()

	return g.result()
}

func (g *Game) handleInput(input core.InputFrame) {
	if input.Has(core.ActionZoom) {
		g.zoomed = !g.zoomed
	}
	if input.Has(core.ActionRestart) {
		g.resetLevel()
		return
	}
	if input.Has(core.ActionBonus) {
		g.setupBonus()
		return
	}

	p, f := g.player, g.field
	switch {
	case input.Has(core.ActionUp):
		p.RequestMove(0, 1, 90, f)
	case input.Has(core.ActionDown):
		p.RequestMove(0, -1, 270, f)
	case input.Has(core.ActionLeft):
		p.RequestMove(-1, 0, 0, f)
	case input.Has(core.ActionRight):
		p.RequestMove(1, 0, 180, f)
	}
	if input.Has(core.ActionFire) {
		g.fire(p)
	}
}

// checkLevel advances the campaign once every enemy is gone.
// The bonus level only ends through the boss.
func (g *Game) checkLevel() {
	if g.phase.Terminal() || len(g.enemies) > 0 || g.level == BonusLevel {
		return
	}
	g.emit(core.EventLevelCleared)
	if g.level < g.cfg.Levels.Max {
		g.level++
		g.logger.Info("level cleared", "next", g.level, "score", g.score)
		g.setup()
		return
	}
	g.finish(PhaseVictory)
}

// finish moves the run into a terminal phase and saves the score.
func (g *Game) finish(p Phase) {
	if g.phase.Terminal() {
		panic(fmt.Sprintf("tanks: invariant violated: terminal transition to %s while already %s", p, g.phase))
	}
	g.phase = p
	g.emit(core.EventRunEnded)
	if err := g.scores.Save(g.score); err != nil {
		g.logger.Warn("could not save high score", "error", err)
	}
	g.logger.Info("run ended", "outcome", p.Outcome(), "score", g.score, "level", g.level, "tick", g.tick)
}

// checkInvariants panics on states no tick may produce.
func (g *Game) checkInvariants() {
	f := g.field
	if !f.InBounds(g.player.X, g.player.Y) {
		panic(fmt.Sprintf("tanks: invariant violated: player at (%v, %v)", g.player.X, g.player.Y))
	}
	for _, e := range g.enemies {
		if !f.InBounds(e.X, e.Y) {
			panic(fmt.Sprintf("tanks: invariant violated: %s at (%v, %v)", e.Kind, e.X, e.Y))
		}
		if e.Kind == KindBoss && e.HP < 0 {
			panic(fmt.Sprintf("tanks: invariant violated: boss hp %d", e.HP))
		}
	}
	for _, b := range f.Barrels {
		if !f.InBounds(b.X, b.Y) || b.HP <= 0 {
			panic(fmt.Sprintf("tanks: invariant violated: barrel at (%v, %v) hp %d", b.X, b.Y, b.HP))
		}
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.phase.Terminal(),
		Paused:   g.paused,
		Outcome:  g.phase.Outcome(),
	}
}

// Phase returns the run state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Zoomed reports whether the zoomed view is active.
func (g *Game) Zoomed() bool {
	return g.zoomed
}
