package tanks

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tancheke/internal/config"
	"github.com/vovakirdan/tancheke/internal/core"
)

func noBonusLife() config.TanksConfig {
	cfg := config.DefaultTanksConfig()
	cfg.Barrel.BonusLifeChance = 0
	return cfg
}

func countWalls() int {
	n := 0
	for _, line := range layout {
		n += strings.Count(line, "#")
	}
	return n
}

func onTile(v float64) bool {
	return math.Mod(v-20, 40) == 0
}

func TestResetStartsLevelOne(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	if snap.Level != 1 || snap.Lives != 3 || snap.Score != 0 || snap.Phase != PhasePlaying {
		t.Errorf("snapshot = level %d lives %d score %d phase %s", snap.Level, snap.Lives, snap.Score, snap.Phase)
	}
	if snap.Player.X != 420 || snap.Player.Y != 60 || snap.Player.Angle != -90 {
		t.Errorf("player = %+v, expected (420, 60) facing -90", snap.Player)
	}
	if len(g.field.Walls) != countWalls() {
		t.Errorf("walls = %d, expected %d", len(g.field.Walls), countWalls())
	}
}

func TestLevelOneSetup(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := New()
		g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})

		if len(g.enemies) != 3 {
			t.Fatalf("seed %d: enemies = %d, expected 3", seed, len(g.enemies))
		}
		if len(g.field.Barrels) != 12 {
			t.Fatalf("seed %d: barrels = %d, expected 12", seed, len(g.field.Barrels))
		}

		spawns := g.cfg.Enemy.SpawnPoints
		for i, e := range g.enemies {
			if e.X != spawns[i].X || e.Y != spawns[i].Y || e.Kind != KindEnemy {
				t.Errorf("seed %d: enemy %d at (%v, %v), expected %+v", seed, i, e.X, e.Y, spawns[i])
			}
			if math.Abs(e.Speed-2.4) > 1e-9 || e.Angle != 270 {
				t.Errorf("seed %d: enemy %d speed=%v angle=%v", seed, i, e.Speed, e.Angle)
			}
			if g.field.WallAt(e.Bounds()) {
				t.Errorf("seed %d: enemy %d spawned inside a wall", seed, i)
			}
		}

		for i, b := range g.field.Barrels {
			if !onTile(b.X) || !onTile(b.Y) {
				t.Errorf("seed %d: barrel %d off grid at (%v, %v)", seed, i, b.X, b.Y)
			}
			probe := core.SquareBox(b.X, b.Y, g.cfg.Barrel.PlacementProbe)
			if g.field.WallAt(probe) || probe.Overlaps(g.player.Bounds()) {
				t.Errorf("seed %d: barrel %d overlaps a wall or the player", seed, i)
			}
			if other := g.field.BarrelAt(probe, b); other != nil {
				t.Errorf("seed %d: barrel %d overlaps another barrel", seed, i)
			}
		}
	}
}

func TestLevelProgressionToVictory(t *testing.T) {
	scores := &memScores{}
	g := newTestGame(t, WithHighScores(scores))

	for _, want := range []struct{ level, enemies, barrels int }{
		{2, 5, 14},
		{3, 7, 16},
	} {
		g.enemies = nil
		res := g.Step(core.NewInputFrame())
		if !res.Has(core.EventLevelCleared) {
			t.Fatalf("expected level-cleared event advancing to %d", want.level)
		}
		if g.level != want.level || len(g.enemies) != want.enemies || len(g.field.Barrels) != want.barrels {
			t.Errorf("level %d: enemies=%d barrels=%d, expected %d and %d",
				g.level, len(g.enemies), len(g.field.Barrels), want.enemies, want.barrels)
		}
	}

	g.score = 700
	g.enemies = nil
	res := g.Step(core.NewInputFrame())
	if g.phase != PhaseVictory || res.State.Outcome != "VICTORY!" || !res.State.GameOver {
		t.Errorf("phase = %s state = %+v, expected victory", g.phase, res.State)
	}
	if !res.Has(core.EventRunEnded) {
		t.Error("expected run-ended event")
	}
	if len(scores.saved) != 1 || scores.saved[0] != 700 {
		t.Errorf("saved = %v, expected [700]", scores.saved)
	}
}

func TestBonusLevel(t *testing.T) {
	g := newTestGame(t)
	g.score = 250

	res := g.Step(core.Of(core.ActionBonus))
	if !res.Has(core.EventBonusActivated) {
		t.Error("expected bonus-level-activated event")
	}
	if g.level != BonusLevel || res.State.Level != BonusLevel {
		t.Errorf("level = %d, expected %d", g.level, BonusLevel)
	}
	if g.score != 250 {
		t.Errorf("score = %d, bonus level keeps the score", g.score)
	}
	if len(g.field.Walls) != 0 {
		t.Errorf("walls = %d, bonus level has none", len(g.field.Walls))
	}
	if len(g.enemies) != 1 || g.enemies[0].Kind != KindBoss || g.enemies[0].HP != 10 {
		t.Fatalf("enemies = %+v, expected a single 10 HP boss", g.enemies)
	}
	for _, b := range g.field.Barrels {
		row := int(b.Y) / 40
		col := int(b.X) / 40
		if row < 3 || row > 11 || col < 1 || col > 18 {
			t.Errorf("bonus barrel at cell (%d, %d) outside the scatter area", col, row)
		}
	}

	// The boss turns toward the player every tick and never moves.
	g.Step(core.NewInputFrame())
	boss := g.enemies[0]
	if boss.X != 420 || boss.Y != 540 {
		t.Errorf("boss moved to (%v, %v)", boss.X, boss.Y)
	}
	want := math.Atan2(g.player.Y-boss.Y, g.player.X-boss.X) * 180 / math.Pi
	if math.Abs(boss.Angle-want) > 1e-9 {
		t.Errorf("boss angle = %v, expected %v", boss.Angle, want)
	}
}

func TestBossFiresFanOnCooldown(t *testing.T) {
	g := newTestGame(t)
	g.setupBonus()
	g.field.Barrels = nil
	g.player.Place(100, 60)

	fired := 0
	for i := 0; i < 80; i++ {
		before := len(g.bullets)
		g.Step(core.NewInputFrame())
		if len(g.bullets) > before {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("boss fired %d fans in 80 ticks, expected 1 (cooldown 1.2s at 60 tps)", fired)
	}
}

func TestBonusLevelNeverAutoAdvances(t *testing.T) {
	g := newTestGame(t)
	g.setupBonus()
	g.enemies = nil

	g.Step(core.NewInputFrame())
	if g.level != BonusLevel || g.phase != PhasePlaying {
		t.Errorf("level=%d phase=%s, the bonus level ends only through the boss", g.level, g.phase)
	}
}

func TestRestartKeepsScoreAndLives(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())
	g.enemies = g.enemies[:1]
	g.score = 300
	g.lives = 2

	g.Step(core.Of(core.ActionRestart))
	if g.level != 1 || g.score != 300 || g.lives != 2 {
		t.Errorf("level=%d score=%d lives=%d after restart", g.level, g.score, g.lives)
	}
	if len(g.enemies) != 3 {
		t.Errorf("enemies = %d, level restart respawns all 3", len(g.enemies))
	}
}

func TestConfirmStartsNewRunAfterTerminal(t *testing.T) {
	g := newTestGame(t)
	emptyArena(g)
	g.score = 900
	g.lives = 1
	g.bullets = []Bullet{shot(g.player.X, g.player.Y, true)}
	g.resolveBullets()
	if g.phase != PhaseDefeated {
		t.Fatalf("phase = %s, expected defeated", g.phase)
	}

	tick := g.tick
	g.Step(core.Of(core.ActionUp, core.ActionFire))
	if g.tick != tick || len(g.bullets) != 0 {
		t.Error("a finished run must ignore gameplay input")
	}

	g.Step(core.Of(core.ActionConfirm))
	if g.phase != PhasePlaying || g.level != 1 || g.score != 0 || g.lives != 3 {
		t.Errorf("after confirm: phase=%s level=%d score=%d lives=%d", g.phase, g.level, g.score, g.lives)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(core.Of(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(core.Of(core.ActionLeft, core.ActionFire))
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Error("state changed while paused")
	}

	g.Step(core.Of(core.ActionPause))
	if g.paused {
		t.Error("second pause should resume")
	}
}

func TestZoomToggle(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.Of(core.ActionZoom))
	if !g.Zoomed() {
		t.Error("zoom should be on")
	}
	g.Step(core.Of(core.ActionZoom))
	if g.Zoomed() {
		t.Error("zoom should be off")
	}
}

func TestZoomScalesTilesFourTimes(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	normal := g.viewport(screen)
	g.Step(core.Of(core.ActionZoom))
	zoomed := g.viewport(screen)
	if zoomed.sx != 4*normal.sx || zoomed.sy != 4*normal.sy {
		t.Errorf("zoomed cells per tile = %dx%d, expected 4x %dx%d", zoomed.sx, zoomed.sy, normal.sx, normal.sy)
	}
}

func TestStageConfigAppliesAtNextSetup(t *testing.T) {
	g := newTestGame(t)
	cfg := config.DefaultTanksConfig()
	cfg.Barrel.BaseCount = 0
	cfg.Barrel.CountPerLevel = 0
	g.StageConfig(cfg)

	g.Step(core.NewInputFrame())
	if len(g.field.Barrels) != 12 {
		t.Errorf("barrels = %d, staged tuning must not change the running level", len(g.field.Barrels))
	}

	g.Step(core.Of(core.ActionRestart))
	if len(g.field.Barrels) != 0 {
		t.Errorf("barrels = %d, expected staged tuning after setup", len(g.field.Barrels))
	}
}

func TestSecondTerminalTransitionPanics(t *testing.T) {
	g := newTestGame(t)
	g.finish(PhaseDefeated)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "invariant violated") {
			t.Errorf("panic = %v", r)
		}
	}()
	g.finish(PhaseVictory)
}

// randomInput returns a frame with a random move and an occasional shot.
func randomInput(rng *rand.Rand) core.InputFrame {
	moves := []core.Action{core.ActionNone, core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	f := core.Of(moves[rng.Intn(len(moves))])
	if rng.Intn(8) == 0 {
		f.Set(core.ActionFire)
	}
	if rng.Intn(400) == 0 {
		f.Set(core.ActionConfirm)
	}
	return f
}

func TestMoversStayOnGrid(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(7))
	minX, maxX, minY, maxY := 20.0, 780.0, 20.0, 580.0

	check := func(tick int, v EntityView) {
		if v.X < minX || v.X > maxX || v.Y < minY || v.Y > maxY {
			t.Fatalf("tick %d: %s out of bounds at (%v, %v)", tick, v.Kind, v.X, v.Y)
		}
		if !v.Moving && (!onTile(v.X) || !onTile(v.Y)) {
			t.Fatalf("tick %d: idle %s off grid at (%v, %v)", tick, v.Kind, v.X, v.Y)
		}
	}

	for i := 0; i < 3000; i++ {
		g.Step(randomInput(rng))
		snap := g.Snapshot()
		check(i, snap.Player)
		for _, e := range snap.Enemies {
			check(i, e)
		}
		for _, b := range snap.Barrels {
			check(i, b)
			if b.HP <= 0 || b.HP > 3 {
				t.Fatalf("tick %d: barrel HP %d", i, b.HP)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
	g1, g2 := New(), New()
	g1.Reset(rc)
	g2.Reset(rc)
	in1 := rand.New(rand.NewSource(99))
	in2 := rand.New(rand.NewSource(99))

	for i := 0; i < 2000; i++ {
		g1.Step(randomInput(in1))
		g2.Step(randomInput(in2))
		if i%100 == 0 {
			if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
				t.Fatalf("tick %d: snapshots differ", i)
			}
		}
	}
	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Error("final snapshots differ")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "SCORE 0") || !strings.Contains(out, "LIVES 3") || !strings.Contains(out, "LEVEL 1/3") {
		t.Errorf("HUD missing from render:\n%s", out)
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("walls should be drawn")
	}
	if !strings.ContainsRune(out, '▼') {
		t.Error("player facing -90 should be drawn pointing down")
	}

	g.Step(core.Of(core.ActionZoom))
	g.Render(scr)
	if !strings.Contains(scr.String(), "[ZOOM]") {
		t.Error("zoomed HUD should show the zoom marker")
	}

	small := core.NewScreen(20, 4)
	g.Render(small)
	if !strings.Contains(small.String(), "small") {
		t.Error("tiny screen should show the size warning")
	}
}

func TestViewOffset(t *testing.T) {
	tests := []struct {
		name                     string
		focus, world, view, want int
	}{
		{"world fits, centered", 10, 40, 80, -20},
		{"follow focus", 40, 80, 40, 20},
		{"clamp low", 5, 80, 40, 0},
		{"clamp high", 78, 80, 40, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := viewOffset(tt.focus, tt.world, tt.view); got != tt.want {
				t.Errorf("viewOffset = %d, expected %d", got, tt.want)
			}
		})
	}
}
