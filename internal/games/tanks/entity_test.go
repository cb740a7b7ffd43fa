package tanks

import (
	"testing"

	"github.com/vovakirdan/tancheke/internal/config"
	"github.com/vovakirdan/tancheke/internal/core"
)

func emptyField() *Field {
	return NewField(config.DefaultTanksConfig())
}

func testTank(x, y float64) *Tank {
	return &Tank{Mover: newMover(x, y, -90, 4), Kind: KindPlayer, Size: 30}
}

func runUntilIdle(t *testing.T, movers ...*Mover) {
	t.Helper()
	for i := 0; i < 100; i++ {
		busy := false
		for _, m := range movers {
			m.Step(4)
			busy = busy || m.Moving
		}
		if !busy {
			return
		}
	}
	t.Fatal("movers never became idle")
}

func TestMoverClosesXBeforeY(t *testing.T) {
	m := newMover(100, 100, 0, 4)
	m.moveTo(140, 140)

	for m.X != 140 {
		if m.Y != 100 {
			t.Fatalf("y moved to %v before x reached its target (x=%v)", m.Y, m.X)
		}
		m.Step(4)
	}
	runUntilIdle(t, &m)
	if m.X != 140 || m.Y != 140 {
		t.Errorf("final position = (%v, %v), expected (140, 140)", m.X, m.Y)
	}
}

func TestMoverSnapsOntoTarget(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
	}{
		{"level 1 enemy", 2.4},
		{"level 2 enemy", 2.8},
		{"level 3 enemy", 3.2},
		{"player", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMover(60, 100, 0, tt.speed)
			m.moveTo(100, 100)
			runUntilIdle(t, &m)
			if m.X != 100 || m.Y != 100 {
				t.Errorf("position = (%v, %v), expected exactly (100, 100)", m.X, m.Y)
			}
		})
	}
}

func TestRequestMoveOutOfBounds(t *testing.T) {
	f := emptyField()
	tank := testTank(20, 300)

	if tank.RequestMove(-1, 0, 0, f) {
		t.Error("move past the left margin should be rejected")
	}
	if tank.Moving {
		t.Error("tank should stay idle")
	}
	if tank.Angle != 0 {
		t.Errorf("Angle = %v, facing should update even when the move fails", tank.Angle)
	}
}

func TestRequestMoveBlockedByWall(t *testing.T) {
	f := emptyField()
	f.Walls = []core.Box{core.SquareBox(140, 100, 40)}
	tank := testTank(100, 100)

	if tank.RequestMove(1, 0, 180, f) {
		t.Error("move into a wall should be rejected")
	}
	if tank.Moving || tank.X != 100 {
		t.Errorf("tank should stay idle at x=100, got moving=%v x=%v", tank.Moving, tank.X)
	}

	// The wall on the right does not block moving up.
	if !tank.RequestMove(0, 1, 90, f) {
		t.Error("move into a free cell should succeed")
	}
}

func TestRequestMoveIgnoredWhileMoving(t *testing.T) {
	f := emptyField()
	tank := testTank(100, 100)
	tank.RequestMove(1, 0, 180, f)

	if tank.RequestMove(0, 1, 90, f) {
		t.Error("second request while moving should be ignored")
	}
	if tank.TargetX != 140 || tank.TargetY != 100 {
		t.Errorf("target changed to (%v, %v)", tank.TargetX, tank.TargetY)
	}
	if tank.Angle != 90 {
		t.Errorf("Angle = %v, expected 90", tank.Angle)
	}
}

func TestRequestMovePushesBarrel(t *testing.T) {
	f := emptyField()
	b := newBarrel(140, 100, 3, 4, 38)
	f.Barrels = []*Barrel{b}
	tank := testTank(100, 100)

	if !tank.RequestMove(1, 0, 180, f) {
		t.Fatal("push into a free cell should succeed")
	}
	if !b.Moving {
		t.Fatal("barrel should be moving")
	}
	runUntilIdle(t, &tank.Mover, &b.Mover)

	if tank.X != 140 || b.X != 180 {
		t.Errorf("tank x=%v barrel x=%v, expected 140 and 180", tank.X, b.X)
	}
}

func TestBlockedPushIsAtomic(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *Field)
	}{
		{"wall behind barrel", func(f *Field) {
			f.Walls = []core.Box{core.SquareBox(180, 100, 40)}
		}},
		{"barrel behind barrel", func(f *Field) {
			f.Barrels = append(f.Barrels, newBarrel(180, 100, 3, 4, 38))
		}},
		{"edge behind barrel", func(f *Field) {
			f.Barrels[0].Place(780, 100)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := emptyField()
			b := newBarrel(140, 100, 3, 4, 38)
			f.Barrels = []*Barrel{b}
			tt.setup(f)

			tank := testTank(b.X-40, 100)
			startX := tank.X
			if tank.RequestMove(1, 0, 180, f) {
				t.Error("blocked push should fail")
			}
			if tank.Moving || b.Moving {
				t.Errorf("tank moving=%v barrel moving=%v, both should stay idle", tank.Moving, b.Moving)
			}
			if tank.X != startX || b.TargetX != b.X {
				t.Error("positions and targets should be unchanged")
			}
		})
	}
}

func TestPushFailsWhileBarrelSliding(t *testing.T) {
	f := emptyField()
	b := newBarrel(140, 100, 3, 4, 38)
	f.Barrels = []*Barrel{b}

	if !b.Push(0, 1, f) {
		t.Fatal("first push should succeed")
	}
	if b.Push(1, 0, f) {
		t.Error("push while sliding should fail")
	}
}

func TestTankFacingGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{90, '▲'},
		{270, '▼'},
		{-90, '▼'},
		{0, '◀'},
		{180, '▶'},
	}
	for _, tt := range tests {
		if got := facingGlyph(tt.angle); got != tt.want {
			t.Errorf("facingGlyph(%v) = %q, expected %q", tt.angle, got, tt.want)
		}
	}
}

func TestPushIntoClaimedCellFails(t *testing.T) {
	f := emptyField()
	a := newBarrel(100, 100, 3, 4, 38)
	b := newBarrel(180, 100, 3, 4, 38)
	f.Barrels = []*Barrel{a, b}

	if !a.Push(1, 0, f) {
		t.Fatal("first push should succeed")
	}
	if b.Push(-1, 0, f) {
		t.Error("second barrel must not slide into the cell the first one claimed")
	}
}
