package tanks

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tancheke/internal/core"
)

const hudRows = 2

// Characters per tile in the normal and the zoomed view.
const (
	tileCols     = 2
	tileRows     = 1
	zoomTileCols = 8
	zoomTileRows = 4
)

// Minimum screen size to draw the playfield.
const (
	minScreenW = 24
	minScreenH = 8
)

var barrelGlyphs = [...]rune{'▓', '▒', '░'}

// viewport maps world units onto screen cells. Row 0 of the world is the
// top of the map; screen rows below hudRows show the playfield.
type viewport struct {
	tile       float64
	worldH     float64
	sx, sy     int // Cells per tile
	offX, offY int // First world cell shown
	w, h       int // Playfield size in cells
}

func (g *Game) viewport(dst *core.Screen) viewport {
	v := viewport{
		tile:   g.cfg.World.TileSize,
		worldH: g.cfg.World.Height,
		sx:     tileCols,
		sy:     tileRows,
		w:      dst.Width(),
		h:      dst.Height() - hudRows,
	}
	if g.zoomed {
		v.sx, v.sy = zoomTileCols, zoomTileRows
	}
	cols := int(g.cfg.World.Width/v.tile) * v.sx
	rows := int(g.cfg.World.Height/v.tile) * v.sy
	px, py := v.cell(g.player.X, g.player.Y)
	v.offX = viewOffset(px, cols, v.w)
	v.offY = viewOffset(py, rows, v.h)
	return v
}

// viewOffset centers a world smaller than the view, otherwise follows focus
// and clamps to the world edges.
func viewOffset(focus, world, view int) int {
	if world <= view {
		return -(view - world) / 2
	}
	return core.Clamp(focus-view/2, 0, world-view)
}

// cell returns the world cell (column, row from the top) holding (x, y).
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x / v.tile * float64(v.sx))), int(math.Floor((v.worldH - y) / v.tile * float64(v.sy)))
}

func (v viewport) set(dst *core.Screen, col, row int, r rune, c core.Color) {
	sx, sy := col-v.offX, row-v.offY
	if sx < 0 || sx >= v.w || sy < 0 || sy >= v.h {
		return
	}
	dst.SetColored(sx, sy+hudRows, r, c)
}

func (v viewport) point(dst *core.Screen, x, y float64, r rune, c core.Color) {
	col, row := v.cell(x, y)
	v.set(dst, col, row, r, c)
}

func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	c0 := int(math.Floor(b.Left() / v.tile * float64(v.sx)))
	c1 := int(math.Ceil(b.Right()/v.tile*float64(v.sx))) - 1
	r0 := int(math.Floor((v.worldH - b.Top()) / v.tile * float64(v.sy)))
	r1 := int(math.Ceil((v.worldH-b.Bottom())/v.tile*float64(v.sy))) - 1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			v.set(dst, col, row, r, c)
		}
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	g.renderHUD(dst)

	v := g.viewport(dst)
	for _, w := range g.field.Walls {
		v.fill(dst, w, '█', core.ColorGray)
	}
	for _, b := range g.field.Barrels {
		v.fill(dst, b.Bounds(), barrelGlyphs[b.Tier()], core.ColorBrown)
	}
	for _, e := range g.enemies {
		g.renderTank(dst, v, e)
	}
	g.renderTank(dst, v, g.player)
	for _, b := range g.bullets {
		c := core.ColorBrightWhite
		if b.Enemy {
			c = core.ColorBrightRed
		}
		v.point(dst, b.X, b.Y, '•', c)
	}
	for _, e := range g.explosions {
		r := e.Radius()
		for k := range 8 {
			a := float64(k) * math.Pi / 4
			v.point(dst, e.X+math.Cos(a)*r, e.Y+math.Sin(a)*r, '*', e.Color)
		}
	}
	for _, t := range g.texts {
		col, row := v.cell(t.X, t.Y)
		dst.DrawTextColored(col-v.offX-len(t.Text)/2, row-v.offY+hudRows, t.Text, core.ColorBrightGreen)
	}

	g.renderOverlay(dst)
}

func (g *Game) renderTank(dst *core.Screen, v viewport, t *Tank) {
	switch t.Kind {
	case KindBoss:
		v.fill(dst, t.Bounds(), '▓', core.ColorMagenta)
		rad := t.Angle * math.Pi / 180
		reach := t.Size / 2
		v.point(dst, t.X+math.Cos(rad)*reach, t.Y+math.Sin(rad)*reach, '●', core.ColorBrightYellow)
	case KindEnemy:
		v.fill(dst, t.Bounds(), '█', core.ColorRed)
		v.point(dst, t.X, t.Y, facingGlyph(t.Angle), core.ColorBrightWhite)
	default:
		v.fill(dst, t.Bounds(), '█', core.ColorGreen)
		v.point(dst, t.X, t.Y, facingGlyph(t.Angle), core.ColorBrightWhite)
	}
}

// facingGlyph returns the arrow for a tank facing: 90 up, 270 down,
// 0 left, 180 right.
func facingGlyph(angle float64) rune {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	switch {
	case a >= 45 && a < 135:
		return '▲'
	case a >= 135 && a < 225:
		return '▶'
	case a >= 225 && a < 315:
		return '▼'
	default:
		return '◀'
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	level := fmt.Sprintf("LEVEL %d/%d", g.level, g.cfg.Levels.Max)
	if g.level == BonusLevel {
		level = "BONUS"
	}
	hud := fmt.Sprintf("SCORE %d   LIVES %d   %s", g.score, g.lives, level)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	var extra string
	for _, e := range g.enemies {
		if e.Kind == KindBoss {
			extra = fmt.Sprintf("BOSS HP %d", e.HP)
		}
	}
	if g.zoomed {
		extra += "  [ZOOM]"
	}
	if extra != "" {
		dst.DrawTextColored(dst.Width()-len(extra)-1, 0, extra, core.ColorBrightYellow)
	}
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch {
	case g.phase.Terminal():
		dst.DrawTextCentered(mid-1, g.phase.Outcome(), core.ColorGold)
		dst.DrawTextCentered(mid, fmt.Sprintf("SCORE: %d", g.score), core.ColorBrightWhite)
		dst.DrawTextCentered(mid+2, "ENTER: RESTART | M: MENU | R: RESET RECORD", core.ColorGray)
	case g.paused:
		dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
	}
}
