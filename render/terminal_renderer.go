// Package render draws engine snapshots onto a tcell screen
package render

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/seihou/engine"
	"github.com/lixenwraith/seihou/status"
)

// Overlay text per phase
const (
	TextLoading  = "Now loading..."
	TextTitle    = "Project Seihou"
	TextStart    = "[ENTER]"
	TextHit      = "HP - 1"
	TextPaused   = "PAUSED"
	TextGameOver = "GAME OVER"
	TextWin      = "+1"
)

// statusBarHeight rows at the top are reserved for the status bar
const statusBarHeight = 1

// TerminalRenderer draws snapshots; it never touches engine state
// The playfield is scaled to fill the screen below the status bar
type TerminalRenderer struct {
	screen tcell.Screen

	width  int
	height int
	gameY  int
	cols   int
	rows   int

	// Cached metric pointers
	hp      *atomic.Int64
	bullets *atomic.Int64
	shots   *atomic.Int64
	boss    *status.AtomicFloat
	audio   *atomic.Bool
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry) *TerminalRenderer {
	if reg == nil {
		reg = status.NewRegistry()
	}
	r := &TerminalRenderer{
		screen:  screen,
		hp:      reg.Ints.Get(status.KeyPlayerHP),
		bullets: reg.Ints.Get(status.KeyBullets),
		shots:   reg.Ints.Get(status.KeyShots),
		boss:    reg.Floats.Get(status.KeyBossHealth),
		audio:   reg.Bools.Get(status.KeyAudio),
	}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the playfield layout for a new screen size
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.gameY = statusBarHeight
	r.cols = max(width, 0)
	r.rows = max(height-statusBarHeight, 0)
}

// RenderFrame draws one snapshot and shows it
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)
	r.fill(base)

	switch snap.Phase {
	case engine.PhaseLoading:
		r.drawText(0, r.gameY, TextLoading, base.Foreground(RgbLoadingText))
	case engine.PhaseInit:
		r.drawCentered(r.rows/3, TextTitle, base.Foreground(RgbTitleText))
		r.drawCentered(r.rows/3+2, TextStart, base.Foreground(RgbTitleText))
	case engine.PhasePlaying:
		r.drawGame(snap, base)
	case engine.PhaseHitReaction:
		r.drawGame(snap, base.Dim(true))
		r.drawCentered(r.rows/3, TextHit, base.Foreground(RgbHitText).Bold(true))
	case engine.PhasePaused:
		r.drawGame(snap, base.Dim(true))
		r.drawCentered(r.rows/3, TextPaused, base.Foreground(RgbTitleText).Bold(true))
	case engine.PhaseLose:
		r.drawCentered(r.rows/3, TextGameOver, base.Foreground(RgbTitleText))
	case engine.PhaseWin:
		r.drawCentered(r.rows/3, TextWin, base.Foreground(RgbTitleText))
	}

	r.drawStatusBar(snap)
	r.screen.Show()
}

// drawGame draws shots and player first so the boss and bullets stay visible on overlap
func (r *TerminalRenderer) drawGame(snap *engine.Snapshot, style tcell.Style) {
	for _, sh := range snap.Shots {
		r.drawDisc(snap, sh.X, sh.Y, sh.Radius, GlyphShot, style.Foreground(RgbShot))
	}
	r.drawDisc(snap, snap.Player.X, snap.Player.Y, snap.Player.Radius, GlyphPlayer, style.Foreground(RgbPlayer).Bold(true))
	r.drawDisc(snap, snap.Boss.X, snap.Boss.Y, snap.Boss.Radius, GlyphBoss, style.Foreground(RgbBoss).Bold(true))
	for _, b := range snap.Bullets {
		r.drawDisc(snap, b.X, b.Y, b.Radius, GlyphBullet, style.Foreground(RgbBullet))
	}
}

// CellAt maps a world position to a screen cell; ok is false outside the playfield
func (r *TerminalRenderer) CellAt(snap *engine.Snapshot, x, y float64) (cx, cy int, ok bool) {
	if r.cols == 0 || r.rows == 0 || !snap.Bounds.Valid() {
		return 0, 0, false
	}
	fx := x / snap.Bounds.Width * float64(r.cols)
	fy := y / snap.Bounds.Height * float64(r.rows)
	if fx < 0 || fy < 0 || fx >= float64(r.cols) || fy >= float64(r.rows) {
		return 0, 0, false
	}
	return int(fx), r.gameY + int(fy), true
}

// drawDisc fills every cell whose center lies inside the circle, or the center cell if none does
func (r *TerminalRenderer) drawDisc(snap *engine.Snapshot, x, y, radius float64, glyph rune, style tcell.Style) {
	if r.cols == 0 || r.rows == 0 || !snap.Bounds.Valid() {
		return
	}
	cellW := snap.Bounds.Width / float64(r.cols)
	cellH := snap.Bounds.Height / float64(r.rows)

	x0 := int(math.Floor((x - radius) / cellW))
	x1 := int(math.Floor((x + radius) / cellW))
	y0 := int(math.Floor((y - radius) / cellH))
	y1 := int(math.Floor((y + radius) / cellH))

	drawn := false
	for cy := max(y0, 0); cy <= min(y1, r.rows-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, r.cols-1); cx++ {
			px := (float64(cx) + 0.5) * cellW
			py := (float64(cy) + 0.5) * cellH
			if math.Hypot(px-x, py-y) <= radius {
				r.screen.SetContent(cx, r.gameY+cy, glyph, nil, style)
				drawn = true
			}
		}
	}
	if !drawn {
		if cx, cy, ok := r.CellAt(snap, x, y); ok {
			r.screen.SetContent(cx, cy, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(snap *engine.Snapshot) {
	style := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusText)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	x := 0
	x = r.drawText(x, 0, fmt.Sprintf(" HP %d ", r.hp.Load()), style.Foreground(RgbStatusHP).Bold(true))
	x = r.drawText(x, 0, fmt.Sprintf(" BOSS %.1f ", r.boss.Get()), style.Foreground(RgbStatusBoss))
	x = r.drawText(x, 0, fmt.Sprintf(" bullets %d shots %d ", r.bullets.Load(), r.shots.Load()), style)

	right := fmt.Sprintf(" %s ", snap.Phase)
	if !r.audio.Load() {
		right = " muted" + right
	}
	r.drawText(max(r.width-len(right), x), 0, right, style)
}

func (r *TerminalRenderer) drawCentered(row int, text string, style tcell.Style) {
	r.drawText((r.width-len(text))/2, r.gameY+row, text, style)
}

// drawText writes ASCII text from (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= 0 && x < r.width && y >= 0 && y < r.height {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := r.gameY; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
