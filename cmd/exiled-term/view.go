package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/exiled/internal/application/level"
	"github.com/younwookim/exiled/internal/application/system"
	"github.com/younwookim/exiled/internal/domain/entity"
)

var (
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDoor     = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleDoorOff  = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDead     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFireball = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleHook     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

// view maps the level region onto the terminal grid. The bottom row is the
// status line.
type view struct {
	screen tcell.Screen
	region entity.Rect
	cols   int
	rows   int
	cellW  float64
	cellH  float64
}

// fit rescales the view so region fills a cols x rows terminal
func (v *view) fit(region entity.Rect, cols, rows int) {
	v.region = region
	v.cols = max(cols, 1)
	v.rows = max(rows-1, 1)
	v.cellW = region.W / float64(v.cols)
	v.cellH = region.H / float64(v.rows)
}

// toWorld returns the world point under the centre of cell (x, y)
func (v *view) toWorld(x, y int) entity.Vec {
	return entity.Vec{
		X: v.region.X + (float64(x)+0.5)*v.cellW,
		Y: v.region.Y + (float64(y)+0.5)*v.cellH,
	}
}

// toCell returns the cell containing world point p
func (v *view) toCell(p entity.Vec) (int, int) {
	x := int(math.Floor((p.X - v.region.X) / v.cellW))
	y := int(math.Floor((p.Y - v.region.Y) / v.cellH))
	return x, y
}

// fill paints every cell r touches, clipped to the play area
func (v *view) fill(r entity.Rect, ch rune, style tcell.Style) {
	x0, y0 := v.toCell(entity.Vec{X: r.Left(), Y: r.Top()})
	x1, y1 := v.toCell(entity.Vec{X: r.Right(), Y: r.Bottom()})
	// A rect ending exactly on a cell edge does not touch the next cell.
	if float64(x1)*v.cellW+v.region.X == r.Right() && x1 > x0 {
		x1--
	}
	if float64(y1)*v.cellH+v.region.Y == r.Bottom() && y1 > y0 {
		y1--
	}
	for y := max(y0, 0); y <= min(y1, v.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, v.cols-1); x++ {
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (v *view) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		if x+i >= v.cols {
			return
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// draw renders the current level of m
func (v *view) draw(m *level.Manager, gameOver bool) {
	v.screen.Clear()

	lvl := m.Current()
	if lvl != nil {
		v.drawStatics(lvl)
		for _, en := range lvl.Enemies {
			v.drawEnemy(en)
		}
	}
	v.drawPlayer(m.Player())
	v.drawStatus(m, gameOver)

	v.screen.Show()
}

func (v *view) drawStatics(lvl *level.Level) {
	for _, s := range lvl.World.Statics() {
		n, isDoor := entity.DoorNumber(s.Name)
		if !isDoor {
			v.fill(s.Rect, '#', stylePlatform)
			continue
		}
		style := styleDoor
		if d, ok := lvl.Door(n); ok && d.Disabled {
			style = styleDoorOff
		}
		v.fill(s.Rect, '|', style)
		x, y := v.toCell(s.Rect.Center())
		if x >= 0 && x < v.cols && y >= 0 && y < v.rows {
			v.screen.SetContent(x, y, rune('0'+n%10), nil, style)
		}
	}
}

func (v *view) drawEnemy(en *system.Enemy) {
	if en.State() == entity.Death {
		return
	}
	v.fill(en.Rect(), 'E', styleEnemy)
	for _, f := range en.Fireballs() {
		if f.State() == entity.Flying {
			v.fill(f.Rect(), '*', styleFireball)
		}
	}
}

func (v *view) drawPlayer(p *system.Player) {
	if p.Despawned() {
		return
	}
	for _, h := range p.Hooks() {
		v.fill(h.Rect(), 'o', styleHook)
	}
	if p.Dead() {
		v.fill(p.Rect(), 'x', styleDead)
		return
	}
	v.fill(p.Rect(), '@', stylePlayer)
}

func (v *view) drawStatus(m *level.Manager, gameOver bool) {
	y := v.rows
	for x := range v.cols {
		v.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	id := ""
	if lvl := m.Current(); lvl != nil {
		id = lvl.Config.ID
	}
	status := fmt.Sprintf(" %s  %s", id, m.Player().State())
	if n, ok := m.Player().NearDoor(); ok {
		status += fmt.Sprintf("  door %d: Enter", n)
	}
	if gameOver {
		status += "  GAME OVER: r to restart"
	}
	status += "  q: quit"
	v.text(0, y, status, styleStatus)
}
