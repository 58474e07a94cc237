package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/exiled/internal/application/state"
	"github.com/younwookim/exiled/internal/application/system"
	"github.com/younwookim/exiled/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorRegion   = color.RGBA{40, 40, 64, 255}
	colorPlatform = color.RGBA{80, 80, 100, 255}
	colorDoor     = color.RGBA{150, 110, 60, 255}
	colorDoorOff  = color.RGBA{70, 60, 50, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorDead     = color.RGBA{120, 120, 120, 255}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorFireball = color.RGBA{255, 140, 40, 255}
	colorHook     = color.RGBA{220, 220, 240, 255}
	colorAggro    = color.RGBA{200, 100, 100, 40}
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	lvl := p.levels.Current()
	if lvl != nil {
		fillRect(screen, lvl.Region, colorRegion)
		p.drawStatics(screen)
		for _, en := range lvl.Enemies {
			p.drawEnemy(screen, en)
		}
	}
	p.drawPlayer(screen, p.levels.Player())

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawStatics(screen *ebiten.Image) {
	lvl := p.levels.Current()
	for _, s := range lvl.World.Statics() {
		c := colorPlatform
		if n, ok := entity.DoorNumber(s.Name); ok {
			c = colorDoor
			if d, ok := lvl.Door(n); ok && d.Disabled {
				c = colorDoorOff
			}
		}
		fillRect(screen, s.Rect, c)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, pl *system.Player) {
	if pl.Despawned() {
		return
	}
	c := colorPlayer
	if pl.Dead() {
		c = colorDead
	}
	fillRect(screen, pl.Rect(), c)

	from := pl.Rect().Center()
	for _, h := range pl.Hooks() {
		to := h.Rect().Center()
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 2, colorHook, false)
		fillRect(screen, h.Rect(), colorHook)
	}
}

func (p *Playing) drawEnemy(screen *ebiten.Image, en *system.Enemy) {
	if en.Despawned() {
		return
	}
	if en.TargetInRange() {
		fillRect(screen, en.AggroArea(), colorAggro)
	}
	fillRect(screen, en.Rect(), colorEnemy)
	for _, f := range en.Fireballs() {
		if f.Despawned() {
			continue
		}
		fillRect(screen, f.Rect(), colorFireball)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	pl := p.levels.Player()
	status := fmt.Sprintf("%s | %s | jumps %d", p.levelID(), pl.State(), pl.JumpsUsed())
	if n, ok := pl.NearDoor(); ok {
		status += fmt.Sprintf(" | Enter: door %d", n)
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-20)

	controls := "Arrows/WASD: Move | Up: Jump | LClick: Hook | RClick: Release | Enter: Door | ESC: Pause | Q: Quit"
	ebitenutil.DebugPrint(screen, controls)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), color.RGBA{0, 0, 0, 128}, false)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), color.RGBA{100, 0, 0, 180}, false)

	text := "GAME OVER\n\nPress Z to restart"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

func fillRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
