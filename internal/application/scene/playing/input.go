package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/exiled/internal/application/system"
	"github.com/younwookim/exiled/internal/domain/entity"
)

// Controls is everything read from the player in one Update: the tick input
// handed to the world plus scene-level requests
type Controls struct {
	Tick    system.InputState
	Pause   bool
	Restart bool
	Save    bool
	Quit    bool
}

// InputSource produces the controls for each Update
type InputSource interface {
	Poll() Controls
}

// keyMap lists the physical keys bound to each movement key
var keyMap = []struct {
	key  system.Key
	keys []ebiten.Key
}{
	{system.KeyRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{system.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{system.KeyDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{system.KeyUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
}

// EbitenInput reads the keyboard and mouse through ebiten
type EbitenInput struct{}

// Poll implements InputSource
func (EbitenInput) Poll() Controls {
	var c Controls
	for _, m := range keyMap {
		for _, k := range m.keys {
			if ebiten.IsKeyPressed(k) {
				c.Tick.Held = c.Tick.Held.With(m.key)
				break
			}
		}
	}

	mx, my := ebiten.CursorPosition()
	pos := entity.Vec{X: float64(mx), Y: float64(my)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.Tick.Clicks = append(c.Tick.Clicks, system.MouseClick{Button: system.ButtonLeft, Pos: pos})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		c.Tick.Clicks = append(c.Tick.Clicks, system.MouseClick{Button: system.ButtonRight, Pos: pos})
	}
	c.Tick.Use = inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	c.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	c.Restart = inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	c.Save = inpututil.IsKeyJustPressed(ebiten.KeyF5)
	c.Quit = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	return c
}
