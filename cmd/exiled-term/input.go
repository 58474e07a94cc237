package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/exiled/internal/application/system"
)

// holdTicks is how long a key stays held after its last press. Terminals
// only report presses and auto-repeat, never releases.
const holdTicks = 4

// termInput turns tcell events into per-tick input
type termInput struct {
	view *view

	held    [len(system.KeyOrder)]int // ticks left per system.Key
	clicks  []system.MouseClick
	buttons tcell.ButtonMask
	use     bool
	quit    bool
	restart bool
}

var runeKeys = map[rune]system.Key{
	'd': system.KeyRight,
	'a': system.KeyLeft,
	's': system.KeyDown,
	'w': system.KeyUp,
}

var arrowKeys = map[tcell.Key]system.Key{
	tcell.KeyRight: system.KeyRight,
	tcell.KeyLeft:  system.KeyLeft,
	tcell.KeyDown:  system.KeyDown,
	tcell.KeyUp:    system.KeyUp,
}

// handle records one event
func (in *termInput) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(ev)
	case *tcell.EventMouse:
		in.handleMouse(ev)
	}
}

func (in *termInput) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true
		return
	case tcell.KeyEnter:
		in.use = true
		return
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			in.quit = true
		case 'r', ' ':
			in.restart = true
		default:
			if k, ok := runeKeys[r]; ok {
				in.held[k] = holdTicks
			}
		}
		return
	}
	if k, ok := arrowKeys[ev.Key()]; ok {
		in.held[k] = holdTicks
	}
}

// handleMouse reports a click on the press edge of each button
func (in *termInput) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := in.view.toWorld(x, y)

	btns := ev.Buttons()
	pressed := btns &^ in.buttons
	in.buttons = btns

	if pressed&tcell.ButtonPrimary != 0 {
		in.clicks = append(in.clicks, system.MouseClick{Button: system.ButtonLeft, Pos: pos})
	}
	if pressed&tcell.ButtonSecondary != 0 {
		in.clicks = append(in.clicks, system.MouseClick{Button: system.ButtonRight, Pos: pos})
	}
}

// next returns the input for one tick and ages the held keys
func (in *termInput) next() system.InputState {
	var out system.InputState
	for k, left := range in.held {
		if left > 0 {
			out.Held = out.Held.With(system.Key(k))
			in.held[k]--
		}
	}
	out.Clicks = in.clicks
	out.Use = in.use

	in.clicks = nil
	in.use = false
	return out
}

// takeRestart reports and clears a pending restart request
func (in *termInput) takeRestart() bool {
	r := in.restart
	in.restart = false
	return r
}
