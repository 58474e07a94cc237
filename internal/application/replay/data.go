package replay

import (
	"github.com/younwookim/exiled/internal/application/system"
	"github.com/younwookim/exiled/internal/domain/entity"
)

// Version is written to every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	U  bool    `json:"u,omitempty"`  // Up
	D  bool    `json:"d,omitempty"`  // Down
	E  bool    `json:"e,omitempty"`  // Use door
	LC bool    `json:"lc,omitempty"` // LeftClick (fire hook at MX, MY)
	RC bool    `json:"rc,omitempty"` // RightClick (release hook)
	MX float64 `json:"mx,omitempty"` // MouseX
	MY float64 `json:"my,omitempty"` // MouseY
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FrameFromInput converts one tick of input into a frame record.
// Only the first click of each button is kept.
func FrameFromInput(frame int, in system.InputState) FrameInput {
	fi := FrameInput{
		F: frame,
		L: in.Held.Has(system.KeyLeft),
		R: in.Held.Has(system.KeyRight),
		U: in.Held.Has(system.KeyUp),
		D: in.Held.Has(system.KeyDown),
		E: in.Use,
	}
	if c, ok := in.Clicked(system.ButtonLeft); ok {
		fi.LC = true
		fi.MX, fi.MY = c.Pos.X, c.Pos.Y
	}
	if _, ok := in.Clicked(system.ButtonRight); ok {
		fi.RC = true
	}
	return fi
}

// Input converts the frame record back into tick input
func (fi FrameInput) Input() system.InputState {
	var in system.InputState
	keys := []struct {
		held bool
		key  system.Key
	}{
		{fi.R, system.KeyRight},
		{fi.L, system.KeyLeft},
		{fi.D, system.KeyDown},
		{fi.U, system.KeyUp},
	}
	for _, k := range keys {
		if k.held {
			in.Held = in.Held.With(k.key)
		}
	}
	if fi.LC {
		in.Clicks = append(in.Clicks, system.MouseClick{Button: system.ButtonLeft, Pos: entity.Vec{X: fi.MX, Y: fi.MY}})
	}
	if fi.RC {
		in.Clicks = append(in.Clicks, system.MouseClick{Button: system.ButtonRight})
	}
	in.Use = fi.E
	return in
}
