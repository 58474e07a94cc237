package system

import "github.com/younwookim/exiled/internal/domain/entity"

// Key is a movement key the player can hold
type Key uint8

const (
	KeyRight Key = iota
	KeyLeft
	KeyDown
	KeyUp

	keyCount
)

// KeyOrder is the order in which held keys run their bindings
var KeyOrder = [keyCount]Key{KeyRight, KeyLeft, KeyDown, KeyUp}

// String returns the string representation of the key
func (k Key) String() string {
	switch k {
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyDown:
		return "Down"
	case KeyUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// KeySet is the set of keys held during a tick
type KeySet uint8

// NewKeySet builds a set from the given keys
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns the set with k added
func (s KeySet) With(k Key) KeySet { return s | 1<<k }

// Has returns true if k is held
func (s KeySet) Has(k Key) bool { return s&(1<<k) != 0 }

// Empty returns true if no key is held
func (s KeySet) Empty() bool { return s == 0 }

// MouseButton identifies a mouse button
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
)

// MouseClick is a button press at a screen position
type MouseClick struct {
	Button MouseButton
	Pos    entity.Vec
}

// InputState holds the input for one tick.
// Held keys are levels, clicks and Use are edges that happened this tick.
type InputState struct {
	Held   KeySet
	Clicks []MouseClick
	// Use asks to go through the door the player is standing at
	Use bool
}

// Clicked returns the first click of the given button this tick
func (in InputState) Clicked(b MouseButton) (MouseClick, bool) {
	for _, c := range in.Clicks {
		if c.Button == b {
			return c, true
		}
	}
	return MouseClick{}, false
}
