package entity

// Body represents the physical body of an entity.
// All values are in pixels and pixels per tick; one tick is one time step.
type Body struct {
	Rect Rect
	V    Vec // velocity
	A    Vec // acceleration accumulated this tick
	D    Vec // displacement computed this tick, applied on Commit
}

// NewBody creates a body of size w x h centred on c
func NewBody(c Vec, w, h float64) Body {
	return Body{Rect: RectFromCenter(c, w, h)}
}

// Predicted returns the rect where the body will be after this tick's displacement
func (b *Body) Predicted() Rect {
	return b.Rect.Translate(b.D)
}

// Commit applies the pending displacement to the rect
func (b *Body) Commit() {
	b.Rect = b.Rect.Translate(b.D)
}

// ResetForces clears the acceleration accumulated during the tick
func (b *Body) ResetForces() {
	b.A = Vec{}
}

// Stop zeroes velocity, acceleration and displacement
func (b *Body) Stop() {
	b.V = Vec{}
	b.A = Vec{}
	b.D = Vec{}
}

// PlaceAt centres the body on c without touching its motion
func (b *Body) PlaceAt(c Vec) {
	b.Rect.SetCenter(c)
}
