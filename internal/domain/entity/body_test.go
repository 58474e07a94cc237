package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	r := RectFromCenter(Vec{100, 100}, 20, 40)

	assert.Equal(t, 90.0, r.Left())
	assert.Equal(t, 110.0, r.Right())
	assert.Equal(t, 80.0, r.Top())
	assert.Equal(t, 120.0, r.Bottom())
	assert.Equal(t, Vec{100, 100}, r.Center())
}

func TestRect_Setters(t *testing.T) {
	tests := []struct {
		name string
		set  func(r *Rect)
		want Rect
	}{
		{"left", func(r *Rect) { r.SetLeft(5) }, Rect{5, 0, 10, 20}},
		{"right", func(r *Rect) { r.SetRight(50) }, Rect{40, 0, 10, 20}},
		{"top", func(r *Rect) { r.SetTop(7) }, Rect{0, 7, 10, 20}},
		{"bottom", func(r *Rect) { r.SetBottom(100) }, Rect{0, 80, 10, 20}},
		{"center", func(r *Rect) { r.SetCenter(Vec{0, 0}) }, Rect{-5, -10, 10, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rect{0, 0, 10, 20}
			tt.set(&r)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestRect_Overlaps(t *testing.T) {
	base := Rect{0, 0, 10, 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{2, 2, 2, 2}, true},
		{"partial", Rect{5, 5, 10, 10}, true},
		{"touching right edge", Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 10, 10, 10}, false},
		{"apart", Rect{20, 20, 5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestRect_InflateKeepsCenter(t *testing.T) {
	r := RectFromCenter(Vec{300, 205}, 38, 38)
	grown := r.Inflate(300, 300)

	assert.Equal(t, r.Center(), grown.Center())
	assert.Equal(t, 338.0, grown.W)
	assert.Equal(t, 338.0, grown.H)
	assert.True(t, grown.ContainsPoint(Vec{460, 205}))
	assert.False(t, grown.ContainsPoint(Vec{470, 205}))
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "None", SideNone.String())
	assert.Equal(t, "Bottom", SideBottom.String())
	assert.Equal(t, "Top|Left", (SideTop | SideLeft).String())
	assert.True(t, (SideTop | SideLeft).Has(SideLeft))
	assert.False(t, SideTop.Has(SideNone))
	assert.False(t, SideNone.Any())
}

func TestFloorDiv3(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-9, -3},
		{-10, -4},
		{10, 3},
		{-0.5, -1},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorDiv3(tt.in), "floor(%v/3)", tt.in)
	}
}

func TestBody_PredictAndCommit(t *testing.T) {
	b := NewBody(Vec{100, 100}, 10, 10)
	b.D = Vec{3, -2}

	predicted := b.Predicted()
	assert.Equal(t, Vec{103, 98}, predicted.Center())
	assert.Equal(t, Vec{100, 100}, b.Rect.Center(), "predict must not move the body")

	b.Commit()
	assert.Equal(t, predicted, b.Rect)
}

func TestBody_StopAndReset(t *testing.T) {
	b := NewBody(Vec{0, 0}, 4, 4)
	b.V = Vec{1, 2}
	b.A = Vec{3, 4}
	b.D = Vec{5, 6}

	b.ResetForces()
	assert.True(t, b.A.IsZero())
	assert.Equal(t, Vec{1, 2}, b.V)

	b.Stop()
	assert.True(t, b.V.IsZero())
	assert.True(t, b.D.IsZero())

	b.PlaceAt(Vec{50, 60})
	assert.Equal(t, Vec{50, 60}, b.Rect.Center())
}
