package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEnemy(t *testing.T) {
	e := NewEnemy(3, Vec{300, 205}, 38, 38, 90)

	assert.Equal(t, "Enemy3", e.Name())
	assert.True(t, e.IsAlive())
	assert.Equal(t, 90, e.FireTimer)
	assert.Equal(t, Vec{300, 205}, e.Body.Rect.Center())
}

func TestEnemy_Death(t *testing.T) {
	e := NewEnemy(1, Vec{0, 0}, 10, 10, 1)

	assert.True(t, e.SM.Transition(Death))
	assert.False(t, e.IsAlive())
	assert.False(t, e.SM.Transition(Standing))
}

func TestEnemy_NextFireballName(t *testing.T) {
	e := NewEnemy(2, Vec{0, 0}, 10, 10, 1)

	assert.Equal(t, "Fireball2-1", e.NextFireballName())
	assert.Equal(t, "Fireball2-2", e.NextFireballName())
}

func TestEnemy_AggroArea(t *testing.T) {
	e := NewEnemy(1, Vec{100, 100}, 20, 20, 1)
	area := e.AggroArea(300)

	assert.Equal(t, Vec{100, 100}, area.Center())
	assert.Equal(t, 320.0, area.W)
}
