// Package scene defines the Scene interface for game screens.
//
// The game loop delegates Update and Draw calls to the current scene.
// The playing scene is the only screen today; a title or level-select
// screen would be another Scene returned from Update.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen
type Scene interface {
	// Update advances the scene by one tick of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game (ebiten.Termination for a clean exit).
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, and once more when the game exits.
	OnExit()
}
