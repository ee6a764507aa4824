// Package scene defines the Scene interface for game screens.
//
// A screen (the playing stage, and any menu or result screen added later)
// implements Scene to own its update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one fixed frame.
	// dt is the frame time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay.
	// ebiten.Termination ends the game normally; any other error aborts it.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen. It must not mutate game state.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including when the game
	// ends. Use it for saving recordings or releasing resources.
	OnExit()
}
