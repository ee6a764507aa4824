package state

import "github.com/younwookim/platformer/internal/ecs"

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateStageClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Derive reads the game state off the stage record. An ended stage wins
// over pause.
func Derive(stage ecs.StageState, paused bool) GameState {
	switch {
	case stage.GameOver:
		return StateGameOver
	case stage.IsGoal:
		return StateStageClear
	case paused:
		return StatePaused
	default:
		return StatePlaying
	}
}
