package ecs

import (
	"github.com/younwookim/platformer/internal/domain/collision"
)

// UpdateRestart fully resets the stage when the restart action fires
func UpdateRestart(w *World, a Actions, cfg PhysicsConfig) {
	if !a.Restart {
		return
	}
	ResetStage(w, cfg)
	w.emit(EventRestart, w.MustPlayer())
}

// UpdateGoal sets IsGoal when the player touches a goal marker layer from
// above or from its right side
func UpdateGoal(w *World, tiles collision.TileQuery) {
	stage := w.MustStage()
	if !stage.Playing() {
		return
	}

	id := w.MustPlayer()
	rect := mustGet(w.RectBody, id, "RectBody").Rect(*mustGet(w.Position, id, "Position"))

	for _, lid := range Join(w.Goal, w.TileLayer) {
		layer := mustGet(w.TileLayer, lid, "TileLayer")
		c := collision.Tilemap(rect, tiles, layer.ID, layer.PixelSize)
		if c.Bottom || c.Left {
			stage.IsGoal = true
			w.emit(EventGoalReached, id)
			return
		}
	}
}

// UpdateStageTimer counts the clock down while the stage is in progress
func UpdateStageTimer(w *World, cfg PhysicsConfig) {
	stage := w.MustStage()
	if !stage.Playing() {
		return
	}

	stage.TimeRemaining -= cfg.FrameTime
	if stage.TimeRemaining <= 0 {
		stage.TimeRemaining = 0
		stage.GameOver = true
		w.emit(EventTimeUp, w.StageID)
	}
}

// UpdateFallDeath respawns a player that dropped below the fall limit.
// One life is deducted when any remain and enemies are re-spawned.
// The timer and collected coins are kept.
func UpdateFallDeath(w *World, cfg PhysicsConfig) {
	id := w.MustPlayer()
	stage := w.MustStage()

	if mustGet(w.Position, id, "Position").Y <= cfg.FallLimitY {
		return
	}

	RespawnPlayer(w, cfg)
	if stage.Lives > 0 {
		stage.Lives--
	}
	RespawnEnemies(w, cfg)
	w.emit(EventFellOut, id)
}

// UpdateLives ends the game once no lives remain
func UpdateLives(w *World) {
	stage := w.MustStage()
	if stage.Lives > 0 || stage.GameOver {
		return
	}
	stage.GameOver = true
	w.emit(EventGameOver, w.StageID)
}
