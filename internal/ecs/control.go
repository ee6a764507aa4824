package ecs

import "math"

// Actions is the per-frame input snapshot.
// Jump, Menu, Restart and Exit are edge-triggered (pressed this frame);
// Left, Right and Crouch are level-triggered (held).
type Actions struct {
	Jump    bool
	Left    bool
	Right   bool
	Crouch  bool
	Menu    bool
	Restart bool
	Exit    bool
}

// UpdatePlayerControl applies horizontal acceleration/friction and jumping.
// Input is ignored once the stage is over; friction still applies.
func UpdatePlayerControl(w *World, a Actions, cfg PhysicsConfig) {
	id := w.MustPlayer()
	if !w.MustStage().Playing() {
		a = Actions{}
	}

	vel := mustGet(w.Velocity, id, "Velocity")
	mov := mustGet(w.Movable, id, "Movable")
	body := mustGet(w.RectBody, id, "RectBody")
	col := mustGet(w.CollisionInfo, id, "CollisionInfo")

	// Only from the ground
	if a.Jump && col.Bottom {
		vel.Y = -mov.JumpPower
	}

	switch {
	case a.Left:
		vel.X = math.Max(vel.X-cfg.Acceleration, -mov.Speed)
		body.FlipX = true
	case a.Right:
		vel.X = math.Min(vel.X+cfg.Acceleration, mov.Speed)
		body.FlipX = false
	default:
		vel.X *= cfg.Friction
		if math.Abs(vel.X) < cfg.StopThreshold {
			vel.X = 0
		}
	}
}
