package ecs

// UpdateEnemyWalk patrols every living enemy. Facing is the state: a left
// walker turns right on left contact and vice versa.
func UpdateEnemyWalk(w *World) {
	for _, id := range Join(w.Enemy, w.Velocity, w.RectBody, w.CollisionInfo, w.Movable) {
		if mustGet(w.Enemy, id, "EnemyState").IsDead {
			continue
		}

		vel := mustGet(w.Velocity, id, "Velocity")
		body := mustGet(w.RectBody, id, "RectBody")
		col := mustGet(w.CollisionInfo, id, "CollisionInfo")
		speed := mustGet(w.Movable, id, "Movable").Speed

		if body.FlipX && col.Left {
			body.FlipX = false
		} else if !body.FlipX && col.Right {
			body.FlipX = true
		}

		if body.FlipX {
			vel.X = -speed
		} else {
			vel.X = speed
		}
	}
}
