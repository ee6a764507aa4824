package ecs

import (
	"github.com/younwookim/platformer/internal/domain/collision"
)

// UpdateGravity accelerates every collidable body downward and clamps the
// fall speed. Upward velocity is never clamped.
func UpdateGravity(w *World, cfg PhysicsConfig) {
	for _, id := range Join(w.CollisionInfo, w.Velocity) {
		vel := mustGet(w.Velocity, id, "Velocity")
		vel.Y += cfg.Gravity
		if vel.Y > cfg.MaxFallSpeed {
			vel.Y = cfg.MaxFallSpeed
		}
	}
}

// UpdateTileCollision recomputes CollisionInfo for every collidable body
// against every solid tile layer, at the committed position. All four flags
// are overwritten every frame.
func UpdateTileCollision(w *World, tiles collision.TileQuery) {
	layers := Join(w.TileCollidable, w.TileLayer)

	for _, id := range Join(w.CollisionInfo, w.Position, w.RectBody) {
		pos := mustGet(w.Position, id, "Position")
		body := mustGet(w.RectBody, id, "RectBody")
		rect := body.Rect(*pos)

		var c collision.Contacts
		for _, lid := range layers {
			layer := mustGet(w.TileLayer, lid, "TileLayer")
			solid := mustGet(w.TileCollidable, lid, "TileCollidable")
			c = c.Or(collision.Tilemap(rect, tiles, layer.ID, solid.SurfaceHeight))
		}

		mustGet(w.CollisionInfo, id, "CollisionInfo").Contacts = c
	}
}

// UpdateMovement stages next = position + velocity for every collidable
// body. A velocity heading into a blocked side is zeroed and that axis holds
// its committed value. The flags come from this frame's UpdateTileCollision,
// i.e. from the previous commit.
func UpdateMovement(w *World) {
	for _, id := range Join(w.CollisionInfo, w.Position, w.Velocity) {
		pos := mustGet(w.Position, id, "Position")
		vel := mustGet(w.Velocity, id, "Velocity")
		col := mustGet(w.CollisionInfo, id, "CollisionInfo")

		switch {
		case vel.X < 0 && col.Left, vel.X > 0 && col.Right:
			vel.X = 0
			pos.Next.X = pos.X
		default:
			pos.Next.X = pos.X + vel.X
		}

		switch {
		case vel.Y > 0 && col.Bottom, vel.Y < 0 && col.Top:
			vel.Y = 0
			pos.Next.Y = pos.Y
		default:
			pos.Next.Y = pos.Y + vel.Y
		}
	}
}

// CommitPositions copies every staged position into the committed one
func CommitPositions(w *World) {
	for _, id := range w.Position.IDs() {
		pos := mustGet(w.Position, id, "Position")
		pos.Prev = pos.Vec2
		pos.Vec2 = pos.Next
	}
}
