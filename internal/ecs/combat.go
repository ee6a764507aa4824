package ecs

import (
	"math"

	"github.com/younwookim/platformer/internal/domain/collision"
)

// UpdatePlayerEnemyCombat resolves player vs enemy contact.
//
// The approach angle is mirrored onto the right half plane so a hit from
// either side reads the same. Steeper than StompAngle with bottom contact is a
// stomp: the enemy dies and is removed after the scan. Shallower than
// StompAngle with side contact is a side hit: one life is lost, the enemy
// turns around and the scan stops. At most one side hit counts per frame.
// While the player is invulnerable side contact is ignored and the scan goes
// on, so stomps on other enemies still land.
func UpdatePlayerEnemyCombat(w *World, cfg PhysicsConfig) {
	id := w.MustPlayer()
	stage := w.MustStage()
	player := mustGet(w.Player, id, "Player")

	if player.Iframes > 0 {
		player.Iframes--
	}
	if stage.GameOver {
		return
	}

	prect := mustGet(w.RectBody, id, "RectBody").Rect(*mustGet(w.Position, id, "Position"))

	var toDestroy []EntityID
	for _, eid := range Join(w.Enemy, w.Position, w.RectBody, w.Velocity) {
		enemy := mustGet(w.Enemy, eid, "EnemyState")
		if enemy.IsDead {
			continue
		}

		body := mustGet(w.RectBody, eid, "RectBody")
		erect := body.Rect(*mustGet(w.Position, eid, "Position"))

		c := collision.RectRect(prect, erect)
		if !c.Any() {
			continue
		}

		angle := math.Abs(collision.ApproachAngle(prect, erect))
		if angle > math.Pi/2 {
			angle = math.Pi - angle
		}

		if angle > cfg.StompAngle && c.Bottom {
			enemy.IsDead = true
			toDestroy = append(toDestroy, eid)
			w.emit(EventEnemyStomped, eid)
			continue
		}

		if angle < cfg.StompAngle && (c.Left || c.Right) {
			if player.Iframes > 0 {
				continue
			}
			if stage.Lives > 0 {
				stage.Lives--
			}
			vel := mustGet(w.Velocity, eid, "Velocity")
			vel.X = -vel.X
			body.FlipX = !body.FlipX
			player.Iframes = cfg.SideHitIframes
			w.emit(EventSideHit, eid)
			break
		}
	}

	for _, eid := range toDestroy {
		w.DestroyEntity(eid)
	}
}
