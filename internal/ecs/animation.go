package ecs

import "math"

// Sprite sheet offsets
const (
	spriteIdleX   = 0
	spriteIdleY   = 88
	spriteRunY    = 104
	spriteRunAltX = 16
	spriteJumpX   = 16
	spriteJumpY   = 88
	spriteCrouchX = 48
	spriteCrouchY = 88

	enemySpriteY = 56
)

var enemyWalkFrames = [...]int{32, 48, 64, 48}

const (
	runThreshold  = 0.1
	jumpThreshold = -0.5
)

// DerivePlayerAnimState picks the visual state. Crouch beats jump, jump beats
// run, run beats idle.
func DerivePlayerAnimState(vel Velocity, crouch bool) AnimState {
	switch {
	case crouch:
		return AnimCrouch
	case vel.Y < jumpThreshold:
		return AnimJump
	case math.Abs(vel.X) > runThreshold:
		return AnimRun
	default:
		return AnimIdle
	}
}

// UpdatePlayerAnimation selects the player's sprite. The run cycle toggles
// between two frames every AnimationSpeed frames while running.
func UpdatePlayerAnimation(w *World, a Actions, cfg PhysicsConfig) {
	id := w.MustPlayer()
	vel := mustGet(w.Velocity, id, "Velocity")
	anim := mustGet(w.Animation, id, "Animation")

	running := math.Abs(vel.X) > runThreshold
	if running {
		anim.Timer++
		if anim.Timer >= cfg.AnimationSpeed {
			anim.Timer = 0
			anim.Frame = (anim.Frame + 1) % 2
		}
	}

	anim.State = DerivePlayerAnimState(*vel, a.Crouch)
	switch anim.State {
	case AnimCrouch:
		anim.SpriteX, anim.SpriteY = spriteCrouchX, spriteCrouchY
	case AnimJump:
		anim.SpriteX, anim.SpriteY = spriteJumpX, spriteJumpY
	case AnimRun:
		anim.SpriteX, anim.SpriteY = 0, spriteRunY
		if anim.Frame == 1 {
			anim.SpriteX = spriteRunAltX
		}
	default:
		anim.SpriteX, anim.SpriteY = spriteIdleX, spriteIdleY
	}
}

// UpdateEnemyAnimation advances every enemy's four-frame walk cycle
func UpdateEnemyAnimation(w *World, cfg PhysicsConfig) {
	for _, id := range w.EnemyAnimation.IDs() {
		anim := mustGet(w.EnemyAnimation, id, "EnemyAnimation")
		anim.Timer++
		if anim.Timer >= cfg.AnimationSpeed {
			anim.Timer = 0
			anim.Frame = (anim.Frame + 1) % len(enemyWalkFrames)
		}
		anim.SpriteX = enemyWalkFrames[anim.Frame]
		anim.SpriteY = enemySpriteY
	}
}
