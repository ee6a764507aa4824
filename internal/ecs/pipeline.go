package ecs

import (
	"errors"
	"fmt"

	"github.com/younwookim/platformer/internal/domain/collision"
)

// ErrFrameFailed is returned when a frame aborts part way. The world must be
// considered corrupt and the loop halted.
var ErrFrameFailed = errors.New("ecs: frame failed")

// Services are the collaborators threaded into the systems
type Services struct {
	Tiles collision.TileQuery
}

// Pipeline runs the systems in their fixed order, one Step per frame
type Pipeline struct {
	cfg PhysicsConfig
	svc Services
}

// NewPipeline creates a pipeline
func NewPipeline(cfg PhysicsConfig, svc Services) *Pipeline {
	return &Pipeline{cfg: cfg, svc: svc}
}

// Config returns the active tuning
func (p *Pipeline) Config() PhysicsConfig {
	return p.cfg
}

// SetConfig replaces the tuning; it takes effect on the next Step
func (p *Pipeline) SetConfig(cfg PhysicsConfig) {
	p.cfg = cfg
}

// Step advances the world by one frame. A panic raised by a system (for
// example a missing singleton) is returned as ErrFrameFailed.
func (p *Pipeline) Step(w *World, a Actions) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: frame %d: %v", ErrFrameFailed, w.frame, r)
		}
	}()

	cfg := p.cfg

	// Physics
	UpdateGravity(w, cfg)
	UpdateTileCollision(w, p.svc.Tiles)
	UpdatePlayerControl(w, a, cfg)
	UpdateMovement(w)
	CommitPositions(w)

	// Reactions on committed positions
	UpdateRestart(w, a, cfg)
	UpdateGoal(w, p.svc.Tiles)
	UpdateStageTimer(w, cfg)
	UpdateFallDeath(w, cfg)
	UpdateEnemyWalk(w)
	UpdatePlayerEnemyCombat(w, cfg)
	UpdateCoinCollection(w, cfg)
	UpdateLives(w)

	// Presentation state
	UpdatePlayerAnimation(w, a, cfg)
	UpdateEnemyAnimation(w, cfg)

	w.frame++
	return nil
}
