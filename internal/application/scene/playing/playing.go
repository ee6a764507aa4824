// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Options configures a Playing scene
type Options struct {
	// RecordPath enables input recording when not empty
	RecordPath string
	// Input overrides the live keyboard/gamepad source (replays, tests)
	Input system.ActionSource
	Logger *log.Logger
}

// Stats is a snapshot of the running stage
type Stats struct {
	Frame         uint64
	State         state.GameState
	Lives         int
	Coins         int
	TimeRemaining float64
	PlayerX       float64
	PlayerY       float64
	Enemies       int
	Events        map[ecs.EventKind]int
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	stageCfg *config.StageConfig
	stage    *system.Stage
	pipeline *ecs.Pipeline
	input    system.ActionSource
	logger   *log.Logger
	state    state.GameState
	paused   bool
	screenW  int
	screenH  int

	// Config reloads from the watcher goroutine, applied on the next Update
	reloads chan *config.GameConfig

	events map[ecs.EventKind]int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene with the stage loaded and populated.
func New(cfg *config.GameConfig, stageCfg *config.StageConfig, opts Options) (*Playing, error) {
	tuning := system.Tuning(cfg, stageCfg.Spawn)

	stage, err := system.LoadStage(stageCfg, tuning)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	input := opts.Input
	if input == nil {
		input = system.NewInputSystem(cfg.Physics.Input.GamepadDeadZone)
	}

	p := &Playing{
		config:         cfg,
		stageCfg:       stageCfg,
		stage:          stage,
		pipeline:       ecs.NewPipeline(tuning, ecs.Services{Tiles: stage.Tiles}),
		input:          input,
		logger:         logger.WithPrefix("playing"),
		state:          state.StatePlaying,
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		reloads:        make(chan *config.GameConfig, 1),
		events:         make(map[ecs.EventKind]int),
		recordFilename: opts.RecordPath,
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(stageCfg.Name)
		p.logger.Info("recording enabled", "path", opts.RecordPath)
	}

	return p, nil
}

// Update advances the stage by one frame (implements scene.Scene).
// The exit action ends the game with ebiten.Termination.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.applyReload()

	a := p.input.Actions()

	// The game loop calls OnExit, which saves the recording
	if a.Exit {
		p.logger.Info("exit requested", "frame", p.stage.World.Frame())
		return nil, ebiten.Termination
	}

	// Record before the pause check so a replay toggles pause identically
	if p.recorder != nil {
		p.recorder.RecordFrame(a)
	}

	if a.Menu {
		p.paused = !p.paused
		p.logger.Debug("pause toggled", "paused", p.paused)
	}
	if p.paused {
		p.state = state.Derive(*p.stage.World.MustStage(), true)
		return nil, nil
	}

	if err := p.pipeline.Step(p.stage.World, a); err != nil {
		p.logger.Error("frame failed", "err", err)
		return nil, err
	}

	p.handleEvents(p.stage.World.DrainEvents())
	p.state = state.Derive(*p.stage.World.MustStage(), p.paused)

	return nil, nil // nil = stay on this scene
}

func (p *Playing) handleEvents(events []ecs.Event) {
	for _, e := range events {
		p.events[e.Kind]++

		switch e.Kind {
		case ecs.EventCoinCollected, ecs.EventEnemyStomped:
			p.logger.Debug(e.Kind.String(), "frame", e.Frame, "coins", e.Coins)
		case ecs.EventSideHit, ecs.EventFellOut:
			p.logger.Info(e.Kind.String(), "frame", e.Frame, "lives", e.Lives)
		case ecs.EventGoalReached:
			p.logger.Info("goal reached", "frame", e.Frame, "coins", e.Coins,
				"time", fmt.Sprintf("%.1f", p.stage.World.MustStage().TimeRemaining))
		case ecs.EventGameOver:
			p.logger.Warn("game over", "frame", e.Frame, "coins", e.Coins)
			// Auto-save recording on game over
			p.saveRecording()
		default:
			p.logger.Info(e.Kind.String(), "frame", e.Frame)
		}
	}
}

// Reload queues a new configuration; it takes effect on the next Update.
// Safe to call from another goroutine. A pending reload is replaced.
func (p *Playing) Reload(cfg *config.GameConfig) {
	for {
		select {
		case p.reloads <- cfg:
			return
		default:
		}
		select {
		case <-p.reloads:
		default:
		}
	}
}

func (p *Playing) applyReload() {
	var cfg *config.GameConfig
	select {
	case cfg = <-p.reloads:
	default:
		return
	}

	p.config = cfg
	p.pipeline.SetConfig(system.Tuning(cfg, p.stageCfg.Spawn))
	if dz, ok := p.input.(interface{ SetDeadZone(float64) }); ok {
		dz.SetDeadZone(cfg.Physics.Input.GamepadDeadZone)
	}
	p.logger.Info("config reloaded")
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
	} else {
		p.logger.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// State returns the derived game state
func (p *Playing) State() state.GameState {
	return p.state
}

// Stats returns a snapshot of the stage
func (p *Playing) Stats() Stats {
	w := p.stage.World
	s := w.MustStage()

	events := make(map[ecs.EventKind]int, len(p.events))
	for k, v := range p.events {
		events[k] = v
	}

	out := Stats{
		Frame:         w.Frame(),
		State:         p.state,
		Lives:         s.Lives,
		Coins:         s.Coins,
		TimeRemaining: s.TimeRemaining,
		Enemies:       w.Enemy.Len(),
		Events:        events,
	}
	if pos, ok := w.Position.Get(w.PlayerID); ok {
		out.PlayerX, out.PlayerY = pos.X, pos.Y
	}
	return out
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("stage started", "stage", p.stage.Name,
		"coins", p.stage.World.Coin.Len(), "enemies", p.stage.World.Enemy.Len())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// IsTermination reports whether err is the normal exit signal
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
