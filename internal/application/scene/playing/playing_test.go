package playing

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/vec"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

const configDir = "../../../../cmd/platformer/configs"

// createTestConfig returns the shipped defaults
func createTestConfig() *config.GameConfig {
	phys := config.DefaultPhysicsConfig()
	ent := config.DefaultEntitiesConfig()
	return &config.GameConfig{Physics: &phys, Entities: &ent}
}

// createTestStageConfig creates a floor at row 12 with one enemy far right
func createTestStageConfig() *config.StageConfig {
	floor := "########################################"
	empty := "."
	rows := make([]string, 14)
	for i := range rows {
		rows[i] = empty
	}
	rows[12], rows[13] = floor, floor

	return &config.StageConfig{
		ID:    1,
		Name:  "test",
		Spawn: config.PositionConfig{X: 80, Y: 80},
		Layers: []config.LayerConfig{
			{ID: 1, Kind: config.LayerSolid, SurfaceHeight: 8, Rows: rows},
		},
		Enemies: []config.PositionConfig{{X: 280, Y: 80}},
		Coins:   []config.PositionConfig{{X: 88, Y: 80}},
	}
}

// scripted plays frames then idles
func scripted(frames ...ecs.Actions) *replay.Replayer {
	data := replay.ReplayData{Version: "1.0", Stage: "test"}
	for i, a := range frames {
		data.Frames = append(data.Frames, replay.NewFrameInput(i, a))
	}
	return replay.NewReplayer(data)
}

func repeat(n int, a ecs.Actions) []ecs.Actions {
	out := make([]ecs.Actions, n)
	for i := range out {
		out[i] = a
	}
	return out
}

func newTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	if opts.Input == nil {
		opts.Input = scripted()
	}
	opts.Logger = log.New(io.Discard)

	p, err := New(createTestConfig(), createTestStageConfig(), opts)
	require.NoError(t, err)
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := newTestPlaying(t, Options{})

	assert.NotNil(t, p.stage)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 1, p.stage.World.Enemy.Len())
	assert.Equal(t, 1, p.stage.World.Coin.Len())
	assert.Nil(t, p.recorder)
}

func TestNewPlaying_InvalidStage(t *testing.T) {
	stageCfg := createTestStageConfig()
	stageCfg.Layers[0].Kind = "water"

	_, err := New(createTestConfig(), stageCfg, Options{Input: scripted()})
	assert.ErrorIs(t, err, config.ErrUnknownLayer)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := newTestPlaying(t, Options{})

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, uint64(1), p.Stats().Frame)
}

func TestPlaying_ExitTerminates(t *testing.T) {
	p := newTestPlaying(t, Options{Input: scripted(ecs.Actions{Exit: true})})

	_, err := p.Update(1.0 / 60.0)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.True(t, IsTermination(err))
}

func TestPlaying_MenuTogglesPause(t *testing.T) {
	frames := []ecs.Actions{{Menu: true}, {}, {}, {Menu: true}, {}}
	p := newTestPlaying(t, Options{Input: scripted(frames...)})

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, state.StatePaused, p.State())

	// World frozen while paused
	_, _ = p.Update(1.0 / 60.0)
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, uint64(0), p.Stats().Frame)
	assert.InDelta(t, 60.0, p.Stats().TimeRemaining, 1e-9)

	_, err = p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, uint64(1), p.Stats().Frame)
}

func TestPlaying_CollectsCoin(t *testing.T) {
	p := newTestPlaying(t, Options{})

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)

	stats := p.Stats()
	assert.Equal(t, 1, stats.Coins)
	assert.Equal(t, 1, stats.Events[ecs.EventCoinCollected])
}

func TestPlaying_RunRight(t *testing.T) {
	p := newTestPlaying(t, Options{Input: scripted(repeat(30, ecs.Actions{Right: true})...)})

	for i := 0; i < 30; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}

	stats := p.Stats()
	assert.Greater(t, stats.PlayerX, 80.0)
	assert.InDelta(t, 80.0, stats.PlayerY, 1.0)
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_replay.json")
	p := newTestPlaying(t, Options{
		RecordPath: path,
		Input:      scripted(ecs.Actions{Right: true}, ecs.Actions{Menu: true}),
	})

	require.NotNil(t, p.recorder)

	// Paused frames are recorded too
	for i := 0; i < 3; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, p.recorder.FrameCount())

	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "test", data.Stage)
	require.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[0].R)
	assert.True(t, data.Frames[1].M)
}

func TestPlaying_ReplayReproducesRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	frames := append(repeat(20, ecs.Actions{Right: true}), ecs.Actions{Jump: true})
	frames = append(frames, repeat(40, ecs.Actions{Left: true})...)

	rec := newTestPlaying(t, Options{RecordPath: path, Input: scripted(frames...)})
	for range frames {
		_, err := rec.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	rec.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	play := newTestPlaying(t, Options{Input: replay.NewReplayer(*data)})
	for range data.Frames {
		_, err := play.Update(1.0 / 60.0)
		require.NoError(t, err)
	}

	assert.Equal(t, rec.Stats(), play.Stats())
}

func TestPlaying_Reload(t *testing.T) {
	p := newTestPlaying(t, Options{})

	cfg := createTestConfig()
	cfg.Physics.Physics.Gravity = 0.5
	p.Reload(cfg)

	// Only the latest pending reload applies
	cfg2 := createTestConfig()
	cfg2.Physics.Physics.Gravity = 0.3
	p.Reload(cfg2)

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, p.pipeline.Config().Gravity, 1e-12)
}

func TestPlaying_OnEnter(t *testing.T) {
	p := newTestPlaying(t, Options{})

	// OnEnter should not panic
	assert.NotPanics(t, func() {
		p.OnEnter()
	})
}

func TestPlaying_OnExit(t *testing.T) {
	p := newTestPlaying(t, Options{})

	// OnExit should not panic
	assert.NotPanics(t, func() {
		p.OnExit()
	})
}

func TestPlaying_Camera(t *testing.T) {
	p := newTestPlaying(t, Options{})
	w := p.stage.World
	pos, _ := w.Position.Get(w.PlayerID)

	// Near the left edge the view is clamped
	camX, camY := p.camera()
	assert.Equal(t, 0, camX)
	assert.Equal(t, 0, camY)

	// Player centered mid-map: 40 tiles = 320px, screen 272px
	pos.Teleport(pos.Vec2.Add(vec.New(60, 0)))
	camX, _ = p.camera()
	assert.Equal(t, 140+8-136, camX)

	// Clamped at the right edge
	pos.Teleport(vec.New(300, 80))
	camX, _ = p.camera()
	assert.Equal(t, 320-272, camX)
}

func TestPlaying_Draw(t *testing.T) {
	p := newTestPlaying(t, Options{})
	screen := ebiten.NewImage(p.screenW, p.screenH)

	assert.NotPanics(t, func() {
		p.Draw(screen)
	})
}

func TestPlaying_DemoStage(t *testing.T) {
	loader := config.NewLoader(configDir)
	gc, err := loader.LoadAll()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	p, err := New(gc, stageCfg, Options{
		Input:  scripted(repeat(120, ecs.Actions{Right: true})...),
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)

	for i := 0; i < 120; i++ {
		_, err := p.Update(1.0 / 60.0)
		require.NoError(t, err)
	}

	// The wall at column 16 stops the run
	stats := p.Stats()
	assert.Greater(t, stats.PlayerX, 80.0)
	assert.Less(t, stats.PlayerX, 128.0)
	assert.Equal(t, 3, stats.Lives)
	assert.Equal(t, state.StatePlaying, stats.State)
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder("test")

	assert.True(t, r.IsRecording())

	r.Stop()

	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder("test")
	r.Stop()

	// Should not record when stopped
	r.RecordFrame(ecs.Actions{Left: true})

	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder("test")
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrNothingRecorded)
}

func TestRecorder_Save(t *testing.T) {
	r := NewRecorder("demo")
	r.RecordFrame(ecs.Actions{Jump: true})
	r.RecordFrame(ecs.Actions{})

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, r.Save(path))

	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, 1, r.GetData().Frames[1].F)

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
