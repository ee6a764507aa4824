package game

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/scene"
)

// stubScene appends every lifecycle call to a shared trace
type stubScene struct {
	name  string
	trace *[]string
	next  scene.Scene
	err   error
	dt    float64
}

func (s *stubScene) record(call string) {
	*s.trace = append(*s.trace, s.name+"."+call)
}

func (s *stubScene) Update(dt float64) (scene.Scene, error) {
	s.dt = dt
	s.record("Update")
	return s.next, s.err
}

func (s *stubScene) Draw(*ebiten.Image) { s.record("Draw") }
func (s *stubScene) OnEnter()           { s.record("OnEnter") }
func (s *stubScene) OnExit()            { s.record("OnExit") }

func newTestGame(initial scene.Scene) *Game {
	g := New(initial, 320, 240)
	g.SetLogger(log.New(io.Discard))
	return g
}

func TestGame_Update(t *testing.T) {
	wrapped := fmt.Errorf("frame 12: %w", errors.New("boom"))

	tests := []struct {
		name      string
		err       error
		toNext    bool
		wantTrace []string
		wantErr   error
		unwrapped bool
		current   string
	}{
		{
			name:      "stays on the scene",
			wantTrace: []string{"a.OnEnter", "a.Update"},
			current:   "a",
		},
		{
			name:      "switches scene",
			toNext:    true,
			wantTrace: []string{"a.OnEnter", "a.Update", "a.OnExit", "b.OnEnter"},
			current:   "b",
		},
		{
			name:      "failure exits the scene and is wrapped",
			err:       wrapped,
			wantTrace: []string{"a.OnEnter", "a.Update", "a.OnExit"},
			wantErr:   wrapped,
			current:   "a",
		},
		{
			name:      "termination exits the scene and reaches ebiten as is",
			err:       ebiten.Termination,
			wantTrace: []string{"a.OnEnter", "a.Update", "a.OnExit"},
			wantErr:   ebiten.Termination,
			unwrapped: true,
			current:   "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var trace []string
			a := &stubScene{name: "a", trace: &trace, err: tt.err}
			b := &stubScene{name: "b", trace: &trace}
			if tt.toNext {
				a.next = b
			}

			g := newTestGame(a)
			err := g.Update()

			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.unwrapped {
					assert.Equal(t, tt.wantErr, err)
				} else {
					assert.ErrorContains(t, err, "scene update")
				}
			}
			assert.Equal(t, tt.wantTrace, trace)
			assert.Equal(t, tt.current, g.Current().(*stubScene).name)
		})
	}
}

func TestGame_UpdatesFollowTheNewScene(t *testing.T) {
	var trace []string
	b := &stubScene{name: "b", trace: &trace}
	a := &stubScene{name: "a", trace: &trace, next: b}

	g := newTestGame(a)
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Equal(t, []string{
		"a.OnEnter", "a.Update", "a.OnExit", "b.OnEnter",
		"b.Update", "b.Update",
	}, trace)
}

func TestGame_DrawLayoutAndDT(t *testing.T) {
	var trace []string
	a := &stubScene{name: "a", trace: &trace}

	g := newTestGame(a)
	g.SetDT(1.0 / 30.0)
	require.NoError(t, g.Update())
	g.Draw(ebiten.NewImage(320, 240))

	assert.InDelta(t, 1.0/30.0, a.dt, 1e-12)
	assert.Equal(t, []string{"a.OnEnter", "a.Update", "a.Draw"}, trace)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}
