package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/platformer/internal/ecs"
)

// ErrFrameOrder is returned for a replay whose frames are not numbered 0..n-1
var ErrFrameOrder = errors.New("replay frames out of order")

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	for i, fi := range data.Frames {
		if fi.F != i {
			return nil, fmt.Errorf("%s: frame %d has number %d: %w", filename, i, fi.F, ErrFrameOrder)
		}
	}

	return &data, nil
}

// Next returns the actions for the current frame and advances
func (r *Replayer) Next() (ecs.Actions, bool) {
	if r.frame >= len(r.data.Frames) {
		return ecs.Actions{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Actions(), true
}

// Actions is Next without the end marker; an exhausted replay yields idle
// frames
func (r *Replayer) Actions() ecs.Actions {
	a, _ := r.Next()
	return a
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data holding a for every frame
func CreateTestReplayData(frames int, a ecs.Actions) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = NewFrameInput(i, a)
	}

	return data
}
