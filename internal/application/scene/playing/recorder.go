package playing

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/ecs"
)

// ErrNothingRecorded is returned when saving a recording with no frames
var ErrNothingRecorded = errors.New("no frames to save")

// Recorder collects the actions fed to the pipeline, one entry per Update,
// including paused frames
type Recorder struct {
	data    replay.ReplayData
	stopped bool
}

// NewRecorder starts a recording for the named stage
func NewRecorder(stage string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   "1.0",
			Stage:     stage,
			StartTime: time.Now().UTC().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // one minute at 60 TPS
		},
	}
}

// RecordFrame appends a; ignored once stopped
func (r *Recorder) RecordFrame(a ecs.Actions) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(len(r.data.Frames), a))
}

// Save writes the recording as indented JSON to a temp file next to filename,
// then renames it into place.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNothingRecorded
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".replay-*.json")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to save replay: %w", err)
	}
	return nil
}

// Stop ends the recording; recorded frames are kept
func (r *Recorder) Stop() {
	r.stopped = true
}

// IsRecording reports whether frames are still appended
func (r *Recorder) IsRecording() bool {
	return !r.stopped
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the recording so far
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename names a recording after the current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
