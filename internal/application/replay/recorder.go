package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/younwookim/bootleg/internal/application/system"
)

// ErrNoFrames is returned when encoding an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording for replay.
// Frames are kept in memory until encoded.
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, toFrame(r.frame, input))
	r.frame++
}

// Encode writes the recording as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Marshal returns the recording as compact JSON, suitable for embedding in
// a log event
func (r *Recorder) Marshal() ([]byte, error) {
	if len(r.data.Frames) == 0 {
		return nil, ErrNoFrames
	}

	b, err := json.Marshal(r.data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode replay: %w", err)
	}
	return b, nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Seed returns the seed of the recorded session
func (r *Recorder) Seed() int64 {
	return r.data.Seed
}

// GetData returns the replay data
func (r *Recorder) GetData() ReplayData {
	return r.data
}
