package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/younwookim/towerdefence/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   "1.0",
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	var pressed []string
	for action, down := range input.Pressed {
		if down {
			pressed = append(pressed, action)
		}
	}
	sort.Strings(pressed)

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  r.frame,
		P:  pressed,
		MX: input.MouseX,
		MY: input.MouseY,
		MC: input.MouseClick,
	})
	r.frame++
}

// Wrap returns a reader that records every frame read returns
func (r *Recorder) Wrap(read func() system.InputState) func() system.InputState {
	return func() system.InputState {
		in := read()
		r.RecordFrame(in)
		return in
	}
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
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

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}
