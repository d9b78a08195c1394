package replay

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bootleg/internal/application/session"
	"github.com/younwookim/bootleg/internal/application/system"
	"github.com/younwookim/bootleg/internal/domain/entity"
	"github.com/younwookim/bootleg/internal/infrastructure/clock"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
)

func TestFrameInput_OmitsIdleKeys(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3, L: true, A: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"l":true,"a":true}`, string(data))
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(42, "reference")

	rec.RecordFrame(system.InputState{Left: true})
	rec.RecordFrame(system.InputState{Right: true, Jump: true, Attack: true})

	data := rec.GetData()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "reference", data.Stage)
	assert.Equal(t, []FrameInput{
		{F: 0, L: true},
		{F: 1, R: true, J: true, A: true},
	}, data.Frames)
}

func TestRecorder_Stop(t *testing.T) {
	rec := NewRecorder(1, "test")
	rec.RecordFrame(system.InputState{})
	require.True(t, rec.IsRecording())

	rec.Stop()
	rec.RecordFrame(system.InputState{})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_EncodeEmpty(t *testing.T) {
	var buf bytes.Buffer

	err := NewRecorder(1, "test").Encode(&buf)

	assert.ErrorIs(t, err, ErrNoFrames)
	assert.Zero(t, buf.Len())
}

func TestEncodeDecode(t *testing.T) {
	rec := NewRecorder(99, "reference")
	rec.RecordFrame(system.InputState{Left: true})
	rec.RecordFrame(system.InputState{Retry: true, Quit: true})

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))

	data, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.GetData(), *data)
}

func TestRecorder_Marshal(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := NewRecorder(1, "test").Marshal()
		assert.ErrorIs(t, err, ErrNoFrames)
	})

	t.Run("single line that decodes back", func(t *testing.T) {
		rec := NewRecorder(7, "reference")
		rec.RecordFrame(system.InputState{Right: true, Jump: true})
		rec.RecordFrame(system.InputState{})

		b, err := rec.Marshal()
		require.NoError(t, err)
		assert.NotContains(t, string(b), "\n")

		data, err := Decode(bytes.NewReader(b))
		require.NoError(t, err)
		assert.Equal(t, rec.GetData(), *data)
	})
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "frames: []"},
		{"unknown version", `{"version":"0.1","seed":1,"frames":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Stage:   "test",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2, A: true, Rt: true, Q: true},
		},
	}

	replayer := NewReplayer(data)

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Left: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Right: true, Jump: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Attack: true, Retry: true, Quit: true}, input)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.True(t, replayer.Done())
}

func TestReplayer_PollAfterEndIsIdle(t *testing.T) {
	replayer := NewReplayer(ReplayData{Frames: []FrameInput{{F: 0, R: true}}})

	assert.Equal(t, system.InputState{Right: true}, replayer.Poll())
	assert.Equal(t, system.InputState{}, replayer.Poll())
	assert.Equal(t, system.InputState{}, replayer.Poll())
}

func TestReplayer_ImplementsInputSource(t *testing.T) {
	var _ system.InputSource = (*Replayer)(nil)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3))

	for i := 0; i < 3; i++ {
		replayer.GetInput()
	}
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	_, ok = replayer.GetInput()
	assert.True(t, ok)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, "test", data.Stage)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, FrameInput{F: i}, frame, "frame %d", i)
	}
}

// simulate runs a session from seed, feeding it every input the source
// yields for the given number of ticks
func simulate(t *testing.T, cfg *config.GameConfig, seed int64, src system.InputSource, ticks int, rec *Recorder) []entity.Rect {
	t.Helper()
	clk := clock.NewFrame(cfg.Display.Framerate)
	s, err := session.New(cfg, system.LoadStage(cfg), clk, seed, zerolog.Nop())
	require.NoError(t, err)

	var trace []entity.Rect
	for i := 0; i < ticks && !s.Dead(); i++ {
		input := src.Poll()
		if rec != nil {
			rec.RecordFrame(input)
		}
		s.Step(input)
		clk.Advance()

		trace = append(trace, s.Player().Rect)
		for _, e := range s.Enemies() {
			trace = append(trace, e.Rect)
		}
	}
	return trace
}

// scriptedInput walks back and forth, jumping and swinging
type scriptedInput struct{ tick int }

func (s *scriptedInput) Poll() system.InputState {
	defer func() { s.tick++ }()
	return system.InputState{
		Right:  s.tick%200 < 100,
		Left:   s.tick%200 >= 100,
		Jump:   s.tick%37 == 0,
		Attack: s.tick%11 < 3,
	}
}

func TestReplayDeterminism(t *testing.T) {
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)

	const seed = 20240601
	rec := NewRecorder(seed, cfg.Stage.Name)
	live := simulate(t, cfg, seed, &scriptedInput{}, 600, rec)
	require.NotEmpty(t, live)

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	data, err := Decode(&buf)
	require.NoError(t, err)

	replayer := NewReplayer(*data)
	replayed := simulate(t, cfg, replayer.Seed(), replayer, replayer.TotalFrames(), nil)

	assert.Equal(t, live, replayed)
}
