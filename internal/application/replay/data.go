package replay

import "github.com/younwookim/bootleg/internal/application/system"

// Version of the replay format
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump
	A  bool `json:"a,omitempty"`  // Attack
	Rt bool `json:"rt,omitempty"` // Retry
	Q  bool `json:"q,omitempty"`  // Quit
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func toFrame(frame int, input system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  input.Left,
		R:  input.Right,
		J:  input.Jump,
		A:  input.Attack,
		Rt: input.Retry,
		Q:  input.Quit,
	}
}

func (fi FrameInput) state() system.InputState {
	return system.InputState{
		Left:   fi.L,
		Right:  fi.R,
		Jump:   fi.J,
		Attack: fi.A,
		Retry:  fi.Rt,
		Quit:   fi.Q,
	}
}
