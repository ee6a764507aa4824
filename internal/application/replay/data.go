package replay

import "github.com/younwookim/platformer/internal/ecs"

// FrameInput records the actions of a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	J  bool `json:"j,omitempty"`  // Jump
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	C  bool `json:"c,omitempty"`  // Crouch
	M  bool `json:"m,omitempty"`  // Menu
	Rs bool `json:"rs,omitempty"` // Restart
	X  bool `json:"x,omitempty"`  // Exit
}

// NewFrameInput records a for frame f
func NewFrameInput(f int, a ecs.Actions) FrameInput {
	return FrameInput{
		F:  f,
		J:  a.Jump,
		L:  a.Left,
		R:  a.Right,
		C:  a.Crouch,
		M:  a.Menu,
		Rs: a.Restart,
		X:  a.Exit,
	}
}

// Actions returns the recorded actions
func (fi FrameInput) Actions() ecs.Actions {
	return ecs.Actions{
		Jump:    fi.J,
		Left:    fi.L,
		Right:   fi.R,
		Crouch:  fi.C,
		Menu:    fi.M,
		Restart: fi.Rs,
		Exit:    fi.X,
	}
}

// ReplayData contains all data needed to replay a game session.
// The simulation is deterministic, so the stage name and inputs suffice.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
