package components

import "github.com/yohamta/donburi"

// InputData is the polled input state for this frame. The input system is
// the only writer; camera and session systems read it, which keeps them
// testable without a window.
type InputData struct {
	Aim      float64 // pointer heading relative to screen center
	AimValid bool
	Boost    bool

	PanX, PanY float64 // -1/0/1 per axis while spectating
	ZoomDelta  float64 // wheel notches this frame

	ToggleSpectate bool // edge-triggered, true for one frame
	CheatBoost     bool
}

var Input = donburi.NewComponentType[InputData]()
