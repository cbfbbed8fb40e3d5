package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the viewport: world position of the screen center plus the
// current and target zoom scale. Scale always chases TargetScale through one
// shared exponential smoothing law; only the rate differs per mode.
type CameraData struct {
	Position    math.Vec2
	Scale       float64
	TargetScale float64
	DriftAngle  float64 // heading for the death-drift mode, armed at death
}

var Camera = donburi.NewComponentType[CameraData]()
