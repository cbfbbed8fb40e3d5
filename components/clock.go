package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData carries real elapsed time into the frame systems. All smoothing
// is Δt-based so feel does not depend on the tick rate.
type ClockData struct {
	DT      float64 // seconds since the previous Update
	Elapsed float64 // seconds since the scene started, for pulse effects
	Last    time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
