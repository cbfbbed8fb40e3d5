package systems

import (
	"time"

	"github.com/charlie-adam/slitherio/components"
	"github.com/yohamta/donburi/ecs"
)

// maxFrameDT caps Δt across stalls (window drags, debugger pauses) so one
// long frame cannot fling the smoothed state past its targets.
const maxFrameDT = 0.25

// UpdateClock measures real elapsed time for this frame. Runs first.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	now := time.Now()
	dt := now.Sub(clock.Last).Seconds()
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDT {
		dt = maxFrameDT
	}
	clock.DT = dt
	clock.Elapsed += dt
	clock.Last = now
}

// frameDT returns this frame's Δt in seconds.
func frameDT(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).DT
}
