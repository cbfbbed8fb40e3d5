package systems

import (
	"github.com/charlie-adam/slitherio/components"
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/charlie-adam/slitherio/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world with the singleton entities present and a fixed
// Δt, so systems run deterministically without a window or a real clock.
func newTestECS(dt float64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateArena(e)
	factory.CreateSession(e)
	factory.CreateCamera(e)
	factory.CreateInput(e)
	setDT(e, dt)
	return e
}

func setDT(e *ecs.ECS, dt float64) {
	entry, _ := components.Clock.First(e.World)
	components.Clock.Get(entry).DT = dt
}

func session(e *ecs.ECS) *components.SessionData {
	entry, _ := components.Session.First(e.World)
	return components.Session.Get(entry)
}

func camera(e *ecs.ECS) *components.CameraData {
	entry, _ := components.Camera.First(e.World)
	return components.Camera.Get(entry)
}

func input(e *ecs.ECS) *components.InputData {
	entry, _ := components.Input.First(e.World)
	return components.Input.Get(entry)
}

func foodField(e *ecs.ECS) *components.FoodFieldData {
	entry, _ := components.FoodField.First(e.World)
	return components.FoodField.Get(entry)
}

func arena(e *ecs.ECS) *components.ArenaData {
	entry, _ := components.Arena.First(e.World)
	return components.Arena.Get(entry)
}

// snapshotAt builds a minimal snapshot with a one-point body at the head.
func snapshotAt(x, y float64) messages.PlayerSnapshot {
	return messages.PlayerSnapshot{
		X: x, Y: y,
		Length: 10,
		Body:   []messages.Point{{X: x, Y: y}},
	}
}
