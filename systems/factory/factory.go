package factory

import (
	"time"

	"github.com/charlie-adam/slitherio/archetypes"
	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Scale:       cfg.Camera.RespawnScale,
		TargetScale: cfg.Camera.RespawnScale,
	})
}

func CreateSession(ecs *ecs.ECS) {
	session := archetypes.Session.Spawn(ecs)
	components.Session.Set(session, &components.SessionData{
		Mode: components.ModeDead, // the server promotes us with init_player
	})
}

func CreateArena(ecs *ecs.ECS) {
	arena := archetypes.Arena.Spawn(ecs)
	conf := messages.GameConfig{}
	conf.ApplyDefaults()
	components.Arena.Set(arena, &components.ArenaData{Config: conf})
	components.FoodField.Set(arena, &components.FoodFieldData{
		Items: make(map[string]messages.FoodItem),
	})
}

func CreateClock(ecs *ecs.ECS) {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, &components.ClockData{Last: time.Now()})
}

func CreateInput(ecs *ecs.ECS) {
	archetypes.Input.Spawn(ecs)
}

// CreateNetPlayer spawns an entity for a newly sighted player id with its
// visual state snapped to the first snapshot.
func CreateNetPlayer(ecs *ecs.ECS, id string, snap messages.PlayerSnapshot) *donburi.Entry {
	entry := archetypes.NetPlayer.Spawn(ecs)
	components.NetPlayer.Set(entry, &components.NetPlayerData{ID: id, State: snap})

	visual := &components.VisualData{}
	if len(snap.Body) > 0 {
		visual.SnapTo(&snap)
	}
	components.Visual.Set(entry, visual)
	return entry
}
