package systems

import (
	"github.com/charlie-adam/slitherio/components"
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/charlie-adam/slitherio/systems/factory"
	"github.com/charlie-adam/slitherio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyConfig stores the one-time init_config payload.
func ApplyConfig(e *ecs.ECS, conf messages.GameConfig) {
	entry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	conf.ApplyDefaults()
	components.Arena.Get(entry).Config = conf
}

// ApplyInitFood replaces the food collection in full. After this load the
// collection is maintained purely by diffs.
func ApplyInitFood(e *ecs.ECS, items map[string]messages.FoodItem) {
	entry, ok := components.FoodField.First(e.World)
	if !ok {
		return
	}
	field := components.FoodField.Get(entry)
	field.Items = make(map[string]messages.FoodItem, len(items))
	for id, item := range items {
		field.Items[id] = item
	}
	field.Loaded = true
}

// ApplyTick ingests a game_tick: replaces every player's authoritative
// snapshot and the leaderboard wholesale, applies the food diff, and removes
// visual entries whose id vanished from the authoritative set. The local
// player's own entry is retained so its corpse does not pop on death.
func ApplyTick(e *ecs.ECS, tick messages.TickUpdate) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	arena.Leaderboard = tick.Leaderboard
	arena.PlayerCount = len(tick.Players)

	byID := playerIndex(e)
	localID := localPlayerID(e)

	for id, snap := range tick.Players {
		entry, seen := byID[id]
		if !seen {
			// A first sighting with an empty body carries nothing to draw;
			// wait for a tick where the body exists.
			if len(snap.Body) == 0 {
				continue
			}
			created := factory.CreateNetPlayer(e, id, snap)
			if id == localID {
				created.AddComponent(tags.LocalPlayer)
			}
			continue
		}
		components.NetPlayer.Get(entry).State = snap
	}

	for id, entry := range byID {
		if _, present := tick.Players[id]; present {
			continue
		}
		if id == localID {
			continue
		}
		entry.Remove()
	}

	if tick.FoodDiff != nil {
		applyFoodDiff(e, tick.FoodDiff)
	}
}

// applyFoodDiff applies an incremental food delta. Added and removed ids are
// disjoint, so ordering is immaterial; removing an absent id is a no-op.
func applyFoodDiff(e *ecs.ECS, diff *messages.FoodDiff) {
	entry, ok := components.FoodField.First(e.World)
	if !ok {
		return
	}
	field := components.FoodField.Get(entry)
	for _, id := range diff.Removed {
		delete(field.Items, id)
	}
	for id, item := range diff.Added {
		field.Items[id] = item
	}
}

// playerIndex builds an id lookup over the current player entities.
func playerIndex(e *ecs.ECS) map[string]*donburi.Entry {
	byID := make(map[string]*donburi.Entry)
	components.NetPlayer.Each(e.World, func(entry *donburi.Entry) {
		byID[components.NetPlayer.Get(entry).ID] = entry
	})
	return byID
}

func localPlayerID(e *ecs.ECS) string {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return ""
	}
	return components.Session.Get(entry).LocalID
}

// findLocalPlayer returns the local player's entity, or nil before the first
// init_player or after its entry is gone. At most one entity carries the
// LocalPlayer tag; RetagLocalPlayer maintains that across respawns.
func findLocalPlayer(e *ecs.ECS) *donburi.Entry {
	entry, ok := tags.LocalPlayer.First(e.World)
	if !ok {
		return nil
	}
	return entry
}

// RetagLocalPlayer moves the LocalPlayer tag to the entity matching the
// session's current id. Called when init_player assigns a fresh id; the
// previous corpse keeps its entity but loses the tag.
func RetagLocalPlayer(e *ecs.ECS) {
	var stale []*donburi.Entry
	tags.LocalPlayer.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		entry.RemoveComponent(tags.LocalPlayer)
	}

	id := localPlayerID(e)
	if id == "" {
		return
	}
	components.NetPlayer.Each(e.World, func(entry *donburi.Entry) {
		if components.NetPlayer.Get(entry).ID == id {
			entry.AddComponent(tags.LocalPlayer)
		}
	})
}
