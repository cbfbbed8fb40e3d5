package systems

import (
	"testing"

	"github.com/charlie-adam/slitherio/components"
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func countPlayers(e *ecs.ECS) int {
	n := 0
	components.NetPlayer.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestApplyConfig(t *testing.T) {
	e := newTestECS(0.016)
	ApplyConfig(e, messages.GameConfig{MapSize: 8000, DebugMode: true})

	conf := arena(e).Config
	if conf.MapSize != 8000 || !conf.DebugMode {
		t.Errorf("config = %+v", conf)
	}
	if conf.ZoomBase != messages.DefaultZoomBase {
		t.Errorf("ZoomBase = %v, want default filled in", conf.ZoomBase)
	}
}

func TestApplyTickCreatesAndUpdates(t *testing.T) {
	e := newTestECS(0.016)
	ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{
		"a": snapshotAt(10, 20),
	}})
	if countPlayers(e) != 1 {
		t.Fatalf("players = %d, want 1", countPlayers(e))
	}

	// The same id on the next tick replaces the snapshot wholesale, no new
	// entity.
	next := snapshotAt(15, 25)
	next.Boosting = true
	ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{"a": next}})
	if countPlayers(e) != 1 {
		t.Fatalf("players = %d after update, want 1", countPlayers(e))
	}
	entry, _ := components.NetPlayer.First(e.World)
	state := components.NetPlayer.Get(entry).State
	if state.X != 15 || !state.Boosting {
		t.Errorf("snapshot not replaced: %+v", state)
	}
}

func TestApplyTickSkipsEmptyBodyFirstSighting(t *testing.T) {
	e := newTestECS(0.016)
	ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{
		"ghost": {X: 1, Y: 2},
	}})
	if countPlayers(e) != 0 {
		t.Errorf("players = %d, want 0 until a body arrives", countPlayers(e))
	}

	ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{
		"ghost": snapshotAt(1, 2),
	}})
	if countPlayers(e) != 1 {
		t.Errorf("players = %d after body arrived, want 1", countPlayers(e))
	}
}

func TestApplyTickRemovesAbsentButKeepsLocal(t *testing.T) {
	e := newTestECS(0.016)
	session(e).LocalID = "me"
	ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{
		"me":    snapshotAt(0, 0),
		"other": snapshotAt(50, 50),
	}})
	if countPlayers(e) != 2 {
		t.Fatalf("players = %d, want 2", countPlayers(e))
	}

	// Both vanish from the tick; only the local corpse survives.
	ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{}})
	if countPlayers(e) != 1 {
		t.Fatalf("players = %d, want 1", countPlayers(e))
	}
	entry, _ := components.NetPlayer.First(e.World)
	if components.NetPlayer.Get(entry).ID != "me" {
		t.Errorf("survivor = %q, want local player", components.NetPlayer.Get(entry).ID)
	}
}

func TestApplyTickPlayerCountAndLeaderboard(t *testing.T) {
	e := newTestECS(0.016)
	ApplyTick(e, messages.TickUpdate{
		Players: map[string]messages.PlayerSnapshot{
			"a": snapshotAt(0, 0),
			"b": snapshotAt(1, 1),
			"c": {X: 9, Y: 9}, // counted even without a body
		},
		Leaderboard: []messages.LeaderboardEntry{{Name: "a", Score: 3}},
	})
	if arena(e).PlayerCount != 3 {
		t.Errorf("PlayerCount = %d, want 3", arena(e).PlayerCount)
	}
	if len(arena(e).Leaderboard) != 1 || arena(e).Leaderboard[0].Name != "a" {
		t.Errorf("leaderboard = %+v", arena(e).Leaderboard)
	}
}

func TestApplyInitFoodReplaces(t *testing.T) {
	e := newTestECS(0.016)
	foodField(e).Items["stale"] = messages.FoodItem{X: 1}

	ApplyInitFood(e, map[string]messages.FoodItem{
		"f1": {X: 10, Y: 10, Value: 1},
		"f2": {X: 20, Y: 20, Value: 2, IsLoot: true},
	})

	field := foodField(e)
	if !field.Loaded {
		t.Error("Loaded not set")
	}
	if len(field.Items) != 2 {
		t.Fatalf("items = %d, want 2 (stale entries dropped)", len(field.Items))
	}
	if _, ok := field.Items["stale"]; ok {
		t.Error("stale item survived the full reload")
	}
}

func TestFoodDiffReplay(t *testing.T) {
	e := newTestECS(0.016)
	ApplyInitFood(e, map[string]messages.FoodItem{
		"f1": {X: 1},
		"f2": {X: 2},
	})

	diffs := []*messages.FoodDiff{
		{Added: map[string]messages.FoodItem{"f3": {X: 3}}, Removed: []string{"f1"}},
		{Removed: []string{"f2", "f2"}},                       // duplicate removal is a no-op
		{Removed: []string{"never-existed"}},                  // absent removal is a no-op
		{Added: map[string]messages.FoodItem{"f4": {X: 4}}},
	}
	for _, d := range diffs {
		ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{}, FoodDiff: d})
	}

	field := foodField(e)
	want := []string{"f3", "f4"}
	if len(field.Items) != len(want) {
		t.Fatalf("items = %v, want exactly %v", field.Items, want)
	}
	for _, id := range want {
		if _, ok := field.Items[id]; !ok {
			t.Errorf("item %q missing after diff replay", id)
		}
	}
}

func TestLocalTagFollowsRespawn(t *testing.T) {
	e := newTestECS(0.016)
	session(e).LocalID = "old"
	ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{
		"old": snapshotAt(0, 0),
	}})
	if entry := findLocalPlayer(e); entry == nil || components.NetPlayer.Get(entry).ID != "old" {
		t.Fatal("local tag missing after first tick")
	}

	// A respawn assigns a fresh id; the tag must move off the corpse.
	HandleSpawn(e, messages.InitPlayer{ID: "new"})
	if findLocalPlayer(e) != nil {
		t.Fatal("tag still set before the new entity exists")
	}

	ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{
		"old": snapshotAt(0, 0),
		"new": snapshotAt(5, 5),
	}})
	entry := findLocalPlayer(e)
	if entry == nil || components.NetPlayer.Get(entry).ID != "new" {
		t.Fatal("tag did not follow the respawned id")
	}
}

func TestTickWithoutFoodDiffLeavesFood(t *testing.T) {
	e := newTestECS(0.016)
	ApplyInitFood(e, map[string]messages.FoodItem{"f1": {X: 1}})
	ApplyTick(e, messages.TickUpdate{Players: map[string]messages.PlayerSnapshot{}})
	if len(foodField(e).Items) != 1 {
		t.Errorf("items = %d, want 1 untouched", len(foodField(e).Items))
	}
}
