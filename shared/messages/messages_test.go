package messages

import (
	"encoding/json"
	"testing"
)

// tickFixture is a trimmed game_tick payload as the server serializes it.
const tickFixture = `{
	"players": {
		"p1": {
			"x": 120.5, "y": -40.25, "angle": 1.57,
			"length": 42, "radius": 8,
			"color": "#ff8800", "skin": "stripe", "name": "wormy",
			"boosting": true,
			"body": [{"x": 120.5, "y": -40.25}, {"x": 118, "y": -39}]
		}
	},
	"leaderboard": [
		{"name": "wormy", "score": 42},
		{"name": "other", "score": 10}
	],
	"food_diff": {
		"added": {"f9": {"x": 1, "y": 2, "color": "#00ff00", "value": 1, "is_loot": true}},
		"removed": ["f1", "f2"]
	}
}`

func TestDecodeGameTick(t *testing.T) {
	var tick TickUpdate
	if err := json.Unmarshal([]byte(tickFixture), &tick); err != nil {
		t.Fatalf("unmarshal tick: %v", err)
	}

	p, ok := tick.Players["p1"]
	if !ok {
		t.Fatal("player p1 missing")
	}
	if p.X != 120.5 || p.Y != -40.25 {
		t.Errorf("head = (%v, %v), want (120.5, -40.25)", p.X, p.Y)
	}
	if !p.Boosting || p.Skin != SkinStripe || p.Name != "wormy" {
		t.Errorf("unexpected player fields: %+v", p)
	}
	if len(p.Body) != 2 || p.Body[0].X != 120.5 {
		t.Errorf("body = %+v", p.Body)
	}
	if len(tick.Leaderboard) != 2 || tick.Leaderboard[0].Score != 42 {
		t.Errorf("leaderboard = %+v", tick.Leaderboard)
	}
	if tick.FoodDiff == nil {
		t.Fatal("food_diff missing")
	}
	if item := tick.FoodDiff.Added["f9"]; !item.IsLoot || item.Color != "#00ff00" {
		t.Errorf("added food = %+v", item)
	}
	if len(tick.FoodDiff.Removed) != 2 {
		t.Errorf("removed = %v", tick.FoodDiff.Removed)
	}
}

func TestDecodeTickWithoutFoodDiff(t *testing.T) {
	var tick TickUpdate
	if err := json.Unmarshal([]byte(`{"players": {}, "leaderboard": []}`), &tick); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tick.FoodDiff != nil {
		t.Errorf("FoodDiff = %+v, want nil", tick.FoodDiff)
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	raw, err := Encode(EventInputUpdate, InputUpdate{Angle: -2.5})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Event != EventInputUpdate {
		t.Errorf("event = %q, want %q", env.Event, EventInputUpdate)
	}
	var intent InputUpdate
	if err := json.Unmarshal(env.Data, &intent); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if intent.Angle != -2.5 {
		t.Errorf("angle = %v, want -2.5", intent.Angle)
	}
}

func TestGameConfigDefaults(t *testing.T) {
	var conf GameConfig
	if err := json.Unmarshal([]byte(`{"MAP_SIZE": 3000, "DEBUG_MODE": true}`), &conf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	conf.ApplyDefaults()
	if conf.MapSize != 3000 {
		t.Errorf("MapSize = %v, want 3000", conf.MapSize)
	}
	if !conf.DebugMode {
		t.Error("DebugMode not set")
	}
	if conf.ZoomBase != DefaultZoomBase || conf.ZoomDampener != DefaultZoomDampener {
		t.Errorf("zoom defaults = %v/%v, want %v/%v",
			conf.ZoomBase, conf.ZoomDampener, DefaultZoomBase, DefaultZoomDampener)
	}
}
