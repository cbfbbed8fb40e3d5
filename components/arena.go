package components

import (
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/yohamta/donburi"
)

// ArenaData holds connection-scoped world state: the server config, the
// leaderboard (replaced wholesale each tick) and the player count.
type ArenaData struct {
	Config      messages.GameConfig
	Leaderboard []messages.LeaderboardEntry
	PlayerCount int
}

var Arena = donburi.NewComponentType[ArenaData]()

// FoodFieldData is the id-keyed food collection. Replaced in full by
// init_food, then kept in sync purely by diffs.
type FoodFieldData struct {
	Items  map[string]messages.FoodItem
	Loaded bool
}

var FoodField = donburi.NewComponentType[FoodFieldData]()
