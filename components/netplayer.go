package components

import (
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/yohamta/donburi"
)

// NetPlayerData holds the latest authoritative snapshot for one player id.
// Replaced wholesale each game_tick, never mutated between ticks.
type NetPlayerData struct {
	ID    string
	State messages.PlayerSnapshot
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()
