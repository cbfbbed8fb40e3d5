package messages

import "encoding/json"

// Wire event names. These are the server's contract and must not be renamed.
const (
	EventInitConfig = "init_config"
	EventInitFood   = "init_food"
	EventInitPlayer = "init_player"
	EventDeath      = "death"
	EventGameTick   = "game_tick"

	EventInputUpdate    = "input_update"
	EventBoostUpdate    = "boost_update"
	EventEnterSpectator = "enter_spectator"
	EventRequestRespawn = "request_respawn"
	EventCheatBoost     = "cheat_boost"
)

// Envelope wraps every websocket text message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Encode builds an Envelope around an event payload.
func Encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}

// Decode parses a raw websocket message into an Envelope.
func Decode(msg []byte) (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(msg, &env)
	return env, err
}
