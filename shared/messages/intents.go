package messages

// InputUpdate carries the player's desired heading in radians.
type InputUpdate struct {
	Angle float64 `json:"angle"`
}

// BoostUpdate is edge-triggered on boost press and release.
type BoostUpdate struct {
	Boosting bool `json:"boosting"`
}

// CheatBoost is a debug-only mass grant, gated behind a key binding and the
// server's own debug flag.
type CheatBoost struct {
	Mass float64 `json:"mass"`
}
