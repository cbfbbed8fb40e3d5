package messages

// GameConfig is sent once per connection via init_config. Zoom constants are
// server-tuned; missing fields fall back to the defaults below.
type GameConfig struct {
	MapSize      float64 `json:"MAP_SIZE"`
	DebugMode    bool    `json:"DEBUG_MODE"`
	ZoomBase     float64 `json:"ZOOM_BASE"`
	ZoomDampener float64 `json:"ZOOM_DAMPENER"`
}

const (
	DefaultMapSize      = 5000.0
	DefaultZoomBase     = 1.8
	DefaultZoomDampener = 2500.0
)

// ApplyDefaults fills zero-valued fields the server omitted.
func (c *GameConfig) ApplyDefaults() {
	if c.MapSize <= 0 {
		c.MapSize = DefaultMapSize
	}
	if c.ZoomBase <= 0 {
		c.ZoomBase = DefaultZoomBase
	}
	if c.ZoomDampener <= 0 {
		c.ZoomDampener = DefaultZoomDampener
	}
}

// Point is one body sample in world coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DebugLine is a server-computed AI sensor ray, present only in debug mode.
type DebugLine struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	TX    float64 `json:"tx"`
	TY    float64 `json:"ty"`
	Color string  `json:"color"`
}

// PlayerSnapshot is one player's authoritative state within a game_tick.
// Body points are ordered head-first. The client never mutates a snapshot;
// each tick replaces the previous one wholesale.
type PlayerSnapshot struct {
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Angle      float64     `json:"angle"`
	Length     float64     `json:"length"`
	Radius     float64     `json:"radius,omitempty"`
	Color      string      `json:"color"`
	Skin       string      `json:"skin"`
	Name       string      `json:"name"`
	Boosting   bool        `json:"boosting"`
	Body       []Point     `json:"body"`
	DebugLines []DebugLine `json:"debug_lines,omitempty"`
	State      string      `json:"state,omitempty"`
}

// Skin tags as serialized by the server.
const (
	SkinSolid  = "solid"
	SkinStripe = "stripe"
	SkinSpot   = "spot"
)

// FoodItem is a single pellet. Loot pellets (dropped by deaths) pulse and
// glow client-side.
type FoodItem struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color"`
	Value  float64 `json:"value"`
	IsLoot bool    `json:"is_loot"`
}

// FoodDiff is the incremental food delta carried by game_tick. Added and
// removed ids are disjoint by construction.
type FoodDiff struct {
	Added   map[string]FoodItem `json:"added"`
	Removed []string            `json:"removed"`
}

// LeaderboardEntry is one rank-ordered row, replaced wholesale each tick.
type LeaderboardEntry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// TickUpdate is the recurring game_tick payload.
type TickUpdate struct {
	Players     map[string]PlayerSnapshot `json:"players"`
	Leaderboard []LeaderboardEntry        `json:"leaderboard"`
	FoodDiff    *FoodDiff                 `json:"food_diff,omitempty"`
}

// InitPlayer announces the local player's (re)birth and assigned id.
type InitPlayer struct {
	ID string `json:"id"`
}

// DeathNotice carries the local player's final score.
type DeathNotice struct {
	Score int `json:"score"`
}
