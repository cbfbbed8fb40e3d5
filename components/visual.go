package components

import (
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/yohamta/donburi"
)

// VisualData is the client-owned, smoothed shadow of a NetPlayer, used purely
// for rendering. It converges toward the authoritative snapshot every frame.
type VisualData struct {
	X, Y        float64
	Angle       float64
	Body        []messages.Point // same ordering as the snapshot, head-first
	Initialized bool
}

var Visual = donburi.NewComponentType[VisualData]()

// SnapTo discards all interpolation state and copies the authoritative
// snapshot directly. Used on first sighting and on teleport detection.
func (v *VisualData) SnapTo(s *messages.PlayerSnapshot) {
	v.X = s.X
	v.Y = s.Y
	v.Angle = s.Angle
	v.Body = append(v.Body[:0], s.Body...)
	v.Initialized = true
}
