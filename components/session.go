package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Mode is the local player's state machine value. Exactly one holds at any
// instant.
type Mode int

const (
	ModeAlive Mode = iota
	ModeDead
	ModeSpectating
)

func (m Mode) String() string {
	switch m {
	case ModeAlive:
		return "ALIVE"
	case ModeDead:
		return "DEAD"
	case ModeSpectating:
		return "SPECTATING"
	}
	return "UNKNOWN"
}

// SessionData tracks the local player across the connection: id, mode, and
// the death overlay fade.
type SessionData struct {
	Mode       Mode
	LocalID    string
	FinalScore int

	// OverlayFade drives the death overlay alpha, armed on death.
	OverlayFade  *gween.Tween
	OverlayAlpha float32
}

var Session = donburi.NewComponentType[SessionData]()
