package config

import "github.com/hajimehoshi/ebiten/v2"

// InputConfig maps actions to keys. Heading follows the pointer and boost
// also triggers on the left mouse button; those are wired in the input
// system itself.
type InputConfig struct {
	Boost          []ebiten.Key
	SpectateToggle ebiten.Key
	CheatBoost     ebiten.Key

	PanUp    []ebiten.Key
	PanDown  []ebiten.Key
	PanLeft  []ebiten.Key
	PanRight []ebiten.Key
}

var Input InputConfig

// HeadingEpsilon is the minimum heading change worth an input_update.
const HeadingEpsilon = 0.01

// CheatBoostMass is the mass granted per cheat_boost press (debug only).
const CheatBoostMass = 50.0

func init() {
	Input = InputConfig{
		Boost:          []ebiten.Key{ebiten.KeySpace},
		SpectateToggle: ebiten.KeyTab,
		CheatBoost:     ebiten.KeyB,

		PanUp:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		PanDown:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		PanLeft:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		PanRight: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
	}
}
