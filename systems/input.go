package systems

import (
	"math"

	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// NewInputSystem polls pointer, keyboard, and wheel state into the Input
// component and emits the continuous intents (heading, boost, cheat). The
// spectate toggle itself is consumed by the session system.
func NewInputSystem(send IntentSender) func(*ecs.ECS) {
	var (
		lastAngle float64
		haveAngle bool
		wasBoost  bool
	)

	return func(e *ecs.ECS) {
		inputEntry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		input := components.Input.Get(inputEntry)

		sessionEntry, ok := components.Session.First(e.World)
		if !ok {
			return
		}
		session := components.Session.Get(sessionEntry)
		alive := session.Mode == components.ModeAlive

		// Heading follows the pointer relative to the screen center. The
		// server only needs changes, so small jitter is filtered out.
		cx, cy := ebiten.CursorPosition()
		angle := math.Atan2(float64(cy)-float64(cfg.C.Height)/2, float64(cx)-float64(cfg.C.Width)/2)
		input.Aim = angle
		input.AimValid = true
		if alive {
			if !haveAngle || math.Abs(gamemath.AngleDifference(lastAngle, angle)) > cfg.HeadingEpsilon {
				if send.SendInputUpdate(angle) == nil {
					lastAngle = angle
					haveAngle = true
				}
			}
		}

		// Boost: key or left pointer button, edge-triggered on both edges.
		boost := anyKeyPressed(cfg.Input.Boost) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		input.Boost = boost
		if alive && boost != wasBoost {
			if send.SendBoostUpdate(boost) == nil {
				wasBoost = boost
			}
		}

		input.ToggleSpectate = inpututil.IsKeyJustPressed(cfg.Input.SpectateToggle)

		input.PanX, input.PanY = panAxes()
		_, wheelY := ebiten.Wheel()
		input.ZoomDelta = wheelY

		input.CheatBoost = false
		if arenaConfig(e).DebugMode && inpututil.IsKeyJustPressed(cfg.Input.CheatBoost) {
			input.CheatBoost = true
			_ = send.SendCheatBoost(cfg.CheatBoostMass)
		}
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func panAxes() (x, y float64) {
	if anyKeyPressed(cfg.Input.PanLeft) {
		x--
	}
	if anyKeyPressed(cfg.Input.PanRight) {
		x++
	}
	if anyKeyPressed(cfg.Input.PanUp) {
		y--
	}
	if anyKeyPressed(cfg.Input.PanDown) {
		y++
	}
	return x, y
}
