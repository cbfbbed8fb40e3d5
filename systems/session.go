package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// IntentSender emits outbound intents to the transport layer. The network
// client implements it; tests substitute a recorder.
type IntentSender interface {
	SendInputUpdate(angle float64) error
	SendBoostUpdate(boosting bool) error
	SendEnterSpectator() error
	SendRequestRespawn() error
	SendCheatBoost(mass float64) error
}

// NewSessionSystem returns the update system for the local player's state
// machine. Only the spectate toggle is a client-driven transition; death and
// respawn are server-driven and arrive through HandleDeath/HandleSpawn.
func NewSessionSystem(send IntentSender) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		sessionEntry, ok := components.Session.First(e.World)
		if !ok {
			return
		}
		session := components.Session.Get(sessionEntry)

		if session.OverlayFade != nil {
			alpha, done := session.OverlayFade.Update(float32(frameDT(e)))
			session.OverlayAlpha = alpha
			if done {
				session.OverlayFade = nil
			}
		}

		inputEntry, ok := components.Input.First(e.World)
		if !ok || !components.Input.Get(inputEntry).ToggleSpectate {
			return
		}

		cameraEntry, ok := components.Camera.First(e.World)
		if !ok {
			return
		}
		camera := components.Camera.Get(cameraEntry)

		switch session.Mode {
		case components.ModeDead:
			session.Mode = components.ModeSpectating
			camera.TargetScale = cfg.Camera.SpectateEnterScale
			if err := send.SendEnterSpectator(); err != nil {
				log.Printf("[session] enter_spectator: %v", err)
			}

		case components.ModeSpectating:
			// Back to DEAD until the server confirms with init_player.
			session.Mode = components.ModeDead
			camera.TargetScale = cfg.Camera.RespawnScale
			if err := send.SendRequestRespawn(); err != nil {
				log.Printf("[session] request_respawn: %v", err)
			}
		}
	}
}

// HandleDeath applies a server death notification: records the final score,
// arms a random drift heading for the camera, and starts the overlay fade.
// A death arriving while spectating is ignored; the board presence was
// already surrendered.
func HandleDeath(e *ecs.ECS, notice messages.DeathNotice) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.Mode == components.ModeSpectating {
		log.Printf("[session] death while spectating ignored (score=%d)", notice.Score)
		return
	}

	session.Mode = components.ModeDead
	session.FinalScore = notice.Score
	session.OverlayFade = gween.New(0, float32(cfg.BlackOverlay.A), 0.8, ease.OutQuad)
	session.OverlayAlpha = 0

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.DriftAngle = rand.Float64()*2*math.Pi - math.Pi
	}
	log.Printf("[session] died, score=%d", notice.Score)
}

// HandleSpawn applies an init_player: adopts the assigned id and returns to
// ALIVE with the camera zoom reset.
func HandleSpawn(e *ecs.ECS, spawn messages.InitPlayer) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	session.LocalID = spawn.ID
	session.Mode = components.ModeAlive
	session.OverlayFade = nil
	session.OverlayAlpha = 0
	RetagLocalPlayer(e)

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(cameraEntry).TargetScale = cfg.Camera.RespawnScale
	}
	log.Printf("[session] spawned as %s", spawn.ID)
}
