package systems

import (
	"math"
	"testing"

	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/shared/messages"
)

// intentRecorder counts outbound intents instead of touching a socket.
type intentRecorder struct {
	inputUpdates    []float64
	boostUpdates    []bool
	enterSpectator  int
	requestRespawn  int
	cheatBoosts     []float64
}

func (r *intentRecorder) SendInputUpdate(angle float64) error {
	r.inputUpdates = append(r.inputUpdates, angle)
	return nil
}

func (r *intentRecorder) SendBoostUpdate(boosting bool) error {
	r.boostUpdates = append(r.boostUpdates, boosting)
	return nil
}

func (r *intentRecorder) SendEnterSpectator() error {
	r.enterSpectator++
	return nil
}

func (r *intentRecorder) SendRequestRespawn() error {
	r.requestRespawn++
	return nil
}

func (r *intentRecorder) SendCheatBoost(mass float64) error {
	r.cheatBoosts = append(r.cheatBoosts, mass)
	return nil
}

func TestToggleDeadToSpectating(t *testing.T) {
	e := newTestECS(0.016)
	rec := &intentRecorder{}
	system := NewSessionSystem(rec)

	session(e).Mode = components.ModeDead
	input(e).ToggleSpectate = true
	system(e)

	if session(e).Mode != components.ModeSpectating {
		t.Errorf("mode = %v, want SPECTATING", session(e).Mode)
	}
	if rec.enterSpectator != 1 {
		t.Errorf("enter_spectator sent %d times, want 1", rec.enterSpectator)
	}
	if camera(e).TargetScale != cfg.Camera.SpectateEnterScale {
		t.Errorf("TargetScale = %v, want %v", camera(e).TargetScale, cfg.Camera.SpectateEnterScale)
	}
}

func TestToggleSpectatingToDead(t *testing.T) {
	e := newTestECS(0.016)
	rec := &intentRecorder{}
	system := NewSessionSystem(rec)

	session(e).Mode = components.ModeSpectating
	input(e).ToggleSpectate = true
	system(e)

	if session(e).Mode != components.ModeDead {
		t.Errorf("mode = %v, want DEAD until init_player confirms", session(e).Mode)
	}
	if rec.requestRespawn != 1 {
		t.Errorf("request_respawn sent %d times, want 1", rec.requestRespawn)
	}
	if camera(e).TargetScale != cfg.Camera.RespawnScale {
		t.Errorf("TargetScale = %v, want %v", camera(e).TargetScale, cfg.Camera.RespawnScale)
	}
}

func TestToggleIgnoredWhileAlive(t *testing.T) {
	e := newTestECS(0.016)
	rec := &intentRecorder{}
	system := NewSessionSystem(rec)

	session(e).Mode = components.ModeAlive
	input(e).ToggleSpectate = true
	system(e)

	if session(e).Mode != components.ModeAlive {
		t.Errorf("mode = %v, want ALIVE", session(e).Mode)
	}
	if rec.enterSpectator+rec.requestRespawn != 0 {
		t.Error("intents sent for an ignored toggle")
	}
}

func TestOneIntentPerToggleEdge(t *testing.T) {
	e := newTestECS(0.016)
	rec := &intentRecorder{}
	system := NewSessionSystem(rec)
	session(e).Mode = components.ModeDead

	// The input system raises ToggleSpectate for exactly one frame per
	// press; frames where it stays false must send nothing.
	input(e).ToggleSpectate = true
	system(e)
	input(e).ToggleSpectate = false
	system(e)
	system(e)

	if rec.enterSpectator != 1 || rec.requestRespawn != 0 {
		t.Errorf("intents = %d enter, %d respawn; want exactly 1 enter",
			rec.enterSpectator, rec.requestRespawn)
	}
}

func TestHandleDeath(t *testing.T) {
	e := newTestECS(0.016)
	session(e).Mode = components.ModeAlive
	session(e).LocalID = "me"

	HandleDeath(e, messages.DeathNotice{Score: 77})

	s := session(e)
	if s.Mode != components.ModeDead {
		t.Errorf("mode = %v, want DEAD", s.Mode)
	}
	if s.FinalScore != 77 {
		t.Errorf("FinalScore = %d, want 77", s.FinalScore)
	}
	if s.OverlayFade == nil {
		t.Error("overlay fade not armed")
	}
	drift := camera(e).DriftAngle
	if drift < -math.Pi || drift > math.Pi {
		t.Errorf("drift angle %v outside (-π, π]", drift)
	}
}

func TestDeathWhileSpectatingIgnored(t *testing.T) {
	e := newTestECS(0.016)
	session(e).Mode = components.ModeSpectating

	HandleDeath(e, messages.DeathNotice{Score: 5})

	if session(e).Mode != components.ModeSpectating {
		t.Errorf("mode = %v, want SPECTATING unchanged", session(e).Mode)
	}
	if session(e).OverlayFade != nil {
		t.Error("overlay armed for an ignored death")
	}
}

func TestHandleSpawn(t *testing.T) {
	e := newTestECS(0.016)
	s := session(e)
	s.Mode = components.ModeDead
	s.OverlayAlpha = 0.5
	camera(e).TargetScale = cfg.Camera.DeathScaleTarget

	HandleSpawn(e, messages.InitPlayer{ID: "abc123"})

	if s.Mode != components.ModeAlive || s.LocalID != "abc123" {
		t.Errorf("mode=%v id=%q, want ALIVE/abc123", s.Mode, s.LocalID)
	}
	if s.OverlayFade != nil || s.OverlayAlpha != 0 {
		t.Error("death overlay survived the respawn")
	}
	if camera(e).TargetScale != cfg.Camera.RespawnScale {
		t.Errorf("TargetScale = %v, want %v", camera(e).TargetScale, cfg.Camera.RespawnScale)
	}
}

func TestOverlayFadeAdvances(t *testing.T) {
	e := newTestECS(0.1)
	rec := &intentRecorder{}
	system := NewSessionSystem(rec)

	HandleDeath(e, messages.DeathNotice{Score: 1})
	system(e)
	if session(e).OverlayAlpha <= 0 {
		t.Errorf("OverlayAlpha = %v after one frame, want > 0", session(e).OverlayAlpha)
	}
}
