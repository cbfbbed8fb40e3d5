package systems

import (
	"math"

	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/shared/gamemath"
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera drives the viewport in whichever of the three modes the
// session state machine selects: follow while alive, a decorative drift
// while dead, free-fly while spectating.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	dt := frameDT(e)

	switch session.Mode {
	case components.ModeAlive:
		followLocalPlayer(e, camera, dt)
	case components.ModeDead:
		driftCamera(camera, dt)
	case components.ModeSpectating:
		freeFlyCamera(e, camera, dt)
	}
}

func followLocalPlayer(e *ecs.ECS, camera *components.CameraData, dt float64) {
	entry := findLocalPlayer(e)
	if entry == nil || !entry.HasComponent(components.Visual) {
		return
	}
	visual := components.Visual.Get(entry)
	if !visual.Initialized {
		return
	}

	// Respawns and teleports put the head far from the camera; snap instead
	// of sweeping across the map.
	if gamemath.Dist(camera.Position.X, camera.Position.Y, visual.X, visual.Y) > cfg.Camera.SnapDistance {
		camera.Position.X = visual.X
		camera.Position.Y = visual.Y
	} else {
		f := gamemath.LerpFraction(cfg.Camera.FollowRate, dt)
		camera.Position.X = gamemath.Approach(camera.Position.X, visual.X, f)
		camera.Position.Y = gamemath.Approach(camera.Position.Y, visual.Y, f)
	}

	net := components.NetPlayer.Get(entry)
	conf := arenaConfig(e)
	camera.TargetScale = ZoomTarget(net.State.Length, conf.ZoomBase, conf.ZoomDampener)
	smoothScale(camera, cfg.Camera.AliveScaleRate, dt)
}

func driftCamera(camera *components.CameraData, dt float64) {
	camera.Position.X += math.Cos(camera.DriftAngle) * cfg.Camera.DeathDriftSpeed * dt
	camera.Position.Y += math.Sin(camera.DriftAngle) * cfg.Camera.DeathDriftSpeed * dt
	camera.TargetScale = cfg.Camera.DeathScaleTarget
	smoothScale(camera, cfg.Camera.DeathScaleRate, dt)
}

func freeFlyCamera(e *ecs.ECS, camera *components.CameraData, dt float64) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	// Panning scales with 1/zoom so movement feels constant-speed on screen
	// at every zoom level.
	scale := camera.Scale
	if scale <= 0 {
		scale = 1
	}
	camera.Position.X += input.PanX * cfg.Camera.PanSpeed * dt / scale
	camera.Position.Y += input.PanY * cfg.Camera.PanSpeed * dt / scale

	if input.ZoomDelta != 0 {
		camera.TargetScale = clampScale(camera.TargetScale + input.ZoomDelta*cfg.Camera.WheelZoomStep)
	}
	smoothScale(camera, cfg.Camera.SpectateScaleRate, dt)
}

// ZoomTarget maps authoritative length to the follow-mode zoom target:
// monotonically decreasing so bigger players see more map, floored so the
// view never becomes unusably close.
func ZoomTarget(length, zoomBase, zoomDampener float64) float64 {
	target := zoomBase / (1 + length/zoomDampener)
	if target < cfg.Camera.ScaleFloor {
		return cfg.Camera.ScaleFloor
	}
	return target
}

// smoothScale is the one scale-smoothing law shared by all three modes.
func smoothScale(camera *components.CameraData, rate, dt float64) {
	camera.Scale = gamemath.Approach(camera.Scale, camera.TargetScale, gamemath.LerpFraction(rate, dt))
}

func clampScale(s float64) float64 {
	if s < cfg.Camera.ScaleMin {
		return cfg.Camera.ScaleMin
	}
	if s > cfg.Camera.ScaleMax {
		return cfg.Camera.ScaleMax
	}
	return s
}

func arenaConfig(e *ecs.ECS) messages.GameConfig {
	entry, ok := components.Arena.First(e.World)
	if !ok {
		conf := messages.GameConfig{}
		conf.ApplyDefaults()
		return conf
	}
	return components.Arena.Get(entry).Config
}
