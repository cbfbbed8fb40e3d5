package systems

import (
	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/shared/gamemath"
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInterpolation advances every visual player toward its authoritative
// snapshot by this frame's Δt. Snapshots arrive far less often than frames
// render; this is what turns them into continuous motion.
func UpdateInterpolation(e *ecs.ECS) {
	dt := frameDT(e)
	components.NetPlayer.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Visual) {
			return
		}
		net := components.NetPlayer.Get(entry)
		visual := components.Visual.Get(entry)
		StepVisual(visual, &net.State, dt)
	})
}

// StepVisual performs one interpolation step for a single player.
//
// Body lengths are fully equalized before any blending so the index-wise
// lerp is always defined. A head divergence past the teleport threshold
// snaps the whole visual state; anything less converges through a
// frame-rate-independent exponential filter. Angles blend over the shortest
// arc so a turn through ±π never spins the long way around.
func StepVisual(v *components.VisualData, s *messages.PlayerSnapshot, dt float64) {
	if len(s.Body) == 0 {
		// Snapshot without a body: skip this frame rather than render
		// something malformed.
		return
	}
	if !v.Initialized {
		v.SnapTo(s)
		return
	}

	reconcileBody(v, len(s.Body))

	if gamemath.Dist(v.X, v.Y, s.X, s.Y) > cfg.Interp.TeleportDistance {
		v.SnapTo(s)
		return
	}

	f := gamemath.LerpFraction(cfg.Interp.Rate, dt)
	v.X = gamemath.Approach(v.X, s.X, f)
	v.Y = gamemath.Approach(v.Y, s.Y, f)
	v.Angle = gamemath.ApproachAngle(v.Angle, s.Angle, f)
	for i := range v.Body {
		v.Body[i].X = gamemath.Approach(v.Body[i].X, s.Body[i].X, f)
		v.Body[i].Y = gamemath.Approach(v.Body[i].Y, s.Body[i].Y, f)
	}
}

// reconcileBody grows or shrinks the visual body to n points within this
// frame: growth duplicates the current tail, shrinkage drops it. Points are
// never resampled.
func reconcileBody(v *components.VisualData, n int) {
	if len(v.Body) == 0 {
		v.Body = append(v.Body, messages.Point{X: v.X, Y: v.Y})
	}
	for len(v.Body) < n {
		v.Body = append(v.Body, v.Body[len(v.Body)-1])
	}
	if len(v.Body) > n {
		v.Body = v.Body[:n]
	}
}
