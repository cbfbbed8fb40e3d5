package systems

import (
	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawMinimap paints the fixed inset in the bottom-left corner: each
// player's recent body as a simplified trail plus a head dot, the local
// player visually distinguished.
func DrawMinimap(e *ecs.ECS, screen *ebiten.Image) {
	mapSize := arenaConfig(e).MapSize
	if mapSize <= 0 {
		return
	}

	size := float32(cfg.Render.MinimapSize)
	margin := float32(cfg.Render.MinimapMargin)
	originX := margin
	originY := float32(screen.Bounds().Dy()) - size - margin
	mapScale := float64(size) / mapSize

	vector.DrawFilledRect(screen, originX, originY, size, size, cfg.PanelFill, false)
	vector.StrokeRect(screen, originX, originY, size, size, 1, cfg.GridLine, false)

	localID := localPlayerID(e)
	hop := cfg.Render.MinimapTrailHop

	components.NetPlayer.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Visual) {
			return
		}
		visual := components.Visual.Get(entry)
		if !visual.Initialized || len(visual.Body) == 0 {
			return
		}
		net := components.NetPlayer.Get(entry)
		local := net.ID == localID

		clr := cfg.ParseHexColor(net.State.Color)
		dotRadius := float32(2)
		if local {
			clr = cfg.White
			dotRadius = 3
		}

		// Simplified trail: every hop-th point.
		prevX := originX + float32(visual.Body[0].X*mapScale)
		prevY := originY + float32(visual.Body[0].Y*mapScale)
		for i := hop; i < len(visual.Body); i += hop {
			x := originX + float32(visual.Body[i].X*mapScale)
			y := originY + float32(visual.Body[i].Y*mapScale)
			vector.StrokeLine(screen, prevX, prevY, x, y, 1, clr, false)
			prevX, prevY = x, y
		}

		hx := originX + float32(visual.X*mapScale)
		hy := originY + float32(visual.Y*mapScale)
		vector.DrawFilledCircle(screen, hx, hy, dotRadius, clr, false)
	})
}
