package systems

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/fonts"
	"github.com/charlie-adam/slitherio/shared/gamemath"
	"github.com/charlie-adam/slitherio/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// whiteSubImage is the 1x1 texture used for path triangles.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Reusable buffers for path stroking to avoid per-frame allocations.
var (
	strokeVertices []ebiten.Vertex
	strokeIndices  []uint16
)

// viewport captures the camera transform for one frame.
type viewport struct {
	cx, cy float64 // camera world position (screen center)
	scale  float64
	w, h   float64 // screen size in pixels
}

func currentViewport(e *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return viewport{}, false
	}
	camera := components.Camera.Get(entry)
	scale := camera.Scale
	if scale <= 0 {
		scale = 1
	}
	return viewport{
		cx:    camera.Position.X,
		cy:    camera.Position.Y,
		scale: scale,
		w:     float64(screen.Bounds().Dx()),
		h:     float64(screen.Bounds().Dy()),
	}, true
}

func (v viewport) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.cx)*v.scale + v.w/2), float32((y-v.cy)*v.scale + v.h/2)
}

// worldBounds returns the visible world rectangle plus margin.
func (v viewport) worldBounds(margin float64) (minX, minY, maxX, maxY float64) {
	halfW := v.w / 2 / v.scale
	halfH := v.h / 2 / v.scale
	return v.cx - halfW - margin, v.cy - halfH - margin,
		v.cx + halfW + margin, v.cy + halfH + margin
}

// DrawArena paints the world border and the background grid, clipped to the
// visible world rectangle.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentViewport(e, screen)
	if !ok {
		return
	}
	mapSize := arenaConfig(e).MapSize
	minX, minY, maxX, maxY := view.worldBounds(0)

	// Grid lines, only those crossing the viewport.
	step := cfg.Render.GridStep
	x0 := math.Max(0, math.Floor(minX/step)*step)
	x1 := math.Min(mapSize, maxX)
	y0 := math.Max(0, math.Floor(minY/step)*step)
	y1 := math.Min(mapSize, maxY)

	for x := x0; x <= x1; x += step {
		sx, sy0 := view.toScreen(x, math.Max(0, minY))
		_, sy1 := view.toScreen(x, math.Min(mapSize, maxY))
		vector.StrokeLine(screen, sx, sy0, sx, sy1, 1, cfg.GridLine, false)
	}
	for y := y0; y <= y1; y += step {
		sx0, sy := view.toScreen(math.Max(0, minX), y)
		sx1, _ := view.toScreen(math.Min(mapSize, maxX), y)
		vector.StrokeLine(screen, sx0, sy, sx1, sy, 1, cfg.GridLine, false)
	}

	// World border.
	bx, by := view.toScreen(0, 0)
	size := float32(mapSize * view.scale)
	vector.StrokeRect(screen, bx, by, size, size, 4, cfg.BorderStroke, true)
}

// DrawFood paints the food field. Loot pellets pulse on a time sinusoid and
// carry a glow; everything off-screen is culled before any draw work.
func DrawFood(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentViewport(e, screen)
	if !ok {
		return
	}
	fieldEntry, ok := components.FoodField.First(e.World)
	if !ok {
		return
	}
	field := components.FoodField.Get(fieldEntry)

	var elapsed float64
	if clockEntry, ok := components.Clock.First(e.World); ok {
		elapsed = components.Clock.Get(clockEntry).Elapsed
	}

	minX, minY, maxX, maxY := view.worldBounds(32)
	pulse := math.Sin(elapsed*cfg.Render.LootPulseSpeed) * cfg.Render.LootPulseRange

	for _, item := range field.Items {
		if item.X < minX || item.X > maxX || item.Y < minY || item.Y > maxY {
			continue
		}
		sx, sy := view.toScreen(item.X, item.Y)
		clr := cfg.ParseHexColor(item.Color)

		if item.IsLoot {
			radius := float32((8 + pulse) * view.scale)
			glow := clr
			glow.A = 70
			vector.DrawFilledCircle(screen, sx, sy, radius*2, glow, true)
			vector.DrawFilledCircle(screen, sx, sy, radius, clr, true)
			continue
		}
		vector.DrawFilledCircle(screen, sx, sy, float32(4*view.scale), clr, false)
	}
}

// DrawPlayers renders every visual player: shared centerline stroke, skin
// decoration, name label, and the debug substitutes when the server runs in
// debug mode.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentViewport(e, screen)
	if !ok {
		return
	}
	debugMode := arenaConfig(e).DebugMode
	cullRadius := view.w/2/view.scale + cfg.Render.CullMargin

	components.NetPlayer.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Visual) {
			return
		}
		visual := components.Visual.Get(entry)
		if !visual.Initialized || len(visual.Body) == 0 {
			return
		}
		if gamemath.Dist(visual.X, visual.Y, view.cx, view.cy) > cullRadius {
			return
		}

		net := components.NetPlayer.Get(entry)
		drawPlayer(screen, view, &net.State, visual, debugMode)
	})
}

func drawPlayer(screen *ebiten.Image, view viewport, snap *messages.PlayerSnapshot, visual *components.VisualData, debugMode bool) {
	radius := snap.Radius
	if radius <= 0 {
		radius = gamemath.VisualRadius(snap.Length)
	}
	baseColor := cfg.ParseHexColor(snap.Color)

	if debugMode {
		drawDebugBody(screen, view, snap, visual, radius)
	} else {
		drawBodyPath(screen, view, visual, radius, baseColor)
		switch snap.Skin {
		case messages.SkinStripe:
			drawStripes(screen, view, visual, radius, shade(baseColor, 0.55))
		case messages.SkinSpot:
			drawSpots(screen, view, visual, radius, shade(baseColor, 0.55))
		}
	}

	hx, hy := view.toScreen(visual.X, visual.Y)

	if snap.Boosting {
		glow := color.RGBA{R: 255, G: 255, B: 255, A: 60}
		vector.DrawFilledCircle(screen, hx, hy, float32(radius*1.8*view.scale), glow, true)
	}

	// Eye dot on the heading so the snake reads as facing somewhere.
	eyeDist := radius * 0.45 * view.scale
	ex := hx + float32(math.Cos(visual.Angle)*eyeDist)
	ey := hy + float32(math.Sin(visual.Angle)*eyeDist)
	vector.DrawFilledCircle(screen, ex, ey, float32(radius*0.3*view.scale), cfg.White, true)

	drawNameLabel(screen, snap.Name, hx, hy+float32(radius*view.scale)+16)

	if debugMode && snap.State != "" {
		drawLabelOutlined(screen, snap.State, hx, hy-float32(radius*view.scale)-8, cfg.Gold)
	}
}

// drawBodyPath strokes the quadratic-smoothed centerline every skin shares.
func drawBodyPath(screen *ebiten.Image, view viewport, visual *components.VisualData, radius float64, clr color.RGBA) {
	pts := visual.Body
	hx, hy := view.toScreen(pts[0].X, pts[0].Y)
	if len(pts) < 2 {
		vector.DrawFilledCircle(screen, hx, hy, float32(radius*view.scale), clr, true)
		return
	}

	var path vector.Path
	path.MoveTo(hx, hy)
	for i := 1; i < len(pts)-1; i++ {
		px, py := view.toScreen(pts[i].X, pts[i].Y)
		mx, my := view.toScreen((pts[i].X+pts[i+1].X)/2, (pts[i].Y+pts[i+1].Y)/2)
		path.QuadTo(px, py, mx, my)
	}
	tx, ty := view.toScreen(pts[len(pts)-1].X, pts[len(pts)-1].Y)
	path.LineTo(tx, ty)

	op := &vector.StrokeOptions{}
	op.Width = float32(2 * radius * view.scale)
	op.LineJoin = vector.LineJoinRound
	op.LineCap = vector.LineCapRound

	strokeVertices, strokeIndices = path.AppendVerticesAndIndicesForStroke(strokeVertices[:0], strokeIndices[:0], op)
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	for i := range strokeVertices {
		strokeVertices[i].SrcX = 1
		strokeVertices[i].SrcY = 1
		strokeVertices[i].ColorR = r
		strokeVertices[i].ColorG = g
		strokeVertices[i].ColorB = b
		strokeVertices[i].ColorA = 1
	}
	screen.DrawTriangles(strokeVertices, strokeIndices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawStripes adds perpendicular cross-ties over the base stroke.
func drawStripes(screen *ebiten.Image, view viewport, visual *components.VisualData, radius float64, clr color.RGBA) {
	pts := visual.Body
	for i := 2; i < len(pts)-1; i += 4 {
		dx := pts[i+1].X - pts[i-1].X
		dy := pts[i+1].Y - pts[i-1].Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Perpendicular to the local direction.
		px := -dy / length * radius * 0.85
		py := dx / length * radius * 0.85
		x0, y0 := view.toScreen(pts[i].X-px, pts[i].Y-py)
		x1, y1 := view.toScreen(pts[i].X+px, pts[i].Y+py)
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(radius*0.5*view.scale), clr, true)
	}
}

// drawSpots adds periodic filled circles over the base stroke.
func drawSpots(screen *ebiten.Image, view viewport, visual *components.VisualData, radius float64, clr color.RGBA) {
	pts := visual.Body
	for i := 2; i < len(pts); i += 5 {
		sx, sy := view.toScreen(pts[i].X, pts[i].Y)
		vector.DrawFilledCircle(screen, sx, sy, float32(radius*0.45*view.scale), clr, true)
	}
}

// drawDebugBody substitutes raw per-point circles for the cosmetic skins,
// revealing the true collision geometry, plus the hitbox ring and any
// server-supplied sensor rays.
func drawDebugBody(screen *ebiten.Image, view viewport, snap *messages.PlayerSnapshot, visual *components.VisualData, radius float64) {
	clr := cfg.ParseHexColor(snap.Color)
	clr.A = 160
	for _, pt := range visual.Body {
		sx, sy := view.toScreen(pt.X, pt.Y)
		vector.DrawFilledCircle(screen, sx, sy, float32(radius*view.scale), clr, false)
	}

	hx, hy := view.toScreen(visual.X, visual.Y)
	hitbox := float32(gamemath.HitboxRadius(snap.Length) * view.scale)
	vector.StrokeCircle(screen, hx, hy, hitbox, 2, cfg.Red, true)

	for _, line := range snap.DebugLines {
		x0, y0 := view.toScreen(line.X, line.Y)
		x1, y1 := view.toScreen(line.TX, line.TY)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, parseDebugColor(line.Color), false)
	}
}

// drawNameLabel renders a name below the body with a stroke-then-fill
// outline so it stays legible over any background.
func drawNameLabel(screen *ebiten.Image, name string, cx, cy float32) {
	if name == "" {
		return
	}
	drawLabelOutlined(screen, name, cx, cy, cfg.White)
}

func drawLabelOutlined(screen *ebiten.Image, label string, cx, cy float32, clr color.RGBA) {
	face := fonts.SansSmall.Get()
	bounds := text.BoundString(face, label)
	x := int(cx) - bounds.Dx()/2
	y := int(cy)

	for _, off := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, label, face, x+off[0], y+off[1], cfg.Black)
	}
	text.Draw(screen, label, face, x, y, clr)
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// parseDebugColor handles the looser color strings the server uses for
// sensor rays: "#rrggbb", "rgba(r,g,b,a)", or a few CSS names.
func parseDebugColor(s string) color.RGBA {
	switch {
	case strings.HasPrefix(s, "#"):
		return cfg.ParseHexColor(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[5:len(s)-1], ",")
		if len(parts) != 4 {
			return cfg.White
		}
		r, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
		g, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
		b, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
		a, _ := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a * 255)}
	case s == "cyan":
		return color.RGBA{G: 255, B: 255, A: 255}
	case s == "red":
		return cfg.Red
	case s == "green":
		return color.RGBA{G: 255, A: 255}
	default:
		return cfg.White
	}
}
