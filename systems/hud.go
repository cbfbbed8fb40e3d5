package systems

import (
	"fmt"
	"image/color"

	"github.com/charlie-adam/slitherio/components"
	cfg "github.com/charlie-adam/slitherio/config"
	"github.com/charlie-adam/slitherio/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	leaderboardWidth = 190
	leaderboardRowH  = 16
	hudMargin        = 10
)

// DrawLeaderboard paints the rank-ordered top list in the top-right corner.
func DrawLeaderboard(e *ecs.ECS, screen *ebiten.Image) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	board := components.Arena.Get(arenaEntry).Leaderboard
	if len(board) == 0 {
		return
	}
	rows := len(board)
	if rows > cfg.Render.LeaderboardRows {
		rows = cfg.Render.LeaderboardRows
	}

	w := screen.Bounds().Dx()
	x := float32(w - leaderboardWidth - hudMargin)
	panelH := float32((rows+1)*leaderboardRowH + 10)
	vector.DrawFilledRect(screen, x, hudMargin, leaderboardWidth, panelH, cfg.PanelFill, false)

	face := fonts.SansSmall.Get()
	text.Draw(screen, "LEADERBOARD", face, int(x)+8, hudMargin+14, cfg.Gold)
	for i := 0; i < rows; i++ {
		row := fmt.Sprintf("%d. %s", i+1, board[i].Name)
		score := fmt.Sprintf("%d", board[i].Score)
		y := hudMargin + 14 + (i+1)*leaderboardRowH
		text.Draw(screen, row, face, int(x)+8, y, cfg.White)
		scoreW := text.BoundString(face, score).Dx()
		text.Draw(screen, score, face, int(x)+leaderboardWidth-8-scoreW, y, cfg.LightGreen)
	}
}

// DrawStatus paints the small info line in the top-left corner.
func DrawStatus(e *ecs.ECS, screen *ebiten.Image) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	info := fmt.Sprintf("Players: %d", arena.PlayerCount)
	if entry := findLocalPlayer(e); entry != nil {
		state := components.NetPlayer.Get(entry).State
		info = fmt.Sprintf("Players: %d  Length: %d", arena.PlayerCount, int(state.Length))
	}
	text.Draw(screen, info, fonts.SansSmall.Get(), hudMargin, 16, cfg.LightGreen)
}

// DrawDeathOverlay paints the modal death prompt: only while DEAD and not
// spectating. While spectating only a small hint line remains.
func DrawDeathOverlay(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	switch session.Mode {
	case components.ModeSpectating:
		hint := "SPECTATING - TAB to respawn"
		face := fonts.SansSmall.Get()
		bounds := text.BoundString(face, hint)
		text.Draw(screen, hint, face, (w-bounds.Dx())/2, h-24, cfg.White)

	case components.ModeDead:
		overlay := color.RGBA{A: uint8(session.OverlayAlpha)}
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlay, false)

		title := fonts.SansTitle.Get()
		face := fonts.Sans.Get()

		msg := "YOU DIED"
		bounds := text.BoundString(title, msg)
		text.Draw(screen, msg, title, (w-bounds.Dx())/2, h/2-40, cfg.Red)

		score := fmt.Sprintf("Final score: %d", session.FinalScore)
		bounds = text.BoundString(face, score)
		text.Draw(screen, score, face, (w-bounds.Dx())/2, h/2, cfg.White)

		hint := "Respawning soon - TAB to spectate"
		bounds = text.BoundString(face, hint)
		text.Draw(screen, hint, face, (w-bounds.Dx())/2, h/2+28, cfg.LightGreen)
	}
}
