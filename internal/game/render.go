package game

import (
	"fmt"

	"github.com/vovakirdan/tui-dodger/internal/core"
)

// Visual characters for rendering
const (
	AvatarChar   = '█'
	ObstacleChar = '▓'
	ShieldChar   = '◈'
)

// Render draws the current game state to the screen, scaling the logical
// field onto the terminal cell grid. The top row and bottom row are
// reserved for the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()

	switch snap.Phase {
	case core.PhaseMenu:
		g.drawMenu(dst, snap)
		return
	case core.PhaseGameOver:
		g.drawField(dst, snap)
		g.drawHUD(dst, snap)
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case core.PhasePaused:
		g.drawField(dst, snap)
		g.drawHUD(dst, snap)
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume  |  Q to quit")
	case core.PhasePlaying:
		g.drawField(dst, snap)
		g.drawHUD(dst, snap)
	}
}

// fieldToScreen maps logical field coordinates to cell coordinates inside
// the playable band between the HUD rows.
func (g *Game) fieldToScreen(dst *core.Screen, x, y float64) (int, int) {
	bandH := dst.Height() - 2
	if bandH < 1 {
		bandH = 1
	}
	sx := int(x / g.cfg.Field.Width * float64(dst.Width()))
	sy := 1 + int(y/g.cfg.Field.Height*float64(bandH))
	return sx, sy
}

// cellSpan converts a logical size to a horizontal cell span, minimum 1.
func (g *Game) cellSpan(dst *core.Screen, size float64) int {
	span := int(size / g.cfg.Field.Width * float64(dst.Width()))
	if span < 1 {
		span = 1
	}
	return span
}

// drawField renders all live entities and the avatar.
func (g *Game) drawField(dst *core.Screen, snap Snapshot) {
	for _, p := range snap.PowerUps {
		x, y := g.fieldToScreen(dst, p.X, p.Y)
		dst.SetCell(x, y, ShieldChar, core.ColorBrightCyan)
	}

	for _, o := range snap.Obstacles {
		x, y := g.fieldToScreen(dst, o.X, o.Y)
		for i := 0; i < g.cellSpan(dst, o.Size); i++ {
			dst.SetCell(x+i, y, ObstacleChar, core.ColorBrightRed)
		}
	}

	g.drawAvatar(dst, snap)
}

// drawAvatar renders the avatar with its status coloring: gold while
// dashing, blinking while invincible, ringed while shielded.
func (g *Game) drawAvatar(dst *core.Screen, snap Snapshot) {
	av := snap.Avatar
	x, y := g.fieldToScreen(dst, av.X, av.Y)
	span := g.cellSpan(dst, av.Size)

	color := core.ColorBrightWhite
	if av.Dashing {
		color = core.ColorBrightYellow
	}

	// Invincibility blink: skip drawing the body on alternating ticks.
	if av.Invincible && !av.Dashing && (snap.Tick/3)%2 == 0 {
		color = core.ColorGray
	}

	for i := 0; i < span; i++ {
		dst.SetCell(x+i, y, AvatarChar, color)
	}

	if av.HasShield {
		dst.SetCell(x-1, y, '(', core.ColorBrightCyan)
		dst.SetCell(x+span, y, ')', core.ColorBrightCyan)
	}
}

// drawHUD renders score, best, and dash readiness on the reserved rows.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))

	bestText := fmt.Sprintf(" Best: %d ", snap.Best)
	dst.DrawTextColored(dst.Width()-len(bestText)-2, 0, bestText, core.ColorGray)

	dashInfo := "Dash Ready"
	dashColor := core.ColorBrightCyan
	if cd := snap.Avatar.DashCooldownRemaining; cd > 0 {
		dashInfo = fmt.Sprintf("Dash %.1fs", cd)
		dashColor = core.ColorGray
	}
	dst.DrawTextColored(2, dst.Height()-1, dashInfo, dashColor)

	hint := "WASD/Arrows move | Space dash | P pause"
	dst.DrawTextColored(dst.Width()-len(hint)-2, dst.Height()-1, hint, core.ColorGray)
}

// drawMenu renders the title screen.
func (g *Game) drawMenu(dst *core.Screen, snap Snapshot) {
	h := dst.Height()

	dst.DrawTextCentered(h/3, "D O D G E R")
	dst.DrawTextCentered(h/3+2, "Survive the falling blocks")
	dst.DrawTextCentered(h/3+4, "Enter to start  |  Q to quit")
	dst.DrawTextCentered(h/3+6, fmt.Sprintf("Best: %d", snap.Best))
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
