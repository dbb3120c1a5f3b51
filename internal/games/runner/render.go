package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '●'
	PlayerDuckChar = '▬'
	HighChar       = '█'
	LowChar        = '▓'
	GroundChar     = '═'
)

// hudRows is the number of rows above the playfield.
const hudRows = 2

// Render draws the current game state to the screen. The playfield is
// scaled from world units to whatever cell area is left below the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundY := dst.Height() - 1
	fieldRows := groundY - hudRows
	if fieldRows > 0 {
		sx := float64(dst.Width()) / g.cfg.Playfield.Width
		sy := float64(fieldRows) / g.cfg.Playfield.Height

		dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorGray)

		for _, o := range g.state.Obstacles {
			glyph, color := HighChar, core.ColorRed
			if o.Low {
				glyph, color = LowChar, core.ColorBrightRed
			}
			dst.DrawRect(g.toCells(o.Box(), sx, sy, fieldRows), glyph, color)
		}

		g.drawPlayer(dst, sx, sy, fieldRows)
	}

	g.drawHUD(dst)

	switch {
	case g.state.Phase == PhaseNotStarted:
		g.drawCenteredMessage(dst, g.Title(),
			"Press any key to start",
			"Space: jump  Down: duck  Up: stand",
			fmt.Sprintf("B: power-up (%d coins)", g.state.Economy.Cost()))
	case g.state.Phase == PhaseGameOver:
		e := &g.state.Economy
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d", e.Score),
			fmt.Sprintf("Best: %d", e.BestScore),
			fmt.Sprintf("Coins: %d", e.Coins),
			"Press any key to restart")
	case g.state.Paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// toCells maps a world box into the playfield area, clipped above the ground.
func (g *Game) toCells(b core.Box, sx, sy float64, fieldRows int) core.Rect {
	r := b.Scale(sx, sy)
	if r.Bottom() > fieldRows {
		r.H = core.Max(0, fieldRows-r.Y)
	}
	r.Y += hudRows
	return r
}

// drawPlayer renders the player, flattened while ducking and gold while powered up.
func (g *Game) drawPlayer(dst *core.Screen, sx, sy float64, fieldRows int) {
	p := &g.state.Player

	glyph := PlayerChar
	if p.Ducking {
		glyph = PlayerDuckChar
	}
	color := core.ColorTeal
	if p.PowerUp {
		color = core.ColorGold
	}

	dst.DrawRect(g.toCells(p.Box(), sx, sy, fieldRows), glyph, color)
}

// drawHUD renders score, best score, coins and power-ups.
func (g *Game) drawHUD(dst *core.Screen) {
	e := &g.state.Economy
	w := dst.Width()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", e.Score))
	best := fmt.Sprintf("Best: %d", e.BestScore)
	dst.DrawText(w-len(best)-1, 0, best)

	dst.DrawTextColored(1, 1, fmt.Sprintf("Coins: %d", e.Coins), core.ColorGold)
	powerUps := fmt.Sprintf("Power-ups: %d", e.PowerUpsAvailable)
	dst.DrawText(w-len(powerUps)-1, 1, powerUps)

	if g.difficulty.IsEnabled() && g.state.Phase == PhaseRunning {
		dst.DrawTextCentered(0, fmt.Sprintf("Spd: %.0f", g.Speed()))
	}
	if g.state.Player.PowerUp {
		label := "POWER-UP"
		if e.PowerUpRemaining != Unlimited {
			label = fmt.Sprintf("POWER-UP %ds", e.PowerUpRemaining/core.Max(1, g.runtime.TickRate))
		}
		dst.DrawTextColored((w-len(label))/2, 1, label, core.ColorGold)
	}
}

// drawCenteredMessage draws a boxed block of lines in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4

	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}
