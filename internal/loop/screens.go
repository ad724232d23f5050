package loop

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/object"
)

// updateGameOver waits for confirm and starts a new round. The reset frame
// is not drawn.
func (g *Game) updateGameOver(in input.Input) bool {
	if in.IsKeyDown(input.KeyConfirm) {
		g.Reset()
		return false
	}
	return true
}

// PromptText returns the message shown after the round ended.
func (g *Game) PromptText() string {
	if len(g.Asteroids) == 0 {
		return WinText
	}
	return GameOverText
}

// drawPrompt centres the win or game over message on the display.
func (g *Game) drawPrompt(d draw.Display) {
	text := g.PromptText()
	w, h := d.MeasureText(text, FontSize)
	d.DrawText(text, d.Width()/2-w/2, d.Height()/2-h/2, FontSize)
}

// drawWorld draws bullets, asteroids and the ship.
func (g *Game) drawWorld(d draw.Display) {
	for _, b := range g.Bullets {
		d.DrawCircle(b.Pos.X, b.Pos.Y, BulletRadius)
	}
	for _, a := range g.Asteroids {
		d.DrawPolyLines(a.Pos.X, a.Pos.Y, a.Sides, a.Size, a.Rotation)
	}

	g.polygon = ShipHull(g.polygon, g.Ship)
	d.DrawTriangleLines(g.polygon[0], g.polygon[1], g.polygon[2])
}

// shipOutline is the hull in ship space, nose pointing up (-y).
var shipOutline = [3]mgl64.Vec2{
	{0, -ShipHeight / 2},
	{-ShipBase / 2, ShipHeight / 2},
	{ShipBase / 2, ShipHeight / 2},
}

// ShipHull returns the three hull vertices of s in playfield space:
// the nose first, then the two rear corners.
func ShipHull(dst []draw.Point, s object.Ship) []draw.Point {
	if cap(dst) < len(shipOutline) {
		dst = make([]draw.Point, len(shipOutline))
	}
	dst = dst[:len(shipOutline)]

	rot := mgl64.Rotate2D(mgl64.DegToRad(s.Rotation))
	for i, v := range shipOutline {
		p := rot.Mul2x1(v)
		dst[i] = draw.Point{X: s.Pos.X + p.X(), Y: s.Pos.Y + p.Y()}
	}
	return dst
}
