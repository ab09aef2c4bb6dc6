package flappy

import (
	"math"

	"github.com/vovakirdan/flapdragon/internal/config"
	"github.com/vovakirdan/flapdragon/internal/core"
)

// Player glyph and colors
const (
	PlayerChar = '@'
	PlayerFg   = core.ColorYellow
	PlayerBg   = core.ColorBlack
)

// Player is the dragon. X doubles as world distance and physics step counter.
type Player struct {
	X        int     // World position, advances by one per physics step
	Y        int     // Row, 0 is the top of the field
	Velocity float64 // Vertical speed, negative is up

	physics config.Physics
}

// NewPlayer creates a player at rest at the given position.
func NewPlayer(x, y int, physics config.Physics) Player {
	return Player{
		X:       x,
		Y:       y,
		physics: physics,
	}
}

// GravityAndMove performs one physics step.
// Y is clamped at the top edge only; leaving the bottom is the caller's concern.
func (p *Player) GravityAndMove() {
	p.Velocity = math.Min(p.Velocity+p.physics.Gravity, p.physics.MaxFallSpeed)

	p.Y += int(p.Velocity)
	p.X++
	p.Y = core.Max(p.Y, 0)
}

// Flap sets the velocity to the flap impulse, whatever it was before.
func (p *Player) Flap() {
	p.Velocity = p.physics.FlapImpulse
}

// Render draws the player at the left edge; the world scrolls around it.
func (p Player) Render(dst core.Canvas) {
	dst.SetCell(0, p.Y, PlayerFg, PlayerBg, PlayerChar)
}
