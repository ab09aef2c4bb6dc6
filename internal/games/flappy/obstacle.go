package flappy

import (
	"github.com/vovakirdan/flapdragon/internal/config"
	"github.com/vovakirdan/flapdragon/internal/core"
)

// Obstacle glyph and colors
const (
	ObstacleChar = '|'
	ObstacleFg   = core.ColorRed
	ObstacleBg   = core.ColorBlack
)

// RandomSource picks gap positions. *math/rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Obstacle is a vertical bar with a passable gap.
// It is never mutated after construction; passing it replaces it.
type Obstacle struct {
	X         int // World position of the bar
	GapCenter int // Row at the middle of the gap
	GapSize   int // Height of the gap
}

// NewObstacle creates an obstacle at world position x.
// The gap center is uniform over the configured band and the gap narrows with score.
func NewObstacle(x, score int, cfg config.Obstacles, rng RandomSource) Obstacle {
	span := cfg.GapCenterMax - cfg.GapCenterMin + 1
	return Obstacle{
		X:         x,
		GapCenter: cfg.GapCenterMin + rng.Intn(span),
		GapSize:   GapSize(score, cfg),
	}
}

// GapSize returns the gap height for a given score.
func GapSize(score int, cfg config.Obstacles) int {
	return core.Max(cfg.MinGapSize, cfg.MaxGapSize-score*cfg.GapShrink)
}

// gapBounds returns the rows bordering the gap.
// Rendering and collision share them so top and bottom bars stay symmetric.
func (o Obstacle) gapBounds() (top, bottom int) {
	half := o.GapSize / 2
	return o.GapCenter - half, o.GapCenter + half
}

// Render draws the bar relative to the player's world position.
func (o Obstacle) Render(dst core.Canvas, playerX, fieldHeight int) {
	screenX := o.X - playerX
	top, bottom := o.gapBounds()

	for y := 0; y < top; y++ {
		dst.SetCell(screenX, y, ObstacleFg, ObstacleBg, ObstacleChar)
	}
	for y := bottom; y < fieldHeight; y++ {
		dst.SetCell(screenX, y, ObstacleFg, ObstacleBg, ObstacleChar)
	}
}

// CollidesWith reports whether the player is inside the bar.
// Only the exact column is checked; a player that skips over X never collides.
func (o Obstacle) CollidesWith(p Player) bool {
	if p.X != o.X {
		return false
	}
	top, bottom := o.gapBounds()
	return p.Y < top || p.Y > bottom
}
