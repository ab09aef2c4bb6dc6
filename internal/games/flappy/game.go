// Package flappy implements the flapdragon gameplay engine.
// The dragon falls under gravity and flaps through gaps in bars that scroll
// toward it; each bar passed scores a point and narrows the next gap.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/flapdragon/internal/config"
	"github.com/vovakirdan/flapdragon/internal/core"
)

// Mode is the current phase of the game.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeDead
)

// String returns a lowercase name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// HUD and screen text
const (
	hudHint        = "Press SPACE to flap."
	menuTitle      = "Welcome to Flap Dragon"
	deadTitle      = "You are dead"
	playOption     = "(P) Play Game"
	playAgain      = "(P) Play Again"
	quitOption     = "(Q) Quit Game"
	playingBgColor = core.ColorNavy
)

// State is the whole game: one player, one obstacle, the score and the mode.
type State struct {
	cfg       config.Config
	rng       RandomSource
	mode      Mode
	frameTime float64 // Milliseconds not yet consumed by a physics step
	score     int
	player    Player
	obstacle  Obstacle
}

// New creates a game sitting in the menu.
func New(cfg config.Config, rng RandomSource) *State {
	s := &State{cfg: cfg, rng: rng}
	s.reset()
	s.mode = ModeMenu
	return s
}

// Restart begins a fresh run: new player, new obstacle, zero score.
func (s *State) Restart() {
	s.reset()
	s.mode = ModePlaying
}

func (s *State) reset() {
	s.player = NewPlayer(s.cfg.Player.StartX, s.cfg.Player.StartY, s.cfg.Physics)
	s.obstacle = NewObstacle(s.cfg.Field.Width, 0, s.cfg.Obstacles, s.rng)
	s.frameTime = 0
	s.score = 0
}

// Tick runs one rendered frame: it reads ctx, updates state and draws into dst.
func (s *State) Tick(ctx *core.Context, dst core.Canvas) {
	switch s.mode {
	case ModeMenu:
		s.mainMenu(ctx, dst)
	case ModePlaying:
		s.play(ctx, dst)
	case ModeDead:
		s.dead(ctx, dst)
	}
}

func (s *State) mainMenu(ctx *core.Context, dst core.Canvas) {
	s.renderMenu(dst)
	s.handleMenuAction(ctx)
}

func (s *State) dead(ctx *core.Context, dst core.Canvas) {
	s.renderDead(dst)
	s.handleMenuAction(ctx)
}

// handleMenuAction is shared by the menu and death screens.
func (s *State) handleMenuAction(ctx *core.Context) {
	switch ctx.Action {
	case core.ActionPlay:
		s.Restart()
	case core.ActionQuit:
		ctx.RequestQuit()
	}
}

func (s *State) play(ctx *core.Context, dst core.Canvas) {
	// One physics step at most per frame, no catch-up
	s.frameTime += ctx.ElapsedMS
	if s.frameTime > s.cfg.Physics.StepMS {
		s.frameTime = 0
		s.player.GravityAndMove()
	}

	if ctx.Action == core.ActionFlap {
		s.player.Flap()
	}

	s.renderPlaying(dst)

	if s.player.X > s.obstacle.X {
		s.score++
		s.obstacle = NewObstacle(s.player.X+s.cfg.Obstacles.SpawnOffset, s.score, s.cfg.Obstacles, s.rng)
	}

	if s.player.Y > s.cfg.Field.Height || s.obstacle.CollidesWith(s.player) {
		s.mode = ModeDead
	}
}

// Render draws the current mode's screen without changing any state.
func (s *State) Render(dst core.Canvas) {
	switch s.mode {
	case ModeMenu:
		s.renderMenu(dst)
	case ModePlaying:
		s.renderPlaying(dst)
	case ModeDead:
		s.renderDead(dst)
	}
}

func (s *State) renderMenu(dst core.Canvas) {
	dst.Clear(core.ColorDefault)
	dst.DrawTextCentered(5, menuTitle)
	dst.DrawTextCentered(8, playOption)
	dst.DrawTextCentered(10, quitOption)
}

func (s *State) renderPlaying(dst core.Canvas) {
	dst.Clear(playingBgColor)
	s.player.Render(dst)
	dst.DrawText(0, 0, hudHint)
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", s.score))
	s.obstacle.Render(dst, s.player.X, s.cfg.Field.Height)
}

func (s *State) renderDead(dst core.Canvas) {
	dst.Clear(core.ColorDefault)
	dst.DrawTextCentered(5, deadTitle)
	dst.DrawTextCentered(6, fmt.Sprintf("You earned %d points", s.score))
	dst.DrawTextCentered(8, playAgain)
	dst.DrawTextCentered(10, quitOption)
}

// Mode returns the current game mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the number of obstacles passed in the current run.
func (s *State) Score() int {
	return s.score
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacle returns a copy of the current obstacle.
func (s *State) Obstacle() Obstacle {
	return s.obstacle
}

// FieldSize returns the playfield dimensions.
func (s *State) FieldSize() (width, height int) {
	return s.cfg.Field.Width, s.cfg.Field.Height
}
