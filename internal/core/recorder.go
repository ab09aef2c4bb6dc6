package core

import "fmt"

// Recorder is a Canvas that keeps every draw call as a readable command.
// Tests use it to compare draw sequences without going through a terminal.
type Recorder struct {
	Commands []string
}

var _ Canvas = (*Recorder)(nil)

// Clear records a clear command.
func (r *Recorder) Clear(bg Color) {
	r.Commands = append(r.Commands, fmt.Sprintf("clear bg=%d", bg))
}

// SetCell records a glyph command.
func (r *Recorder) SetCell(x, y int, fg, bg Color, ch rune) {
	r.Commands = append(r.Commands, fmt.Sprintf("cell %d,%d fg=%d bg=%d %q", x, y, fg, bg, ch))
}

// DrawText records a text command.
func (r *Recorder) DrawText(x, y int, text string) {
	r.Commands = append(r.Commands, fmt.Sprintf("text %d,%d %q", x, y, text))
}

// DrawTextCentered records a centered text command.
func (r *Recorder) DrawTextCentered(y int, text string) {
	r.Commands = append(r.Commands, fmt.Sprintf("centered %d %q", y, text))
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}
