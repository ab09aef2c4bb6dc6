package flappy

import (
	"github.com/vovakirdan/flapdragon/internal/config"
	"github.com/vovakirdan/flapdragon/internal/core"
)

// stubRand always returns the same offset, capped to the requested range.
type stubRand struct {
	value int
	calls []int
}

func (r *stubRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if r.value >= n {
		return n - 1
	}
	return r.value
}

// centeredRand makes every gap center land on row 25 with the default band.
func centeredRand() *stubRand {
	return &stubRand{value: 15}
}

func newTestState() *State {
	return New(config.Default(), centeredRand())
}

func tick(s *State, action core.Action, elapsedMS float64) *core.Context {
	ctx := core.NewContext(action, elapsedMS)
	s.Tick(ctx, &core.Recorder{})
	return ctx
}
