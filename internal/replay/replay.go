// Package replay records the frame-by-frame input of a session and re-runs
// it headless. A game whose Step is deterministic for a given seed,
// configuration and input sequence reproduces the recorded round exactly.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-anglers/internal/core"
	"github.com/vovakirdan/tui-anglers/internal/registry"
)

// ErrMismatch is returned by Verify when a re-run diverges from the recording.
var ErrMismatch = errors.New("replay: result does not match recording")

// Frame is one Step call: the frame duration and the packed input.
type Frame struct {
	Delta   time.Duration
	Held    uint32
	Actions uint32
}

// Input unpacks the frame's input.
func (f Frame) Input() core.InputFrame {
	return core.InputFrameFromBits(f.Held, f.Actions)
}

// Recording is a complete session: everything needed to re-run it plus the
// outcome it produced.
type Recording struct {
	ID        string
	GameID    string
	Seed      int64
	Config    []byte // Effective game configuration (YAML); empty if the game has none
	Frames    []Frame
	Score     int
	Won       bool
	GameOver  bool
	CreatedAt time.Time
}

// Recorder captures the frames of one round.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a game that was just reset with seed.
// The game's configuration is captured if it exposes one.
func NewRecorder(g registry.Game, seed int64) (*Recorder, error) {
	r := &Recorder{rec: Recording{GameID: g.ID(), Seed: seed}}
	if c, ok := g.(registry.Configurable); ok {
		data, err := c.ConfigYAML()
		if err != nil {
			return nil, fmt.Errorf("replay: cannot capture config: %w", err)
		}
		r.rec.Config = data
	}
	return r, nil
}

// Record appends one Step call.
func (r *Recorder) Record(in core.InputFrame, dt time.Duration) {
	held, actions := in.Bits()
	r.rec.Frames = append(r.rec.Frames, Frame{Delta: dt, Held: held, Actions: actions})
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Finish stamps the final state onto the recording and returns it.
func (r *Recorder) Finish(state core.GameState) Recording {
	rec := r.rec
	rec.Score = state.Score
	rec.Won = state.Won
	rec.GameOver = state.GameOver
	return rec
}

// Result is the outcome of a re-run.
type Result struct {
	Game  registry.Game
	State core.GameState
	Ticks int
}

// Run re-simulates a recording with a fresh game instance from the registry.
func Run(rec Recording) (Result, error) {
	g, err := registry.Create(rec.GameID)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	if len(rec.Config) > 0 {
		c, ok := g.(registry.Configurable)
		if !ok {
			return Result{}, fmt.Errorf("replay: game %q does not accept a config", rec.GameID)
		}
		if err := c.UseConfigYAML(rec.Config); err != nil {
			return Result{}, fmt.Errorf("replay: %w", err)
		}
	}

	g.Reset(core.RuntimeConfig{Seed: rec.Seed})

	res := Result{Game: g, State: g.State()}
	for _, f := range rec.Frames {
		res.State = g.Step(f.Input(), f.Delta).State
		res.Ticks++
	}
	return res, nil
}

// Verify re-runs a recording and checks it ends the way it was recorded.
func Verify(rec Recording) (Result, error) {
	res, err := Run(rec)
	if err != nil {
		return res, err
	}
	if res.State.Score != rec.Score || res.State.Won != rec.Won || res.State.GameOver != rec.GameOver {
		return res, fmt.Errorf("%w: recorded score=%d won=%v over=%v, got score=%d won=%v over=%v",
			ErrMismatch,
			rec.Score, rec.Won, rec.GameOver,
			res.State.Score, res.State.Won, res.State.GameOver)
	}
	return res, nil
}
