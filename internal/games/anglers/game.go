// Package anglers implements a side-scrolling shooter: the player's ship holds
// the left side of the screen and shoots down anglerfish drifting in from the
// right before the clock runs out.
package anglers

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-anglers/internal/config"
	"github.com/vovakirdan/tui-anglers/internal/core"
	"github.com/vovakirdan/tui-anglers/internal/registry"
)

// GameID is the registry identifier of the shooter.
const GameID = "anglers"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to new worlds. Nil discards output.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a World to the platform's game interface: it loads the
// configuration, converts frame durations and handles pausing.
type Game struct {
	world    *World
	cfg      config.AnglersConfig
	fixedCfg bool // cfg was supplied explicitly and must not be reloaded
	runtime  core.RuntimeConfig
	paused   bool
}

// New creates a new game instance that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to an explicit configuration.
func NewWithConfig(cfg config.AnglersConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Anglers"
}

// Reset initializes or restarts the game with a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	if !g.fixedCfg {
		cfg, err := config.Load(configPath)
		if err != nil && logger != nil {
			logger.Warn("using default config", "error", err)
		}
		config.ApplyPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.world = NewWorld(g.cfg, runtime.Seed, logger)
}

// Step advances the simulation by the frame duration dt.
// Before the first Reset it does nothing.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}
	if in.Has(core.ActionPause) && !g.world.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Update(durationMs(dt), in)
	return core.StepResult{State: g.State()}
}

// durationMs converts a frame duration to fractional milliseconds.
func durationMs(dt time.Duration) float64 {
	if dt < 0 {
		return 0
	}
	return float64(dt) / float64(time.Millisecond)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	w, h := g.world.Size()
	r := NewScreenRenderer(dst, w, h)
	g.world.Draw(r)
	r.Flush()

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, " Press P to resume ", core.ColorWhite)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.GameOver(),
		Paused:   g.paused,
		Won:      g.world.GameOver() && g.world.Won(),
	}
}

// World exposes the running world.
func (g *Game) World() *World {
	return g.world
}

// ConfigYAML returns the effective configuration of the current round.
func (g *Game) ConfigYAML() ([]byte, error) {
	return config.Marshal(g.cfg)
}

// UseConfigYAML pins the configuration used by subsequent resets.
func (g *Game) UseConfigYAML(data []byte) error {
	cfg, err := config.Parse(data)
	if err != nil {
		return fmt.Errorf("anglers: invalid config: %w", err)
	}
	g.cfg = cfg
	g.fixedCfg = true
	return nil
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
