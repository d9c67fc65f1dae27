package anglers

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-anglers/internal/config"
	"github.com/vovakirdan/tui-anglers/internal/core"
	"github.com/vovakirdan/tui-anglers/internal/registry"
)

func newTestGame() *Game {
	g := NewWithConfig(config.DefaultAnglersConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("%q should be registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Anglers" {
		t.Errorf("title = %q", g.Title())
	}
	if _, ok := g.(registry.Configurable); !ok {
		t.Error("game should expose its configuration")
	}
}

func TestGameStepUsesFrameDuration(t *testing.T) {
	g := newTestGame()

	g.Step(core.NewInputFrame(), 16*time.Millisecond)
	g.Step(core.NewInputFrame(), 1500*time.Microsecond)

	if got := g.World().GameTime(); got != 17.5 {
		t.Errorf("game time = %.2f, want 17.5", got)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame()
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause, 16*time.Millisecond)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	before := g.Snapshot()

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), 16*time.Millisecond)
	}
	if after := g.Snapshot(); after.Tick != before.Tick || after.GameTime != before.GameTime {
		t.Errorf("world advanced while paused: tick %d -> %d", before.Tick, after.Tick)
	}

	res = g.Step(pause, 16*time.Millisecond)
	if res.State.Paused {
		t.Fatal("second pause should resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Error("resuming step should advance the world")
	}
}

func TestGamePauseIgnoredAfterGameOver(t *testing.T) {
	g := newTestGame()
	g.World().endRound(EndTimeLimit)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause, 16*time.Millisecond)

	if res.State.Paused {
		t.Error("pause should be ignored once the round is over")
	}
	if !res.State.GameOver || res.State.Won {
		t.Errorf("state = %+v, want a lost game", res.State)
	}
}

func TestGameBeforeReset(t *testing.T) {
	g := NewWithConfig(config.DefaultAnglersConfig())
	in := core.NewInputFrame()
	in.Set(core.ActionPause)

	res := g.Step(in, 16*time.Millisecond)
	if res.State != (core.GameState{}) {
		t.Errorf("Step before Reset = %+v, want zero state", res.State)
	}

	screen := core.NewScreen(20, 5)
	screen.Set(0, 0, 'x')
	g.Render(screen)
	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("Render before Reset should leave a blank screen, got %q", screen.String())
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame()
	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	for i := 0; i < 30; i++ {
		g.Step(fire, 16*time.Millisecond)
	}

	g.Reset(core.RuntimeConfig{Seed: 42})

	s := g.Snapshot()
	if s.Tick != 0 || s.Ammo != 20 || len(s.ProjectileData) != 0 || s.GameTime != 0 {
		t.Errorf("after reset: %+v", s)
	}
}

func TestGameUseConfigYAML(t *testing.T) {
	g := New()
	if err := g.UseConfigYAML([]byte("rules:\n  time_limit_ms: 100\n")); err != nil {
		t.Fatalf("UseConfigYAML() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: 1})

	for i := 0; i < 7; i++ {
		g.Step(core.NewInputFrame(), 16*time.Millisecond)
	}
	if !g.State().GameOver {
		t.Error("round should end after 112ms with a 100ms limit")
	}

	data, err := g.ConfigYAML()
	if err != nil {
		t.Fatalf("ConfigYAML() failed: %v", err)
	}
	if !strings.Contains(string(data), "time_limit_ms: 100") {
		t.Errorf("config yaml does not carry the override:\n%s", data)
	}
}

func TestGameUseConfigYAMLRejectsInvalid(t *testing.T) {
	g := New()
	if err := g.UseConfigYAML([]byte("world:\n  width: -5\n")); err == nil {
		t.Error("expected an error for a negative world width")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Score: 0") {
		t.Errorf("render should show the score:\n%s", screen.String())
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, 16*time.Millisecond)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused render should show the overlay")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame()
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%12 == 0 {
				in.Set(core.ActionFire)
			}
			if i%90 < 45 {
				in.Hold(core.ActionUp)
			}
			// Uneven frame times, as a real clock produces.
			dt := time.Duration(14+i%5) * time.Millisecond
			g.Step(in, dt)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Score != s2.Score || s1.Tick != s2.Tick || s1.GameTime != s2.GameTime {
		t.Errorf("runs differ: score %d/%d tick %d/%d", s1.Score, s2.Score, s1.Tick, s2.Tick)
	}
	if len(s1.EnemyData) != len(s2.EnemyData) {
		t.Fatalf("enemy counts differ: %d vs %d", len(s1.EnemyData), len(s2.EnemyData))
	}
	for i := range s1.EnemyData {
		if s1.EnemyData[i] != s2.EnemyData[i] {
			t.Errorf("enemy data[%d] differs: %v vs %v", i, s1.EnemyData[i], s2.EnemyData[i])
		}
	}
}
