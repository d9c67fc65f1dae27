package anglers

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-anglers/internal/config"
	"github.com/vovakirdan/tui-anglers/internal/core"
)

// EndReason records which rule ended the round. It is informational only:
// the displayed outcome is always derived from the final score.
type EndReason int

const (
	EndNone EndReason = iota
	EndTimeLimit
	EndWinningScore
)

// String returns the log name of the reason.
func (r EndReason) String() string {
	switch r {
	case EndTimeLimit:
		return "time-limit"
	case EndWinningScore:
		return "winning-score"
	default:
		return "none"
	}
}

// World owns every entity of a round, the timers and the score, and runs the
// per-tick update pipeline.
type World struct {
	cfg        config.AnglersConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger

	width, height float64
	scrollSpeed   float64

	background Background
	player     Player
	enemies    []Enemy
	particles  []Particle

	score        int
	winningScore int
	gameTime     float64
	timeLimit    float64

	ammoTimer     float64
	ammoInterval  float64
	enemyTimer    float64
	enemyInterval float64

	gameOver  bool
	endReason EndReason
	debug     bool
	ticks     uint64
}

// NewWorld creates a fresh round. A nil logger discards log output.
func NewWorld(cfg config.AnglersConfig, seed int64, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		cfg:           cfg,
		difficulty:    config.NewDifficultyManager(cfg.Difficulty),
		rng:           rand.New(rand.NewSource(seed)),
		logger:        logger,
		width:         cfg.World.Width,
		height:        cfg.World.Height,
		scrollSpeed:   cfg.World.ScrollSpeed,
		background:    NewBackground(),
		player:        NewPlayer(cfg),
		enemies:       make([]Enemy, 0, 8),
		particles:     make([]Particle, 0, 32),
		winningScore:  cfg.Rules.WinningScore,
		timeLimit:     cfg.Rules.TimeLimitMs,
		ammoInterval:  cfg.Ammo.RegenIntervalMs,
		enemyInterval: cfg.Spawning.IntervalMs,
	}
}

// Update advances the world by dtMs milliseconds.
//
// One-shot input (fire, debug toggle) is applied first, as if it had arrived
// between frames. Then: clock and time limit, background, player, ammo
// regeneration, particles, enemy motion and collisions, enemy compaction, and
// finally the spawn timer. Collision always sees entities already moved this tick.
func (w *World) Update(dtMs float64, in core.InputFrame) {
	w.ticks++

	if in.Has(core.ActionDebug) {
		w.debug = !w.debug
		w.logger.Info("switched debug mode", "debug", w.debug)
	}
	if in.Has(core.ActionFire) {
		w.player.ShootTop()
	}

	if w.difficulty.IsEnabled() {
		w.scrollSpeed = w.difficulty.ScrollSpeed(w.cfg.World.ScrollSpeed, w.score, w.gameTime)
		w.enemyInterval = w.difficulty.SpawnInterval(w.cfg.Spawning.IntervalMs, w.score, w.gameTime)
	}

	if !w.gameOver {
		w.gameTime += dtMs
	}
	if w.gameTime > w.timeLimit {
		w.endRound(EndTimeLimit)
	}

	w.background.Update(w.scrollSpeed)

	if w.player.Update(dtMs, in, w.width, w.height) {
		w.logger.Debug("power-up expired", "ammo", w.player.Ammo)
	}

	w.regenerateAmmo(dtMs)
	w.updateParticles()
	w.updateEnemies()
	w.enemies = compact(w.enemies, func(e *Enemy) bool { return e.Deleted })

	if w.enemyTimer > w.enemyInterval && !w.gameOver {
		w.spawnEnemy()
		w.enemyTimer = 0
	} else {
		w.enemyTimer += dtMs
	}
}

// regenerateAmmo either fires the regen timer or accumulates it, never both.
func (w *World) regenerateAmmo(dtMs float64) {
	if w.ammoTimer > w.ammoInterval {
		p := &w.player
		if p.Ammo < p.MaxAmmo {
			p.Ammo = min(p.Ammo+1, p.MaxAmmo)
		}
		w.ammoTimer = 0
		return
	}
	w.ammoTimer += dtMs
}

func (w *World) updateParticles() {
	phys := ParticlePhysics{
		Gravity:     w.cfg.Particles.Gravity,
		Damping:     w.cfg.Particles.Damping,
		MaxBounces:  w.cfg.Particles.MaxBounces,
		WorldHeight: w.height,
		ScrollSpeed: w.scrollSpeed,
	}
	for i := range w.particles {
		w.particles[i].Update(phys)
	}
	w.particles = compact(w.particles, func(p *Particle) bool { return p.Deleted })
}

// updateEnemies moves every enemy and resolves its collisions with the player
// and with each player projectile. Deletions are only marked here.
func (w *World) updateEnemies() {
	player := &w.player
	playerBox := player.Box()

	for i := range w.enemies {
		e := &w.enemies[i]
		e.Update(w.scrollSpeed)

		if core.Collides(playerBox, e.Box()) {
			e.Deleted = true
			if e.Variant == VariantLucky {
				player.EnterPowerUp()
				w.logger.Info("power-up", "ammo", player.Ammo)
			} else {
				w.score--
			}
		}

		for j := range player.Projectiles {
			shot := &player.Projectiles[j]
			if !core.Collides(shot.Box(), e.Box()) {
				continue
			}
			e.Lives--
			shot.Deleted = true
			cx, cy := e.Box().Center()
			w.particles = append(w.particles, newParticle(w.rng, cx, cy))

			if e.Lives <= 0 || e.PastLeftEdge() {
				e.Deleted = true
				if !w.gameOver {
					w.score += e.Score
				}
				if w.score > w.winningScore {
					w.endRound(EndWinningScore)
				}
			}
		}
	}
}

// spawnEnemy adds one enemy of a randomly drawn variant at the right edge.
func (w *World) spawnEnemy() {
	v := PickVariant(w.rng.Float64())
	e := newEnemy(w.rng, v, w.width, w.height)
	w.enemies = append(w.enemies, e)
	w.logger.Debug("enemy spawned", "variant", v, "y", e.Y, "speed", e.SpeedX)
}

// endRound sets the terminal flag. Later calls keep the first reason.
func (w *World) endRound(reason EndReason) {
	if w.gameOver {
		return
	}
	w.gameOver = true
	w.endReason = reason
	w.logger.Info("game over",
		"reason", reason,
		"score", w.score,
		"won", w.Won(),
		"time_ms", w.gameTime,
	)
}

// Won reports the outcome as displayed: the score beats the winning threshold.
// It is only meaningful once the round is over.
func (w *World) Won() bool {
	return w.score > w.winningScore
}

// GameOver reports whether the round has ended.
func (w *World) GameOver() bool { return w.gameOver }

// EndReason reports which rule ended the round first.
func (w *World) EndReason() EndReason { return w.endReason }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// GameTime returns the accumulated game time in milliseconds.
func (w *World) GameTime() float64 { return w.gameTime }

// Debug reports whether the debug overlay is on.
func (w *World) Debug() bool { return w.debug }

// Ticks returns the number of updates applied.
func (w *World) Ticks() uint64 { return w.ticks }

// Player returns the player for inspection.
func (w *World) Player() *Player { return &w.player }

// Enemies returns the live enemies.
func (w *World) Enemies() []Enemy { return w.enemies }

// Particles returns the live particles.
func (w *World) Particles() []Particle { return w.particles }

// Size returns the world dimensions.
func (w *World) Size() (float64, float64) { return w.width, w.height }
