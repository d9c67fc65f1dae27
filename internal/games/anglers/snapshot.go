package anglers

// Snapshot contains the complete game state for replay checks and debugging.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick     uint64
	Score    int
	GameTime float64
	GameOver bool
	Reason   string
	Debug    bool

	PlayerY      float64
	Ammo         float64
	PowerUp      bool
	PowerUpTimer float64

	AmmoTimer  float64
	EnemyTimer float64

	// Each projectile is 2 floats: X, Y
	ProjectileData []float64

	// Each enemy is 5 floats: Variant, X, Y, SpeedX, Lives
	EnemyData []float64

	// Each particle is 4 floats: X, Y, SpeedY, Bounces
	ParticleData []float64

	// Layer offsets, foreground last
	LayerX []float64
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         w.ticks,
		Score:        w.score,
		GameTime:     w.gameTime,
		GameOver:     w.gameOver,
		Reason:       w.endReason.String(),
		Debug:        w.debug,
		PlayerY:      w.player.Y,
		Ammo:         w.player.Ammo,
		PowerUp:      w.player.PowerUp,
		PowerUpTimer: w.player.PowerUpTimer,
		AmmoTimer:    w.ammoTimer,
		EnemyTimer:   w.enemyTimer,
	}

	s.ProjectileData = make([]float64, 0, len(w.player.Projectiles)*2)
	for _, p := range w.player.Projectiles {
		s.ProjectileData = append(s.ProjectileData, p.X, p.Y)
	}

	s.EnemyData = make([]float64, 0, len(w.enemies)*5)
	for _, e := range w.enemies {
		s.EnemyData = append(s.EnemyData, float64(e.Variant), e.X, e.Y, e.SpeedX, float64(e.Lives))
	}

	s.ParticleData = make([]float64, 0, len(w.particles)*4)
	for _, p := range w.particles {
		s.ParticleData = append(s.ParticleData, p.X, p.Y, p.SpeedY, float64(p.Bounces))
	}

	for _, l := range w.background.Layers {
		s.LayerX = append(s.LayerX, l.X)
	}
	s.LayerX = append(s.LayerX, w.background.Foreground.X)

	return s
}

// Snapshot returns the state of the running round.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}
