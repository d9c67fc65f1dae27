package anglers

import (
	"math"

	"github.com/vovakirdan/tui-anglers/internal/config"
	"github.com/vovakirdan/tui-anglers/internal/core"
)

// Cannon mount points relative to the player's top-left corner.
const (
	mountX       = 80
	mountTopY    = 30
	mountBottomY = 175
)

// playerMaxFrame is the last column of the player sprite sheet.
const playerMaxFrame = 37

// PowerMode is the player's power-up state.
type PowerMode int

const (
	ModeNormal PowerMode = iota
	ModePoweredUp
)

// String returns the name of the mode.
func (m PowerMode) String() string {
	if m == ModePoweredUp {
		return "PoweredUp"
	}
	return "Normal"
}

// Player is the user-controlled ship. It owns its projectiles and the ammo pool.
type Player struct {
	X, Y          float64
	Width, Height float64
	SpeedY        float64
	MaxSpeed      float64

	// Ammo is fractional: power-up regeneration adds a fraction every tick.
	Ammo    float64
	MaxAmmo float64

	PowerUp         bool
	PowerUpTimer    float64 // Milliseconds spent in the current power-up
	PowerUpLimit    float64
	PowerUpAmmoRate float64 // Ammo added per tick while powered up

	FrameX, FrameY int

	Projectiles []Projectile
	shot        config.ProjectileConfig
}

// NewPlayer creates a player from configuration.
func NewPlayer(cfg config.AnglersConfig) Player {
	return Player{
		X:               cfg.Player.X,
		Y:               cfg.Player.Y,
		Width:           cfg.Player.Width,
		Height:          cfg.Player.Height,
		MaxSpeed:        cfg.Player.MaxSpeed,
		Ammo:            cfg.Ammo.Initial,
		MaxAmmo:         cfg.Ammo.Max,
		PowerUpLimit:    cfg.Player.PowerUpLimitMs,
		PowerUpAmmoRate: cfg.Player.PowerUpAmmoPerTick,
		Projectiles:     make([]Projectile, 0, 16),
		shot:            cfg.Projectile,
	}
}

// Mode returns the current power-up state.
func (p *Player) Mode() PowerMode {
	if p.PowerUp {
		return ModePoweredUp
	}
	return ModeNormal
}

// Box returns the player's collision rectangle.
func (p *Player) Box() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Update moves the player, advances its shots and runs the power-up timer.
// It returns true on the tick the power-up runs out.
func (p *Player) Update(dtMs float64, in core.InputFrame, worldW, worldH float64) (expired bool) {
	switch {
	case in.IsHeld(core.ActionUp):
		p.SpeedY = -p.MaxSpeed
	case in.IsHeld(core.ActionDown):
		p.SpeedY = p.MaxSpeed
	default:
		p.SpeedY = 0
	}
	p.Y += p.SpeedY

	// Half of the ship may leave the screen at either edge.
	p.Y = core.ClampF(p.Y, -p.Height*0.5, worldH-p.Height*0.5)

	limitX := worldW * p.shot.Range
	for i := range p.Projectiles {
		p.Projectiles[i].Update(limitX)
	}
	p.Projectiles = compact(p.Projectiles, func(s *Projectile) bool { return s.Deleted })

	if p.FrameX < playerMaxFrame {
		p.FrameX++
	} else {
		p.FrameX = 0
	}

	if !p.PowerUp {
		return false
	}
	if p.PowerUpTimer > p.PowerUpLimit {
		p.PowerUpTimer = 0
		p.PowerUp = false
		p.FrameY = 0
		return true
	}
	p.PowerUpTimer += dtMs
	p.FrameY = 1
	// Not capped by MaxAmmo while powered up.
	p.Ammo += p.PowerUpAmmoRate
	return false
}

// ShootTop fires the main cannon if there is ammo, and the bottom cannon as
// well while powered up. It returns the number of projectiles created.
func (p *Player) ShootTop() int {
	fired := 0
	if p.Ammo > 0 {
		p.fire(p.X+mountX, p.Y+mountTopY)
		// A fractional remainder left over from a power-up is spent whole.
		p.Ammo = math.Max(p.Ammo-1, 0)
		fired++
	}
	if p.PowerUp {
		fired += p.shootBottom()
	}
	return fired
}

// shootBottom fires the second cannon. It needs ammo left but does not spend any.
func (p *Player) shootBottom() int {
	if p.Ammo > 0 {
		p.fire(p.X+mountX, p.Y+mountBottomY)
		return 1
	}
	return 0
}

func (p *Player) fire(x, y float64) {
	p.Projectiles = append(p.Projectiles, Projectile{
		X:      x,
		Y:      y,
		Width:  p.shot.Width,
		Height: p.shot.Height,
		Speed:  p.shot.Speed,
	})
}

// EnterPowerUp starts (or restarts) the power-up and tops ammo up to the maximum.
func (p *Player) EnterPowerUp() {
	p.PowerUpTimer = 0
	p.PowerUp = true
	if p.Ammo < p.MaxAmmo {
		p.Ammo = p.MaxAmmo
	}
}
