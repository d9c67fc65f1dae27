package anglers

import (
	"math"
	"math/rand"
)

// Particle sprite sheet layout: 3x3 cells of particleSpriteSize units.
const (
	particleSpriteSize  = 50
	particleSpriteCells = 3
)

// ParticlePhysics is the shared context a particle needs to integrate one tick.
type ParticlePhysics struct {
	Gravity     float64
	Damping     float64
	MaxBounces  int
	WorldHeight float64
	ScrollSpeed float64
}

// Particle is a piece of debris thrown off an enemy when a shot lands.
type Particle struct {
	X, Y           float64
	Size           float64
	SpeedX, SpeedY float64
	Angle          float64
	AngularVel     float64 // Radians per tick, cosmetic only
	BounceBoundary float64 // Distance above the bottom edge where the particle bounces
	Bounces        int
	FrameX, FrameY int
	Deleted        bool
}

// newParticle creates debris centred on (x, y) with randomized motion.
func newParticle(rng *rand.Rand, x, y float64) Particle {
	p := Particle{X: x, Y: y}
	p.FrameX = rng.Intn(particleSpriteCells)
	p.FrameY = rng.Intn(particleSpriteCells)
	// Size modifier is kept to one decimal place: 0.5, 0.6 ... 1.0.
	modifier := math.Round((rng.Float64()*0.5+0.5)*10) / 10
	p.Size = particleSpriteSize * modifier
	p.SpeedX = rng.Float64()*6 - 3
	p.SpeedY = rng.Float64() * -15
	p.AngularVel = rng.Float64()*0.2 - 0.1
	p.BounceBoundary = rng.Float64()*80 + 60
	return p
}

// Update integrates gravity, drift and bouncing for one tick.
func (p *Particle) Update(phys ParticlePhysics) {
	p.Angle += p.AngularVel
	p.SpeedY += phys.Gravity
	p.X -= p.SpeedX + phys.ScrollSpeed
	p.Y += p.SpeedY

	if p.Y > phys.WorldHeight+p.Size || p.X < -p.Size {
		p.Deleted = true
	}

	if p.Y > phys.WorldHeight-p.BounceBoundary && p.Bounces < phys.MaxBounces {
		p.Bounces++
		p.SpeedY *= -phys.Damping
	}
}
