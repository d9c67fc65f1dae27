package anglers

import "github.com/vovakirdan/tui-anglers/internal/core"

// Projectile is a player shot travelling right at constant speed.
type Projectile struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Deleted       bool
}

// Update moves the shot and expires it once it passes limitX.
func (p *Projectile) Update(limitX float64) {
	p.X += p.Speed
	if p.X > limitX {
		p.Deleted = true
	}
}

// Box returns the projectile's collision rectangle.
func (p *Projectile) Box() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}
