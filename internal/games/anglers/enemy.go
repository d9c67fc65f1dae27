package anglers

import (
	"math/rand"

	"github.com/vovakirdan/tui-anglers/internal/core"
)

// Variant identifies one of the enemy kinds.
type Variant int

const (
	VariantAngler1 Variant = iota
	VariantAngler2
	VariantLucky
)

// Spawn thresholds on a uniform draw in [0, 1).
const (
	angler1Threshold = 0.35
	angler2Threshold = 0.70
)

// enemyMaxFrame is the last column of every enemy sprite sheet.
const enemyMaxFrame = 37

// VariantStats holds the fixed per-variant numbers.
type VariantStats struct {
	Width, Height float64
	Lives         int
	Score         int
	FrameRows     int // Sprite rows to pick an appearance from
}

var variantStats = [...]VariantStats{
	VariantAngler1: {Width: 228, Height: 169, Lives: 2, Score: 2, FrameRows: 3},
	VariantAngler2: {Width: 213, Height: 165, Lives: 4, Score: 4, FrameRows: 2},
	VariantLucky:   {Width: 99, Height: 95, Lives: 3, Score: 15, FrameRows: 2},
}

// Stats returns the fixed numbers for the variant.
func (v Variant) Stats() VariantStats {
	return variantStats[v]
}

// String returns the name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantAngler1:
		return "Angler1"
	case VariantAngler2:
		return "Angler2"
	case VariantLucky:
		return "Lucky"
	default:
		return "Unknown"
	}
}

// PickVariant maps a uniform draw in [0, 1) to a variant.
func PickVariant(r float64) Variant {
	switch {
	case r < angler1Threshold:
		return VariantAngler1
	case r < angler2Threshold:
		return VariantAngler2
	default:
		return VariantLucky
	}
}

// Enemy is a hostile entity drifting in from the right edge.
type Enemy struct {
	Variant       Variant
	X, Y          float64
	Width, Height float64
	SpeedX        float64 // Own drift, always negative; scroll speed is added on top
	Lives         int
	Score         int
	FrameX        int
	FrameY        int
	Deleted       bool
}

// newEnemy creates an enemy of the given variant at the right edge of the world.
func newEnemy(rng *rand.Rand, v Variant, worldW, worldH float64) Enemy {
	stats := v.Stats()
	e := Enemy{
		Variant: v,
		X:       worldW,
		Width:   stats.Width,
		Height:  stats.Height,
		Lives:   stats.Lives,
		Score:   stats.Score,
	}
	e.SpeedX = rng.Float64()*-1.5 - 0.5
	e.Y = rng.Float64() * (worldH*0.9 - e.Height)
	e.FrameY = rng.Intn(stats.FrameRows)
	return e
}

// Update moves the enemy and advances its animation.
func (e *Enemy) Update(scrollSpeed float64) {
	e.X += e.SpeedX - scrollSpeed
	if e.X+e.Width < 0 {
		e.Deleted = true
	}

	if e.FrameX < enemyMaxFrame {
		e.FrameX++
	} else {
		e.FrameX = 0
	}
}

// Box returns the enemy's collision rectangle.
func (e *Enemy) Box() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// PastLeftEdge reports whether the enemy has fully left the playfield.
func (e *Enemy) PastLeftEdge() bool {
	return e.X < -e.Width
}
