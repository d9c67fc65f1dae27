package anglers

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-anglers/internal/core"
)

// SpriteKind tells a Renderer what an entity is.
type SpriteKind int

const (
	SpriteLayer SpriteKind = iota
	SpritePlayer
	SpriteProjectile
	SpriteParticle
	SpriteEnemy
	SpriteAmmo
)

// Sprite is everything a Renderer needs to draw one entity.
type Sprite struct {
	Kind      SpriteKind
	Box       core.Rect
	FrameX    int
	FrameY    int
	Variant   Variant // Enemies only
	Angle     float64 // Particles only
	Highlight bool    // Power-up tint for the player and the ammo bar
}

// TextStyle selects how a label is drawn.
type TextStyle int

const (
	TextHUD TextStyle = iota
	TextBanner
	TextSubBanner
	TextDebug
)

// Renderer draws the world. Implementations only observe the state they are given.
type Renderer interface {
	DrawSprite(s Sprite)
	// DrawText draws a label. Banner styles are centred on x.
	DrawText(x, y float64, text string, style TextStyle)
	DrawOutline(box core.Rect)
}

// HUD placement in world units.
const (
	hudX         = 20
	hudScoreY    = 40
	hudTimeY     = 100
	hudAmmoY     = 50
	hudAmmoStep  = 5
	hudAmmoW     = 3
	hudAmmoH     = 20
	bannerOffset = 30
)

// Draw renders the world back to front: background, HUD, player with its
// shots, particles, enemies, then the foreground layer.
func (w *World) Draw(r Renderer) {
	for _, l := range w.background.Layers {
		drawLayer(r, l)
	}
	w.drawHUD(r)
	w.drawPlayer(r)
	for _, p := range w.particles {
		r.DrawSprite(Sprite{
			Kind:   SpriteParticle,
			Box:    core.NewRect(p.X-p.Size*0.5, p.Y-p.Size*0.5, p.Size, p.Size),
			FrameX: p.FrameX,
			FrameY: p.FrameY,
			Angle:  p.Angle,
		})
	}
	for _, e := range w.enemies {
		if w.debug {
			r.DrawOutline(e.Box())
			r.DrawText(e.X, e.Y, fmt.Sprintf("%d", e.Lives), TextDebug)
		}
		r.DrawSprite(Sprite{
			Kind:    SpriteEnemy,
			Box:     e.Box(),
			FrameX:  e.FrameX,
			FrameY:  e.FrameY,
			Variant: e.Variant,
		})
	}
	drawLayer(r, w.background.Foreground)
}

func drawLayer(r Renderer, l Layer) {
	r.DrawSprite(Sprite{
		Kind:   SpriteLayer,
		Box:    core.NewRect(l.X, 0, l.Width, l.Height),
		FrameX: l.Index,
	})
}

func (w *World) drawPlayer(r Renderer) {
	p := &w.player
	if w.debug {
		r.DrawOutline(p.Box())
	}
	for _, s := range p.Projectiles {
		r.DrawSprite(Sprite{Kind: SpriteProjectile, Box: s.Box()})
	}
	r.DrawSprite(Sprite{
		Kind:      SpritePlayer,
		Box:       p.Box(),
		FrameX:    p.FrameX,
		FrameY:    p.FrameY,
		Highlight: p.PowerUp,
	})
}

func (w *World) drawHUD(r Renderer) {
	r.DrawText(hudX, hudScoreY, fmt.Sprintf("Score: %d", w.score), TextHUD)
	r.DrawText(hudX, hudTimeY, fmt.Sprintf("Time: %.1f", w.gameTime*0.001), TextHUD)

	if w.gameOver {
		title, subtitle := "You lose!", "Try again next time"
		if w.Won() {
			title, subtitle = "You Win", "Well done!"
		}
		r.DrawText(w.width*0.5, w.height*0.5-bannerOffset, title, TextBanner)
		r.DrawText(w.width*0.5, w.height*0.5+bannerOffset, subtitle, TextSubBanner)
	}

	for i := 0; float64(i) < w.player.Ammo; i++ {
		r.DrawSprite(Sprite{
			Kind:      SpriteAmmo,
			Box:       core.NewRect(hudX+hudAmmoStep*float64(i), hudAmmoY, hudAmmoW, hudAmmoH),
			Highlight: w.player.PowerUp,
		})
	}
}

// ScreenRenderer draws a world onto a terminal cell buffer, scaling world
// units to cells.
//
// Terminal cells are opaque, so labels and the ammo bar are queued and only
// drawn by Flush, on top of every sprite.
type ScreenRenderer struct {
	dst     *core.Screen
	scaleX  float64
	scaleY  float64
	overlay []func()
}

// NewScreenRenderer creates a renderer mapping a worldW x worldH world onto dst.
func NewScreenRenderer(dst *core.Screen, worldW, worldH float64) *ScreenRenderer {
	return &ScreenRenderer{
		dst:    dst,
		scaleX: float64(dst.Width()) / worldW,
		scaleY: float64(dst.Height()) / worldH,
	}
}

// layerStyle describes how a background layer is drawn as a band of glyphs.
type layerStyle struct {
	top, bottom float64 // Band as a fraction of the screen height
	glyph       rune
	every       int // Draw in every n-th column
	color       core.Color
}

var layerStyles = [...]layerStyle{
	{top: 0.05, bottom: 0.35, glyph: '·', every: 7, color: core.ColorDarkGray},
	{top: 0.55, bottom: 0.75, glyph: '~', every: 3, color: core.ColorBlue},
	{top: 0.85, bottom: 0.95, glyph: '▒', every: 2, color: core.ColorGray},
	{top: 0.95, bottom: 1.00, glyph: '▓', every: 1, color: core.ColorDarkGray},
}

// cellSpan maps a world interval to a half-open cell interval of at least one cell.
func cellSpan(lo, hi, scale float64) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// DrawSprite implements Renderer.
func (r *ScreenRenderer) DrawSprite(s Sprite) {
	switch s.Kind {
	case SpriteLayer:
		r.drawLayer(s)
		return
	case SpriteAmmo:
		r.overlay = append(r.overlay, func() { r.drawAmmo(s) })
		return
	}

	glyph, color := r.spriteGlyph(s)
	x0, x1 := cellSpan(s.Box.X, s.Box.Right(), r.scaleX)
	y0, y1 := cellSpan(s.Box.Y, s.Box.Bottom(), r.scaleY)
	r.dst.FillRect(x0, y0, x1, y1, glyph, color)

	// Mark the nose of ships so the direction reads at low resolution.
	switch s.Kind {
	case SpritePlayer:
		r.dst.SetColored(x1-1, (y0+y1)/2, '▶', color)
	case SpriteEnemy:
		r.dst.SetColored(x0, (y0+y1)/2, '◀', color)
	}
}

func (r *ScreenRenderer) spriteGlyph(s Sprite) (rune, core.Color) {
	switch s.Kind {
	case SpritePlayer:
		if s.Highlight {
			return '█', core.ColorBrightYellow
		}
		return '█', core.ColorCyan
	case SpriteProjectile:
		return '━', core.ColorYellow
	case SpriteParticle:
		// Spin through a few glyphs using the rotation angle.
		spin := [...]rune{'*', '+', 'x', '+'}
		idx := int(math.Abs(s.Angle)*4) % len(spin)
		return spin[idx], core.ColorOrange
	case SpriteEnemy:
		switch s.Variant {
		case VariantAngler1:
			return '▓', core.ColorGreen
		case VariantAngler2:
			return '▒', core.ColorMagenta
		default:
			return '$', core.ColorBrightYellow
		}
	case SpriteAmmo:
		if s.Highlight {
			return '▌', core.ColorBrightYellow
		}
		return '▌', core.ColorWhite
	default:
		return '?', core.ColorDefault
	}
}

// drawAmmo draws one tick of the ammo bar on the row below the score.
func (r *ScreenRenderer) drawAmmo(s Sprite) {
	glyph, color := r.spriteGlyph(s)
	x0, _ := cellSpan(s.Box.X, s.Box.Right(), r.scaleX)
	row := int(math.Ceil(s.Box.Y * r.scaleY))
	r.dst.SetColored(x0, row, glyph, color)
}

func (r *ScreenRenderer) drawLayer(s Sprite) {
	if s.FrameX < 0 || s.FrameX >= len(layerStyles) {
		return
	}
	style := layerStyles[s.FrameX]
	h := float64(r.dst.Height())
	y0 := int(style.top * h)
	y1 := int(math.Ceil(style.bottom * h))

	// The strip is drawn twice, side by side, so the wrap point is seamless.
	for c := 0; c < 2; c++ {
		left := s.Box.X + float64(c)*s.Box.W
		x0, x1 := cellSpan(left, left+s.Box.W, r.scaleX)
		for x := x0; x < x1; x++ {
			for y := y0; y < y1; y++ {
				if (x-x0+y)%style.every == 0 {
					r.dst.SetColored(x, y, style.glyph, style.color)
				}
			}
		}
	}
}

// DrawText implements Renderer.
func (r *ScreenRenderer) DrawText(x, y float64, text string, style TextStyle) {
	r.overlay = append(r.overlay, func() { r.drawText(x, y, text, style) })
}

func (r *ScreenRenderer) drawText(x, y float64, text string, style TextStyle) {
	col := int(x * r.scaleX)
	row := int(y * r.scaleY)
	color := core.ColorWhite

	switch style {
	case TextBanner, TextSubBanner:
		col -= len([]rune(text)) / 2
		if style == TextBanner {
			color = core.ColorBrightYellow
		}
		// Clear a margin so banners stay legible over sprites.
		n := len([]rune(text))
		r.dst.FillRect(col-1, row, col+n+1, row+1, ' ', core.ColorDefault)
	case TextDebug:
		color = core.ColorGray
	}
	r.dst.DrawText(col, row, text, color)
}

// DrawOutline implements Renderer.
func (r *ScreenRenderer) DrawOutline(box core.Rect) {
	x0, x1 := cellSpan(box.X, box.Right(), r.scaleX)
	y0, y1 := cellSpan(box.Y, box.Bottom(), r.scaleY)
	r.dst.DrawBox(x0, y0, x1, y1, core.ColorRed)
}

// Flush draws the queued overlay.
func (r *ScreenRenderer) Flush() {
	for _, draw := range r.overlay {
		draw()
	}
	r.overlay = r.overlay[:0]
}
