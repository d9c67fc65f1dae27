package anglers

// Background layer geometry.
const (
	layerWidth  = 1768
	layerHeight = 500
)

// Layer speed modifiers, far to near. The last one is drawn in front of entities.
var layerSpeeds = [...]float64{0.2, 0.4, 1, 1.5}

// Layer is one parallax strip scrolling at a fraction of the world speed.
type Layer struct {
	Index         int
	SpeedModifier float64
	Width, Height float64
	X             float64
}

// Update scrolls the layer, wrapping back to zero once a full width has passed.
func (l *Layer) Update(scrollSpeed float64) {
	if l.X <= -l.Width {
		l.X = 0
	}
	l.X -= scrollSpeed * l.SpeedModifier
}

// Background owns the parallax layers.
type Background struct {
	Layers     []Layer
	Foreground Layer
}

// NewBackground creates the standard four-layer background.
func NewBackground() Background {
	b := Background{}
	last := len(layerSpeeds) - 1
	for i, speed := range layerSpeeds {
		l := Layer{Index: i, SpeedModifier: speed, Width: layerWidth, Height: layerHeight}
		if i == last {
			b.Foreground = l
			continue
		}
		b.Layers = append(b.Layers, l)
	}
	return b
}

// Update scrolls every layer including the foreground.
func (b *Background) Update(scrollSpeed float64) {
	for i := range b.Layers {
		b.Layers[i].Update(scrollSpeed)
	}
	b.Foreground.Update(scrollSpeed)
}
