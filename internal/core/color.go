package core

// Color is a foreground colour for a screen cell. Hosts map it to an ANSI
// 256-colour code.
type Color uint8

// Palette used by the Anglers renderer.
const (
	ColorDefault      Color = iota
	ColorRed                // debug bounding boxes
	ColorGreen              // Angler1
	ColorYellow             // projectiles
	ColorBlue               // surface waves
	ColorMagenta            // Angler2
	ColorCyan               // player
	ColorWhite              // HUD text, ammo
	ColorBrightYellow       // Lucky, powered-up player, banners
	ColorOrange             // particles
	ColorGray               // sea floor, greyed-out labels
	ColorDarkGray           // sky dust, rocks
)
