package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second requested from the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// HoldWindow is how long a movement key stays held after its last press
	// or auto-repeat. Zero selects the host default.
	HoldWindow time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score, may be negative
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Outcome as displayed: only meaningful once GameOver is set
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
