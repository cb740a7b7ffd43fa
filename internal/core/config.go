package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The engine uses it for its tick length and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// TickSeconds returns the simulated duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Level    int    // Current level (bonus level uses its own sentinel)
	GameOver bool   // Whether the run has reached a terminal state
	Paused   bool   // Whether the game is paused
	Outcome  string // Terminal-state text, empty while playing
}

// Event is a discrete, fire-and-forget notification emitted by the engine
// during a tick. Collaborators (audio, run history) consume them.
type Event string

const (
	EventShotFired      Event = "shot-fired"
	EventBonusLife      Event = "bonus-life-gained"
	EventExplosion      Event = "explosion"
	EventPlayerHit      Event = "player-hit"
	EventLevelCleared   Event = "level-cleared"
	EventBonusActivated Event = "bonus-level-activated"
	EventRunEnded       Event = "run-ended"
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event was emitted during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
