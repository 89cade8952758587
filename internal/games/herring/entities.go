package herring

import "github.com/vovakirdan/herring/internal/core"

// State is the phase of a session.
type State int

const (
	StateNotStarted State = iota // Waiting for the first flap
	StatePlaying                 // Simulation running
	StateGameOver                // Frozen until the next flap
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Player is the herring. Y grows downward; negative velocity moves it up.
type Player struct {
	X, Y       float64
	Velocity   float64
	Rotation   float64 // Degrees, derived from velocity
	Width      float64
	Height     float64
	Invincible bool

	invincibleUntil uint64 // Wall-clock millis at which Invincible clears
}

// Box returns the player's hitbox.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Obstacle is a pipe pair with a vertical gap centered on GapY.
type Obstacle struct {
	X      float64
	GapY   float64
	Passed bool // Set once the player has scored this pipe
}

// Hazard is a fireball. Touching one ends the run unless invincible.
type Hazard struct {
	X, Y float64
	Size float64
}

// Box returns the hazard's hitbox.
func (h Hazard) Box() core.Box {
	return core.NewBox(h.X, h.Y, h.Size, h.Size)
}

// Powerup grants invincibility when collected.
type Powerup struct {
	X, Y      float64
	Size      float64
	Collected bool
}

// Box returns the powerup's hitbox.
func (p Powerup) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}
