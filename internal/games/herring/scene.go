package herring

// Scene is a read-only copy of everything a renderer needs to draw a frame.
// It shares no memory with the engine.
type Scene struct {
	FieldW, FieldH float64
	PipeWidth      float64
	GapHeight      float64

	Player             PlayerView
	InvincibleLeftMs   uint64 // Remaining invincibility, 0 when not invincible
	InvincibilityTotal uint64 // Full invincibility window, for progress bars

	Obstacles []Obstacle // In spawn order
	Hazards   []Hazard   // In spawn order
	Powerups  []Powerup  // In spawn order

	Score int
	Ticks int
	State State
}

// PlayerView is the player's pose as seen by a renderer.
type PlayerView struct {
	X, Y       float64
	Width      float64
	Height     float64
	Velocity   float64
	Rotation   float64
	Invincible bool
}

// Snapshot returns the current scene.
func (e *Engine) Snapshot() Scene {
	p := e.player

	var left uint64
	if p.Invincible && p.invincibleUntil > e.now {
		left = p.invincibleUntil - e.now
	}

	return Scene{
		FieldW:    e.cfg.Field.Width,
		FieldH:    e.cfg.Field.Height,
		PipeWidth: e.cfg.Obstacles.Width,
		GapHeight: e.cfg.Obstacles.GapHeight,
		Player: PlayerView{
			X:          p.X,
			Y:          p.Y,
			Width:      p.Width,
			Height:     p.Height,
			Velocity:   p.Velocity,
			Rotation:   p.Rotation,
			Invincible: p.Invincible,
		},
		InvincibleLeftMs:   left,
		InvincibilityTotal: e.cfg.Powerups.InvincibilityMs,
		Obstacles:          append([]Obstacle(nil), e.pipes...),
		Hazards:            append([]Hazard(nil), e.hazards...),
		Powerups:           append([]Powerup(nil), e.powers...),
		Score:              e.score,
		Ticks:              e.ticks,
		State:              e.state,
	}
}
