// Package herring implements the simulation of a flap-through-pipes arcade game.
// The herring falls under gravity, flaps upward on input, must pass through the
// gaps of scrolling pipes, dodge fireballs and may collect power-ups that make
// it briefly invincible.
//
// The engine is deterministic: time is passed in as milliseconds on every call
// and randomness comes from a seeded source. It does no I/O and never fails.
package herring

import (
	"github.com/vovakirdan/herring/internal/config"
	"github.com/vovakirdan/herring/internal/core"
)

// Engine owns all state of one session.
// It is not safe for concurrent use; drive it from a single goroutine.
type Engine struct {
	cfg     config.HerringConfig
	state   State
	player  Player
	pipes   []Obstacle
	hazards []Hazard
	powers  []Powerup
	score   int
	ticks   int    // Ticks simulated while playing
	now     uint64 // Latest timestamp seen; time never runs backwards
	spawner *spawner
}

// New creates an engine waiting for its first flap.
// cfg is expected to be valid (see config.HerringConfig.Validate).
func New(cfg config.HerringConfig, seed int64) *Engine {
	e := &Engine{
		cfg:     cfg,
		pipes:   make([]Obstacle, 0, 8),
		hazards: make([]Hazard, 0, 8),
		powers:  make([]Powerup, 0, 2),
	}
	e.spawner = newSpawner(seed, &e.cfg)
	e.resetPlayer()
	return e
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.HerringConfig {
	return e.cfg
}

// Reset starts a fresh run at now: empty field, player at the start pose,
// score 0, spawn timers rearmed, state Playing.
func (e *Engine) Reset(now uint64) {
	now = e.observe(now)

	e.pipes = e.pipes[:0]
	e.hazards = e.hazards[:0]
	e.powers = e.powers[:0]
	e.score = 0
	e.ticks = 0
	e.resetPlayer()
	e.spawner.reset(now)
	e.state = StatePlaying
}

// Tick advances the game by one frame. flap is the collapsed input for this
// frame and now the wall-clock time in milliseconds.
func (e *Engine) Tick(flap bool, now uint64) {
	now = e.observe(now)

	switch e.state {
	case StateNotStarted:
		if !flap {
			return
		}
		e.Reset(now)
		e.step(true, now)

	case StateGameOver:
		if flap {
			e.Reset(now)
		}

	case StatePlaying:
		e.step(flap, now)
	}
}

// State returns the coarse session status.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		Started:  e.state != StateNotStarted,
		GameOver: e.state == StateGameOver,
	}
}

// Phase returns the current state machine state.
func (e *Engine) Phase() State {
	return e.state
}

// Score returns the number of pipes passed in the current run.
func (e *Engine) Score() int {
	return e.score
}

// observe clamps now so it never precedes an earlier timestamp.
func (e *Engine) observe(now uint64) uint64 {
	if now < e.now {
		return e.now
	}
	e.now = now
	return now
}

func (e *Engine) resetPlayer() {
	e.player = Player{
		X:      e.cfg.Field.Width / 3,
		Y:      e.cfg.Field.Height / 2,
		Width:  e.cfg.Player.Width,
		Height: e.cfg.Player.Height,
	}
}

// step runs one frame of play.
func (e *Engine) step(flap bool, now uint64) {
	e.ticks++

	e.expireInvincibility(now)
	e.integrate(flap)
	e.spawn(now)

	e.updatePipes()
	e.updateHazards()
	e.updatePowerups(now)

	if e.outOfBounds() {
		e.state = StateGameOver
	}

	e.cleanup()
}

func (e *Engine) expireInvincibility(now uint64) {
	if e.player.Invincible && now >= e.player.invincibleUntil {
		e.player.Invincible = false
	}
}

// integrate applies one tick of physics. A flap replaces the velocity
// (and this tick's gravity) with the flap impulse.
func (e *Engine) integrate(flap bool) {
	p := &e.player
	phys := e.cfg.Physics

	if flap {
		p.Velocity = phys.FlapImpulse
	} else {
		p.Velocity += phys.Gravity
	}
	p.Y += p.Velocity
	p.Rotation = core.ClampF(p.Velocity*phys.RotationScale, -phys.MaxRotation, phys.MaxRotation)
}

func (e *Engine) spawn(now uint64) {
	if e.spawner.pipes.ready(now) {
		e.pipes = append(e.pipes, e.spawner.pipe())
	}
	if e.spawner.hazards.ready(now) {
		e.hazards = append(e.hazards, e.spawner.hazard())
	}
	if e.spawner.powerups.ready(now) {
		e.powers = append(e.powers, e.spawner.powerup())
	}
}

// updatePipes scrolls pipes, scores the ones the player has reached and
// checks collisions against the solid parts.
func (e *Engine) updatePipes() {
	obs := e.cfg.Obstacles
	player := e.player.Box()

	for i := range e.pipes {
		pipe := &e.pipes[i]
		pipe.X -= obs.Speed

		// Scores on the pipe's leading edge, once per pipe.
		if !pipe.Passed && e.player.X >= pipe.X {
			pipe.Passed = true
			e.score++
		}

		if !e.player.Invincible && hitsPipe(player, *pipe, obs.Width, obs.GapHeight) {
			e.state = StateGameOver
		}
	}
}

// hitsPipe reports whether a box touches the solid part of a pipe:
// it must share the pipe's columns and stick out of the gap band.
func hitsPipe(b core.Box, pipe Obstacle, width, gap float64) bool {
	column := core.NewBox(pipe.X, 0, width, 0)
	if !b.OverlapsX(column) {
		return false
	}
	half := gap / 2
	return b.Y < pipe.GapY-half || b.Bottom() > pipe.GapY+half
}

func (e *Engine) updateHazards() {
	speed := e.cfg.Hazards.Speed
	player := e.player.Box()

	for i := range e.hazards {
		h := &e.hazards[i]
		h.X -= speed

		if !e.player.Invincible && player.Intersects(h.Box()) {
			e.state = StateGameOver
		}
	}
}

// updatePowerups scrolls pickups and collects the ones the player touches.
// Collection restarts the invincibility window; it never stacks.
func (e *Engine) updatePowerups(now uint64) {
	speed := e.cfg.Powerups.Speed
	player := e.player.Box()

	kept := e.powers[:0]
	for _, p := range e.powers {
		p.X -= speed

		if !p.Collected && player.Intersects(p.Box()) {
			p.Collected = true
			e.player.Invincible = true
			e.player.invincibleUntil = now + e.cfg.Powerups.InvincibilityMs
			continue
		}
		kept = append(kept, p)
	}
	e.powers = kept
}

// outOfBounds reports whether the player has left the field vertically.
// Invincibility does not protect against this.
func (e *Engine) outOfBounds() bool {
	return e.player.Y < 0 || e.player.Y+e.player.Height > e.cfg.Field.Height
}

// cleanup drops entities that have fully scrolled off the left edge.
func (e *Engine) cleanup() {
	pipeWidth := e.cfg.Obstacles.Width

	pipes := e.pipes[:0]
	for _, p := range e.pipes {
		if p.X >= -pipeWidth {
			pipes = append(pipes, p)
		}
	}
	e.pipes = pipes

	hazards := e.hazards[:0]
	for _, h := range e.hazards {
		if h.X >= -h.Size {
			hazards = append(hazards, h)
		}
	}
	e.hazards = hazards

	powers := e.powers[:0]
	for _, p := range e.powers {
		if p.X >= -p.Size {
			powers = append(powers, p)
		}
	}
	e.powers = powers
}
