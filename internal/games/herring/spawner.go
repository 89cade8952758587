package herring

import (
	"math/rand"

	"github.com/vovakirdan/herring/internal/config"
)

// spawnTimer fires when more than interval millis have passed since the last spawn.
type spawnTimer struct {
	interval uint64
	last     uint64
}

// ready reports whether the timer is due at now and, if so, rearms it.
func (t *spawnTimer) ready(now uint64) bool {
	if now < t.last || now-t.last <= t.interval {
		return false
	}
	t.last = now
	return true
}

// spawner decides when and where new entities enter the field.
// Entities always enter at the right edge; only their height is random.
type spawner struct {
	rng      *rand.Rand
	cfg      *config.HerringConfig
	pipes    spawnTimer
	hazards  spawnTimer
	powerups spawnTimer
}

func newSpawner(seed int64, cfg *config.HerringConfig) *spawner {
	return &spawner{
		rng:      rand.New(rand.NewSource(seed)),
		cfg:      cfg,
		pipes:    spawnTimer{interval: cfg.Obstacles.SpawnIntervalMs},
		hazards:  spawnTimer{interval: cfg.Hazards.SpawnIntervalMs},
		powerups: spawnTimer{interval: cfg.Powerups.SpawnIntervalMs},
	}
}

// reset rearms every timer at now. The RNG keeps its sequence.
func (s *spawner) reset(now uint64) {
	s.pipes.last = now
	s.hazards.last = now
	s.powerups.last = now
}

// pipe creates an obstacle whose gap stays clear of the top and bottom margins.
func (s *spawner) pipe() Obstacle {
	field := s.cfg.Field
	half := s.cfg.Obstacles.GapHeight / 2
	lo := s.cfg.Obstacles.Margin + half
	hi := field.Height - s.cfg.Obstacles.Margin - half

	gapY := field.Height / 2
	if hi >= lo {
		gapY = s.uniform(lo, hi)
	}

	return Obstacle{X: field.Width, GapY: gapY}
}

// hazard creates a fireball fully inside the field vertically.
func (s *spawner) hazard() Hazard {
	size := s.cfg.Hazards.Size
	return Hazard{
		X:    s.cfg.Field.Width,
		Y:    s.uniform(0, s.cfg.Field.Height-size),
		Size: size,
	}
}

// powerup creates a pickup fully inside the field vertically.
func (s *spawner) powerup() Powerup {
	size := s.cfg.Powerups.Size
	return Powerup{
		X:    s.cfg.Field.Width,
		Y:    s.uniform(0, s.cfg.Field.Height-size),
		Size: size,
	}
}

// uniform returns a value in [lo, hi]. An empty range yields max(lo, 0).
func (s *spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return max(lo, 0)
	}
	return lo + s.rng.Float64()*(hi-lo)
}
