// Package session holds the world state of one life and advances it one
// tick at a time.
package session

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/younwookim/bootleg/internal/application/system"
	"github.com/younwookim/bootleg/internal/domain/entity"
	"github.com/younwookim/bootleg/internal/infrastructure/clock"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
)

// Stats are counted over the lifetime of a session
type Stats struct {
	Ticks       int
	Kills       int
	DamageTaken int
}

// Session is the world state between a (re)start and the player's death
type Session struct {
	config *config.GameConfig
	stage  *entity.Stage
	player *entity.Player
	clock  clock.Clock
	seed   int64

	physicsSystem *system.PhysicsSystem
	inputSystem   *system.InputSystem
	combatSystem  *system.CombatSystem

	// Attack hitbox of the current tick only
	hitbox    entity.Rect
	hasHitbox bool

	stats Stats
	log   zerolog.Logger
}

// New creates a fresh session: player at the spawn point with full health,
// facing right, the attack ready, and the configured number of enemies.
// The seed drives every random decision of the session.
func New(cfg *config.GameConfig, stage *entity.Stage, clk clock.Clock, seed int64, log zerolog.Logger) (*Session, error) {
	rng := rand.New(rand.NewSource(seed))

	spawner, err := system.NewSpawner(stage, rng, cfg.Enemy.Width, cfg.Enemy.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create spawner: %w", err)
	}

	pc := cfg.Player
	s := &Session{
		config:        cfg,
		stage:         stage,
		player:        entity.NewPlayer(pc.Spawn.X, pc.Spawn.Y, pc.Width, pc.Height, pc.MaxHealth),
		clock:         clk,
		seed:          seed,
		physicsSystem: system.NewPhysicsSystem(cfg.Physics, stage),
		inputSystem:   system.NewInputSystem(cfg.Physics),
		combatSystem:  system.NewCombatSystem(cfg.Combat, spawner),
		log:           log,
	}

	s.combatSystem.OnEnemyKilled = func(killed, replacement *entity.Enemy) {
		s.stats.Kills++
		s.log.Debug().
			Uint32("enemy", uint32(killed.ID)).
			Uint32("replacement", uint32(replacement.ID)).
			Stringer("at", replacement.Rect).
			Msg("enemy hit")
	}
	s.combatSystem.OnPlayerHit = func(enemy *entity.Enemy, damage int) {
		s.stats.DamageTaken += damage
		s.log.Debug().
			Uint32("enemy", uint32(enemy.ID)).
			Int("health", s.player.Health).
			Msg("player hit")
	}

	for i := 0; i < cfg.Enemy.InitialCount; i++ {
		s.combatSystem.SpawnEnemy()
	}

	return s, nil
}

// Step advances the simulation by one tick.
//
// Order: moves, clamp, jump, gravity and integration, platform landing,
// attack, enemy contact, clamp, kill plane.
func (s *Session) Step(input system.InputState) {
	s.hitbox, s.hasHitbox = entity.Rect{}, false
	if s.player.IsDead() {
		return
	}

	attackRequested := false
	var jump *system.JumpIntent
	for _, intent := range s.inputSystem.Intents(input, s.player) {
		switch it := intent.(type) {
		case system.MoveIntent:
			s.physicsSystem.Move(s.player, it)
		case system.JumpIntent:
			jump = &it
		case system.AttackIntent:
			attackRequested = true
		}
	}
	s.physicsSystem.ClampX(s.player)
	if jump != nil {
		s.physicsSystem.Jump(s.player, *jump)
	}

	s.physicsSystem.Update(s.player)

	s.hitbox, s.hasHitbox = s.combatSystem.Attack(s.player, attackRequested, s.clock.NowMillis())

	s.combatSystem.ResolveContact(s.player)
	s.physicsSystem.ClampX(s.player)

	if s.physicsSystem.BelowKillPlane(s.player) {
		s.stats.DamageTaken += s.player.TakeDamage(s.player.Health)
		s.log.Debug().Int("y", s.player.Y).Msg("fell out of the world")
	}

	s.stats.Ticks++
}

// Dead returns true once the player's health is exhausted
func (s *Session) Dead() bool {
	return s.player.IsDead()
}

// Player returns the player
func (s *Session) Player() *entity.Player {
	return s.player
}

// Stage returns the platform layout
func (s *Session) Stage() *entity.Stage {
	return s.stage
}

// Enemies returns the live enemies
func (s *Session) Enemies() []*entity.Enemy {
	return s.combatSystem.GetEnemies()
}

// Hitbox returns the attack hitbox created during the last tick, if any
func (s *Session) Hitbox() (entity.Rect, bool) {
	return s.hitbox, s.hasHitbox
}

// LastAttack returns the time of the last attack in ms and whether one happened
func (s *Session) LastAttack() (int64, bool) {
	return s.combatSystem.LastAttack()
}

// Seed returns the RNG seed the session was created with
func (s *Session) Seed() int64 {
	return s.seed
}

// Stats returns the counters accumulated so far
func (s *Session) Stats() Stats {
	return s.stats
}

// AddEnemy places an enemy at a fixed position and returns it.
// Used to set up scripted situations.
func (s *Session) AddEnemy(x, y int) *entity.Enemy {
	return s.combatSystem.AddEnemy(x, y)
}
