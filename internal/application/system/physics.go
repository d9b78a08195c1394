package system

import (
	"github.com/younwookim/bootleg/internal/domain/entity"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
)

// PhysicsSystem handles player movement, gravity and platform landing
// with the Intent & Apply model
type PhysicsSystem struct {
	config config.PhysicsConfig
	stage  *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsConfig, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		stage:  stage,
	}
}

// Move applies a horizontal move and updates facing.
// Clamping is left to ClampX so opposing moves in one tick cancel exactly.
func (s *PhysicsSystem) Move(player *entity.Player, intent MoveIntent) {
	player.X += intent.DX
	player.Facing = intent.Facing
}

// Jump applies a jump impulse if the player is grounded.
// Returns false when the player is already airborne.
func (s *PhysicsSystem) Jump(player *entity.Player, intent JumpIntent) bool {
	if player.Jumping {
		return false
	}
	player.VY = intent.Impulse
	player.Jumping = true
	return true
}

// Update applies gravity, integrates the vertical position and lands the
// player on platforms. Returns true if the player is grounded.
func (s *PhysicsSystem) Update(player *entity.Player) bool {
	s.applyGravity(player)
	player.Y += player.VY

	grounded := s.ResolvePlatforms(player)

	// Any tick without ground contact counts as airborne, including the
	// first frame of walking off a ledge.
	player.Jumping = !grounded
	return grounded
}

// applyGravity accelerates the player downward. It runs every tick.
func (s *PhysicsSystem) applyGravity(player *entity.Player) {
	player.VY += s.config.Gravity
}

// ResolvePlatforms snaps a falling or resting player onto every platform it
// overlaps. Upward motion never lands. When several platforms overlap the
// last one in layout order wins; there is no penetration-depth sorting and
// fast falls can tunnel through thin platforms.
func (s *PhysicsSystem) ResolvePlatforms(player *entity.Player) bool {
	grounded := false
	for _, platform := range s.stage.Platforms {
		if player.VY >= 0 && player.Intersects(platform.Rect) {
			player.Y = platform.Y - player.H
			player.VY = 0
			grounded = true
		}
	}
	return grounded
}

// ClampX keeps the player inside the horizontal screen bounds
func (s *PhysicsSystem) ClampX(player *entity.Player) {
	if !s.config.ClampToScreen {
		return
	}
	if player.X < 0 {
		player.X = 0
	}
	if maxX := s.stage.Width - player.W; player.X > maxX {
		player.X = maxX
	}
}

// BelowKillPlane returns true once the player has fallen out of the world
func (s *PhysicsSystem) BelowKillPlane(player *entity.Player) bool {
	return s.config.KillPlaneY > 0 && player.Y > s.config.KillPlaneY
}
