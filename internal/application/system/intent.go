package system

import "github.com/younwookim/bootleg/internal/domain/entity"

// Intent represents an action the player wants to perform this tick
type Intent interface {
	isIntent()
}

// MoveIntent represents a horizontal movement intention
type MoveIntent struct {
	DX     int // Pixels to move
	Facing entity.Facing
}

func (MoveIntent) isIntent() {}

// JumpIntent represents a jump intention
type JumpIntent struct {
	Impulse int // Vertical velocity to set, negative is upward
}

func (JumpIntent) isIntent() {}

// AttackIntent represents a melee attack intention.
// The swing direction is the player's facing once movement is applied.
type AttackIntent struct{}

func (AttackIntent) isIntent() {}
