package entity

// Player represents the player entity.
// Position and size are stored in the embedded Rect.
type Player struct {
	Rect

	VY      int // Vertical velocity, pixels per tick (negative = up)
	Facing  Facing
	Jumping bool // Airborne; gates the jump impulse

	Health    int
	MaxHealth int
}

// NewPlayer creates a new player at the given pixel position, facing right
// with full health.
func NewPlayer(x, y, w, h, maxHealth int) *Player {
	return &Player{
		Rect:      NewRect(x, y, w, h),
		Facing:    FacingRight,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// IsDead returns true once health is exhausted
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// TakeDamage lowers health by amount, never below zero.
// Returns the damage actually applied.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > p.Health {
		amount = p.Health
	}
	p.Health -= amount
	return amount
}

// FacingRight returns true if the player looks to the right
func (p *Player) FacingRight() bool {
	return p.Facing == FacingRight
}
