package entity

// Enemy is a static sentry. It has no velocity and no AI; it is destroyed
// by a player attack and replaced by a freshly spawned one.
type Enemy struct {
	ID EntityID
	Rect
}

// NewEnemy creates a new enemy
func NewEnemy(id EntityID, x, y, w, h int) *Enemy {
	return &Enemy{
		ID:   id,
		Rect: NewRect(x, y, w, h),
	}
}

// OnTopOf returns the enemy rectangle resting on the platform at offset x.
// The enemy's bottom edge touches the platform's top edge.
func OnTopOf(p Platform, x, w, h int) Rect {
	return NewRect(x, p.Y-h, w, h)
}
