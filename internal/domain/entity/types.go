package entity

import "fmt"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Rect is an axis-aligned rectangle in pixel units.
// X, Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle. Width and height must be positive.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate just past the right edge
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate just past the bottom edge
func (r Rect) Bottom() int { return r.Y + r.H }

// Valid reports whether the rectangle has a positive area
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

// Intersects reports whether two rectangles overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Facing is the horizontal direction the player looks at
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "Right"
	case FacingLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Platform is a static rectangle the player can stand on
type Platform struct {
	Rect
}

// Stage holds the fixed platform layout of a session
type Stage struct {
	Name      string
	Width     int
	Height    int
	Platforms []Platform
}

// NewStage creates a stage from platform rectangles.
// The platform slice is copied; a stage is never mutated after creation.
func NewStage(name string, width, height int, rects []Rect) *Stage {
	platforms := make([]Platform, len(rects))
	for i, r := range rects {
		platforms[i] = Platform{Rect: r}
	}
	return &Stage{
		Name:      name,
		Width:     width,
		Height:    height,
		Platforms: platforms,
	}
}

// NarrowestPlatform returns the width of the narrowest platform, or 0
// when the stage has no platforms.
func (s *Stage) NarrowestPlatform() int {
	narrowest := 0
	for i, p := range s.Platforms {
		if i == 0 || p.W < narrowest {
			narrowest = p.W
		}
	}
	return narrowest
}
