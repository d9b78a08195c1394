package state

// GameState represents the current state of the gameplay scene
type GameState int

const (
	StatePlaying GameState = iota
	StateDead
	StateRetrying
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateDead:
		return "Dead"
	case StateRetrying:
		return "Retrying"
	default:
		return "Unknown"
	}
}

// Simulating returns true if the world advances in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
