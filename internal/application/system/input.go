package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/bootleg/internal/domain/entity"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
)

// InputState holds the input sampled for one tick
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool // Held
	Attack bool // Held
	Retry  bool // Just pressed
	Quit   bool // Just pressed
}

// InputSource produces one InputState per tick
type InputSource interface {
	Poll() InputState
}

// KeyboardInput samples the keyboard through ebiten.
// Arrow keys move, Space jumps, A attacks, Space retries on the end
// screen and Escape quits.
type KeyboardInput struct{}

// Poll reads the current keyboard state
func (KeyboardInput) Poll() InputState {
	return InputState{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:   ebiten.IsKeyPressed(ebiten.KeySpace),
		Attack: ebiten.IsKeyPressed(ebiten.KeyA),
		Retry:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// InputSystem turns sampled input into player intents
type InputSystem struct {
	config config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// Intents returns the intents for this tick in application order.
//
// Left is emitted before Right. When both are held the two moves cancel
// out and the later one decides facing, so Right wins the tie.
// A jump is only emitted while the player is grounded.
func (s *InputSystem) Intents(input InputState, player *entity.Player) []Intent {
	intents := make([]Intent, 0, 4)

	if input.Left {
		intents = append(intents, MoveIntent{DX: -s.config.MoveSpeed, Facing: entity.FacingLeft})
	}
	if input.Right {
		intents = append(intents, MoveIntent{DX: s.config.MoveSpeed, Facing: entity.FacingRight})
	}
	if input.Jump && !player.Jumping {
		intents = append(intents, JumpIntent{Impulse: -s.config.JumpStrength})
	}
	if input.Attack {
		intents = append(intents, AttackIntent{})
	}

	return intents
}
