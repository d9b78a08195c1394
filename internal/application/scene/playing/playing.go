// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/younwookim/bootleg/internal/application/replay"
	"github.com/younwookim/bootleg/internal/application/scene"
	"github.com/younwookim/bootleg/internal/application/session"
	"github.com/younwookim/bootleg/internal/application/state"
	"github.com/younwookim/bootleg/internal/application/system"
	"github.com/younwookim/bootleg/internal/domain/entity"
	"github.com/younwookim/bootleg/internal/infrastructure/clock"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
	"github.com/younwookim/bootleg/internal/infrastructure/render"
)

// Renderer draws the scene. *render.Renderer implements it.
type Renderer interface {
	DrawWorld(screen *ebiten.Image, w render.World)
	DrawEndScreen(screen *ebiten.Image)
}

// Options configure a Playing scene
type Options struct {
	Input    system.InputSource // Keyboard when nil
	Renderer Renderer           // Nothing is drawn when nil
	Seeds    func() int64       // Wall clock when nil
	Record   bool               // Keep an input recording of each session
	Logger   zerolog.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	stage    *entity.Stage
	input    system.InputSource
	renderer Renderer
	seeds    func() int64
	log      zerolog.Logger

	state   state.GameState
	session *session.Session
	clock   *clock.Frame

	// Input recording
	record   bool
	recorder *replay.Recorder
}

// New creates a new Playing scene with a fresh session
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	p := &Playing{
		config:   cfg,
		stage:    system.LoadStage(cfg),
		input:    opts.Input,
		renderer: opts.Renderer,
		seeds:    opts.Seeds,
		log:      opts.Logger.With().Str("component", "playing").Logger(),
		record:   opts.Record,
	}
	if p.input == nil {
		p.input = system.KeyboardInput{}
	}
	if p.seeds == nil {
		p.seeds = func() int64 { return time.Now().UnixNano() }
	}

	if err := p.restart(); err != nil {
		return nil, err
	}
	return p, nil
}

// Update proceeds the game state (implements scene.Scene).
// Quitting is reported as ebiten.Termination.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	input := p.input.Poll()

	if input.Quit {
		p.log.Info().Stringer("state", p.state).Msg("quit")
		return nil, ebiten.Termination
	}

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(input)
	case state.StateDead:
		if input.Retry {
			p.state = state.StateRetrying
			p.log.Info().Msg("retry")
		}
	case state.StateRetrying:
		if err := p.restart(); err != nil {
			return nil, err
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.session.Step(input)
	p.clock.Advance()

	// The death tick is never drawn as a world frame: Draw switches to the
	// end screen as soon as the state is Dead.
	if p.session.Dead() {
		p.state = state.StateDead

		stats := p.session.Stats()
		p.log.Info().
			Int64("seed", p.session.Seed()).
			Int("ticks", stats.Ticks).
			Int("kills", stats.Kills).
			Int("damage", stats.DamageTaken).
			Msg("player died")

		if p.recorder != nil {
			p.recorder.Stop()
			p.logRecording()
		}
	}
}

// logRecording emits the finished recording at debug level. It can be fed
// back through replay.Decode and replay.NewReplayer.
func (p *Playing) logRecording() {
	e := p.log.Debug()
	if !e.Enabled() {
		return
	}

	b, err := p.recorder.Marshal()
	if err != nil {
		e.Discard()
		p.log.Warn().Err(err).Msg("failed to encode replay")
		return
	}
	e.Int("frames", p.recorder.FrameCount()).RawJSON("replay", b).Msg("session replay")
}

// restart discards the current session and starts a new one with a new seed
func (p *Playing) restart() error {
	seed := p.seeds()
	p.clock = clock.NewFrame(p.config.Display.Framerate)

	s, err := session.New(p.config, p.stage, p.clock, seed, p.log)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	p.session = s
	p.state = state.StatePlaying

	if p.record {
		p.recorder = replay.NewRecorder(seed, p.stage.Name)
	}

	p.log.Info().Int64("seed", seed).Str("stage", p.stage.Name).Msg("session started")
	return nil
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.renderer == nil {
		return
	}

	if p.state != state.StatePlaying {
		p.renderer.DrawEndScreen(screen)
		return
	}

	hitbox, ok := p.session.Hitbox()
	p.renderer.DrawWorld(screen, render.World{
		Player:    p.session.Player(),
		Platforms: p.stage.Platforms,
		Enemies:   p.session.Enemies(),
		Hitbox:    hitbox,
		HasHitbox: ok,
	})
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Recording returns the input recording of the current session, or nil
// when recording is off
func (p *Playing) Recording() *replay.Recorder {
	return p.recorder
}
