package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadLayout loads a layout YAML file
func (l *Loader) LoadLayout(name string) (*LayoutConfig, error) {
	path := "layouts/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", name, err)
	}

	var cfg LayoutConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads game.yaml and the layout it names, then validates both
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	layout, err := l.LoadLayout(cfg.Layout)
	if err != nil {
		return nil, err
	}
	cfg.Stage = layout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the invariants the simulation relies on.
// A nil Stage is accepted; layout checks run only when one is attached.
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Display.Framerate)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size %dx%d", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	}
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("%w: player maxHealth %d", ErrInvalidConfig, c.Player.MaxHealth)
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		return fmt.Errorf("%w: enemy size %dx%d", ErrInvalidConfig, c.Enemy.Width, c.Enemy.Height)
	}
	if c.Combat.HitboxWidth <= 0 {
		return fmt.Errorf("%w: attack hitbox width %d", ErrInvalidConfig, c.Combat.HitboxWidth)
	}
	if c.Combat.AttackCooldownMs < 0 {
		return fmt.Errorf("%w: negative attack cooldown", ErrInvalidConfig)
	}

	if c.Stage == nil {
		return nil
	}
	if len(c.Stage.Platforms) == 0 {
		return fmt.Errorf("%w: layout %s has no platforms", ErrInvalidConfig, c.Stage.ID)
	}
	for i, p := range c.Stage.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: platform %d has size %dx%d", ErrInvalidConfig, i, p.W, p.H)
		}
		// Enemies spawn anywhere along a platform, so each one must fit.
		if p.W < c.Enemy.Width {
			return fmt.Errorf("%w: platform %d is %d px wide, narrower than an enemy (%d px)",
				ErrInvalidConfig, i, p.W, c.Enemy.Width)
		}
	}

	return nil
}
