package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Combat  CombatConfig  `yaml:"combat"`
	HUD     HUDConfig     `yaml:"hud"`
	Assets  AssetsConfig  `yaml:"assets"`
	Layout  string        `yaml:"layout"` // Layout file name under layouts/, without extension

	// Stage is the loaded platform layout. Filled by LoadAll.
	Stage *LayoutConfig `yaml:"-"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Framerate    int    `yaml:"framerate"`
}

// PhysicsConfig values are per tick; the simulation runs at a fixed rate.
type PhysicsConfig struct {
	Gravity       int  `yaml:"gravity"`      // px/tick²
	JumpStrength  int  `yaml:"jumpStrength"` // px/tick, applied upward
	MoveSpeed     int  `yaml:"moveSpeed"`    // px/tick
	ClampToScreen bool `yaml:"clampToScreen"`
	KillPlaneY    int  `yaml:"killPlaneY"` // 0 disables
}

type PlayerConfig struct {
	Spawn     PositionConfig `yaml:"spawn"`
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	MaxHealth int            `yaml:"maxHealth"`
}

type EnemyConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	InitialCount int `yaml:"initialCount"`
}

type CombatConfig struct {
	AttackCooldownMs int64 `yaml:"attackCooldownMs"`
	HitboxWidth      int   `yaml:"hitboxWidth"`
	Knockback        int   `yaml:"knockback"`
	ContactDamage    int   `yaml:"contactDamage"`
}

type HUDConfig struct {
	HeartSize    int `yaml:"heartSize"`
	HeartSpacing int `yaml:"heartSpacing"`
	Margin       int `yaml:"margin"`
}

type AssetsConfig struct {
	Heart string `yaml:"heart"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}
