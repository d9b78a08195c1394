package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"

	"github.com/younwookim/bootleg/internal/infrastructure/config"
)

func createTestConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		MaxHealth:    3,
		HeartSize:    30,
		HeartSpacing: 5,
		Margin:       10,
	}
}

func TestNewConfig(t *testing.T) {
	cfg := &config.GameConfig{
		Display: config.DisplayConfig{ScreenWidth: 800, ScreenHeight: 600},
		Player:  config.PlayerConfig{MaxHealth: 3},
		HUD:     config.HUDConfig{HeartSize: 30, HeartSpacing: 5, Margin: 10},
	}

	assert.Equal(t, createTestConfig(), NewConfig(cfg))
}

func TestHeartSlots(t *testing.T) {
	tests := []struct {
		name   string
		health int
		want   []image.Point
	}{
		{"full health", 3, []image.Point{{755, 10}, {720, 10}, {685, 10}}},
		{"one lost: rightmost gone", 2, []image.Point{{720, 10}, {685, 10}}},
		{"two lost", 1, []image.Point{{685, 10}}},
		{"dead", 0, []image.Point{}},
		{"below zero", -1, []image.Point{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeartSlots(createTestConfig(), tt.health))
		})
	}
}

func TestHeartSlots_StayOnScreen(t *testing.T) {
	cfg := createTestConfig()

	for _, pt := range HeartSlots(cfg, cfg.MaxHealth) {
		assert.GreaterOrEqual(t, pt.X, 0)
		assert.LessOrEqual(t, pt.X+cfg.HeartSize, cfg.ScreenWidth-cfg.Margin)
	}
}

func TestEndScreenLines(t *testing.T) {
	lines := EndScreenLines(createTestConfig())

	assert.Equal(t, []Line{
		{Text: "You Died", Center: image.Pt(400, 300), Scale: 3, Color: colornames.Red},
		{Text: "Press SPACE to Retry", Center: image.Pt(400, 350), Scale: 2, Color: colornames.Black},
	}, lines)
}
