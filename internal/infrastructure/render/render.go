// Package render draws the world, the heart HUD and the end screen with
// ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/bootleg/internal/domain/entity"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = colornames.Skyblue
	colorPlayer   = colornames.Red
	colorEnemy    = colornames.Blue
	colorPlatform = colornames.Lime
	colorHitbox   = colornames.Yellow
	colorTitle    = colornames.Red
	colorPrompt   = colornames.Black
)

// Config is fixed for the lifetime of a Renderer
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	MaxHealth    int
	HeartSize    int
	HeartSpacing int
	Margin       int
}

// NewConfig picks the render settings out of the game config
func NewConfig(cfg *config.GameConfig) Config {
	return Config{
		ScreenWidth:  cfg.Display.ScreenWidth,
		ScreenHeight: cfg.Display.ScreenHeight,
		MaxHealth:    cfg.Player.MaxHealth,
		HeartSize:    cfg.HUD.HeartSize,
		HeartSpacing: cfg.HUD.HeartSpacing,
		Margin:       cfg.HUD.Margin,
	}
}

// World is what one frame shows
type World struct {
	Player    *entity.Player
	Platforms []entity.Platform
	Enemies   []*entity.Enemy
	Hitbox    entity.Rect
	HasHitbox bool
}

// Renderer owns the GPU-side heart icon
type Renderer struct {
	config Config
	heart  *ebiten.Image
	face   text.Face
}

// New uploads the heart icon. The icon is expected at HeartSize already.
func New(cfg Config, heart image.Image) *Renderer {
	return &Renderer{
		config: cfg,
		heart:  ebiten.NewImageFromImage(heart),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// DrawWorld renders the playing screen
func (r *Renderer) DrawWorld(screen *ebiten.Image, w World) {
	screen.Fill(colorBG)

	fillRect(screen, w.Player.Rect, colorPlayer)
	for _, p := range w.Platforms {
		fillRect(screen, p.Rect, colorPlatform)
	}
	for _, e := range w.Enemies {
		fillRect(screen, e.Rect, colorEnemy)
	}
	if w.HasHitbox {
		fillRect(screen, w.Hitbox, colorHitbox)
	}

	r.drawHearts(screen, w.Player.Health)
}

func (r *Renderer) drawHearts(screen *ebiten.Image, health int) {
	for _, pt := range HeartSlots(r.config, health) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(pt.X), float64(pt.Y))
		screen.DrawImage(r.heart, op)
	}
}

// DrawEndScreen renders the death screen
func (r *Renderer) DrawEndScreen(screen *ebiten.Image) {
	screen.Fill(colorBG)

	for _, l := range EndScreenLines(r.config) {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Scale(l.Scale, l.Scale)
		op.GeoM.Translate(float64(l.Center.X), float64(l.Center.Y))
		op.ColorScale.ScaleWithColor(l.Color)
		text.Draw(screen, l.Text, r.face, op)
	}
}

// Close releases the heart icon
func (r *Renderer) Close() {
	if r.heart != nil {
		r.heart.Deallocate()
		r.heart = nil
	}
}

// HeartSlots returns the top-left corners of the hearts to draw for the
// given health. Slot i sits at x = W - margin - (i+1)*(size+spacing); the
// slots lost first are the rightmost.
func HeartSlots(cfg Config, health int) []image.Point {
	lost := cfg.MaxHealth - health
	slots := make([]image.Point, 0, cfg.MaxHealth)
	for i := 0; i < cfg.MaxHealth; i++ {
		if i < lost {
			continue
		}
		x := cfg.ScreenWidth - cfg.Margin - (i+1)*(cfg.HeartSize+cfg.HeartSpacing)
		slots = append(slots, image.Pt(x, cfg.Margin))
	}
	return slots
}

// Line is a centered line of text
type Line struct {
	Text   string
	Center image.Point
	Scale  float64
	Color  color.Color
}

// EndScreenLines lays out the death screen text
func EndScreenLines(cfg Config) []Line {
	cx, cy := cfg.ScreenWidth/2, cfg.ScreenHeight/2
	return []Line{
		{Text: "You Died", Center: image.Pt(cx, cy), Scale: 3, Color: colorTitle},
		{Text: "Press SPACE to Retry", Center: image.Pt(cx, cy+50), Scale: 2, Color: colorPrompt},
	}
}

func fillRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
