package system

import (
	"github.com/younwookim/bootleg/internal/domain/entity"
	"github.com/younwookim/bootleg/internal/infrastructure/config"
)

// LoadStage converts the loaded layout into a Stage entity sized to the screen
func LoadStage(cfg *config.GameConfig) *entity.Stage {
	var (
		name  string
		rects []entity.Rect
	)
	if cfg.Stage != nil {
		name = cfg.Stage.Name
		rects = make([]entity.Rect, 0, len(cfg.Stage.Platforms))
		for _, p := range cfg.Stage.Platforms {
			rects = append(rects, entity.NewRect(p.X, p.Y, p.W, p.H))
		}
	}

	return entity.NewStage(name, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, rects)
}
