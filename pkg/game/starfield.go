package game

import (
	"math/rand/v2"

	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
)

// Starfield 背景星空
// 进程内只初始化一次，跨局保留
type Starfield struct {
	Stars []components.Star
}

// NewStarfield 在画布内随机撒下星星
func NewStarfield(cfg *config.GameConfig, rng *rand.Rand) *Starfield {
	sf := &Starfield{Stars: make([]components.Star, cfg.Stars.Count)}
	for i := range sf.Stars {
		sf.Stars[i] = components.Star{
			X:     rng.Float64() * cfg.Canvas.Width,
			Y:     rng.Float64() * cfg.Canvas.Height,
			Size:  rng.Float64()*cfg.Stars.SizeRange + cfg.Stars.MinSize,
			Speed: rng.Float64()*cfg.Stars.SpeedRange + cfg.Stars.MinSpeed,
		}
	}
	return sf
}
