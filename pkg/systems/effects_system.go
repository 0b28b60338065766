package systems

import (
	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

// EffectsSystem 生成爆炸粒子
type EffectsSystem struct {
	cfg *config.GameConfig
}

// NewEffectsSystem 创建特效系统
func NewEffectsSystem(cfg *config.GameConfig) *EffectsSystem {
	return &EffectsSystem{cfg: cfg}
}

// Explode 在 (x, y) 处生成 count 个粒子
// 每个粒子的速度分量在 [-Spread/2, Spread/2) 内均匀分布
func (es *EffectsSystem) Explode(rs *game.RunState, x, y float64, c components.ParticleColor, count int) {
	spread := es.cfg.Particle.Spread
	for i := 0; i < count; i++ {
		rs.Particles.Spawn(components.Particle{
			X:         x,
			Y:         y,
			VelocityX: (rs.Rand.Float64() - 0.5) * spread,
			VelocityY: (rs.Rand.Float64() - 0.5) * spread,
			Color:     c,
			Lifespan:  es.cfg.Particle.Lifespan,
		})
	}
}
