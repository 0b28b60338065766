package components

import "image/color"

// ParticleColor 爆炸粒子颜色标签
type ParticleColor int

const (
	// ParticleRed 普通敌机爆炸
	ParticleRed ParticleColor = iota
	// ParticleOrange 子弹击中 Boss
	ParticleOrange
	// ParticleWhite 玩家被击中
	ParticleWhite
	// ParticlePurple Boss 被击毁
	ParticlePurple
)

// RGBA 返回颜色标签对应的绘制颜色
func (c ParticleColor) RGBA() color.RGBA {
	switch c {
	case ParticleOrange:
		return color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	case ParticleWhite:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case ParticlePurple:
		return color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff}
	}
	return color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
}

// Particle 爆炸粒子
// 纯数据组件，由运动系统每 tick 按速度移动并递减寿命
type Particle struct {
	X, Y      float64
	VelocityX float64
	VelocityY float64
	Color     ParticleColor
	Lifespan  int // 剩余寿命（tick），<= 0 时移除
}
