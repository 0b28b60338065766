package systems

import (
	"math"

	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

// MotionSystem 推进所有实体的位置并标记过期实体
//
// 过期实体只做标记，由帧末的 RunState.RemoveMarked 统一清理。
type MotionSystem struct {
	cfg *config.GameConfig
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(cfg *config.GameConfig) *MotionSystem {
	return &MotionSystem{cfg: cfg}
}

// Update 执行一个 tick 的运动
func (ms *MotionSystem) Update(rs *game.RunState, stars *game.Starfield) {
	ms.updateStars(rs, stars)
	ms.updateParticles(rs)
	ms.updateBullets(rs)
	ms.updatePowerUps(rs)
	ms.updateEnemies(rs)
	ms.updateBoss(rs)
	ms.updateBossBullets(rs)
}

// updateStars 星星下落，飞出底部后回到顶部并换一个随机 x
func (ms *MotionSystem) updateStars(rs *game.RunState, stars *game.Starfield) {
	if stars == nil {
		return
	}
	for i := range stars.Stars {
		s := &stars.Stars[i]
		s.Y += s.Speed
		if s.Y > ms.cfg.Canvas.Height {
			s.Y = 0
			s.X = rs.Rand.Float64() * ms.cfg.Canvas.Width
		}
	}
}

func (ms *MotionSystem) updateParticles(rs *game.RunState) {
	rs.Particles.Each(func(slot int, p *components.Particle) {
		p.X += p.VelocityX
		p.Y += p.VelocityY
		p.Lifespan--
		if p.Lifespan <= 0 {
			rs.Particles.Destroy(slot)
		}
	})
}

// updateBullets 子弹上移，完全飞出顶部后移除
func (ms *MotionSystem) updateBullets(rs *game.RunState) {
	rs.Bullets.Each(func(slot int, b *components.Bullet) {
		b.Y -= b.Speed
		if b.Bottom() < 0 {
			rs.Bullets.Destroy(slot)
		}
	})
}

// updatePowerUps 道具下落；飞出底部或被玩家接住后移除
func (ms *MotionSystem) updatePowerUps(rs *game.RunState) {
	rs.PowerUps.Each(func(slot int, pu *components.PowerUp) {
		pu.Y += pu.Speed
		if pu.Y > ms.cfg.Canvas.Height {
			rs.PowerUps.Destroy(slot)
			return
		}
		if rs.Player.Intersects(pu.Rect) {
			rs.Player.PowerUpTimer = ms.cfg.Player.PowerUpTicks
			rs.PowerUps.Destroy(slot)
		}
	})
}

// updateEnemies 直线敌机匀速下落，正弦敌机下落的同时左右摆动
func (ms *MotionSystem) updateEnemies(rs *game.RunState) {
	ec := ms.cfg.Enemy
	rs.Enemies.Each(func(slot int, e *components.Enemy) {
		e.Y += e.Speed
		if e.Type == components.EnemySine {
			e.X += math.Sin(e.Angle) * ec.SineAmplitude
			e.Angle += ec.SineAngleStep
		}
		if e.Y > ms.cfg.Canvas.Height {
			rs.Enemies.Destroy(slot)
		}
	})
}

// updateBoss Boss 入场、左右往返并按冷却射击
func (ms *MotionSystem) updateBoss(rs *game.RunState) {
	boss := rs.Boss
	if boss == nil {
		return
	}
	bc := ms.cfg.Boss

	if boss.Y < bc.DockY {
		boss.Y += bc.EntrySpeed
	}

	boss.X += boss.Speed * boss.Direction
	if boss.X <= 0 || boss.X+boss.Width >= ms.cfg.Canvas.Width {
		boss.Direction = -boss.Direction
	}

	boss.FireCooldown--
	if boss.FireCooldown <= 0 {
		bullet := components.BossBullet{Speed: bc.BulletSpeed}
		bullet.X = boss.X + boss.Width/2 - bc.BulletWidth/2
		bullet.Y = boss.Bottom()
		bullet.Width = bc.BulletWidth
		bullet.Height = bc.BulletHeight
		rs.BossBullets.Spawn(bullet)

		boss.FireCooldown = ms.cfg.BossFireCooldown(rs.Stage)
	}
}

func (ms *MotionSystem) updateBossBullets(rs *game.RunState) {
	rs.BossBullets.Each(func(slot int, b *components.BossBullet) {
		b.Y += b.Speed
		if b.Y > ms.cfg.Canvas.Height {
			rs.BossBullets.Destroy(slot)
		}
	})
}
