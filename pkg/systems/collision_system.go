package systems

import (
	"log"

	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

// CollisionResult 一个 tick 的碰撞结果，供游戏流程决定阶段切换
type CollisionResult struct {
	EnemiesDestroyed int
	PlayerHit        bool
	GameOver         bool
	StageCleared     bool
}

// CollisionSystem AABB 碰撞检测及其效果（伤害、计分、移除、爆炸、掉落）
type CollisionSystem struct {
	cfg     *config.GameConfig
	spawner *SpawnSystem
	effects *EffectsSystem
	sounds  SoundPlayer
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - cfg: 游戏配置
//   - spawner: 用于击毁敌机时掉落道具
//   - effects: 用于生成爆炸粒子
//   - sounds: 音频协作者，可为 nil
func NewCollisionSystem(cfg *config.GameConfig, spawner *SpawnSystem, effects *EffectsSystem, sounds SoundPlayer) *CollisionSystem {
	if sounds == nil {
		sounds = nopSounds{}
	}
	return &CollisionSystem{
		cfg:     cfg,
		spawner: spawner,
		effects: effects,
		sounds:  sounds,
	}
}

// Update 按固定顺序处理碰撞：
//  1. 玩家子弹 ↔ 敌机
//  2. 玩家 ↔ 敌机 / Boss 子弹 / Boss 本体（无敌时跳过）
//  3. 玩家子弹 ↔ Boss
//
// 玩家生命耗尽时立即返回，不再处理第 3 步。
func (cs *CollisionSystem) Update(rs *game.RunState) CollisionResult {
	var result CollisionResult

	result.EnemiesDestroyed = cs.bulletsVsEnemies(rs)

	if !rs.Player.Invincible && cs.playerVsHostiles(rs) {
		result.PlayerHit = true
		if cs.hitPlayer(rs) {
			result.GameOver = true
			return result
		}
	}

	result.StageCleared = cs.bulletsVsBoss(rs)
	return result
}

// bulletsVsEnemies 每颗子弹最多击毁一架敌机
func (cs *CollisionSystem) bulletsVsEnemies(rs *game.RunState) int {
	destroyed := 0
	for i := 0; i < rs.Bullets.Len(); i++ {
		if !rs.Bullets.IsAlive(i) {
			continue
		}
		bullet := rs.Bullets.At(i)

		for j := 0; j < rs.Enemies.Len(); j++ {
			if !rs.Enemies.IsAlive(j) {
				continue
			}
			enemy := rs.Enemies.At(j)
			if !bullet.Intersects(enemy.Rect) {
				continue
			}

			rs.Bullets.Destroy(i)
			rs.Enemies.Destroy(j)
			rs.AddScore(cs.cfg.Scoring.EnemyKill)
			destroyed++

			cx, cy := enemy.Center()
			cs.effects.Explode(rs, cx, cy, components.ParticleRed, cs.cfg.Particle.BurstCount)
			cs.spawner.DropPowerUp(rs, enemy.X, enemy.Y)
			cs.sounds.PlaySound(game.SoundExplosion)
			break
		}
	}
	return destroyed
}

// playerVsHostiles 依次检查敌机、Boss 子弹、Boss 本体，命中任意一个即返回
func (cs *CollisionSystem) playerVsHostiles(rs *game.RunState) bool {
	player := rs.Player.Rect

	for i := 0; i < rs.Enemies.Len(); i++ {
		if rs.Enemies.IsAlive(i) && player.Intersects(rs.Enemies.At(i).Rect) {
			return true
		}
	}
	for i := 0; i < rs.BossBullets.Len(); i++ {
		if rs.BossBullets.IsAlive(i) && player.Intersects(rs.BossBullets.At(i).Rect) {
			return true
		}
	}
	return rs.Boss != nil && player.Intersects(rs.Boss.Rect)
}

// hitPlayer 扣除一条命
//
// 返回:
//   - bool: 生命是否耗尽
func (cs *CollisionSystem) hitPlayer(rs *game.RunState) bool {
	p := &rs.Player
	if p.Lives > 0 {
		p.Lives--
	}

	cx, cy := p.Center()
	cs.effects.Explode(rs, cx, cy, components.ParticleWhite, cs.cfg.Particle.BurstCount)
	cs.sounds.PlaySound(game.SoundExplosion)

	if p.Lives <= 0 {
		log.Printf("[CollisionSystem] Player destroyed at stage %d (score %d)", rs.Stage, rs.Score)
		return true
	}

	p.Invincible = true
	p.InvincibleTimer = cs.cfg.Player.InvincibilityTicks
	return false
}

// bulletsVsBoss 命中 Boss 的子弹逐颗结算，Boss 血量归零后停止
//
// 返回:
//   - bool: Boss 是否被击毁
func (cs *CollisionSystem) bulletsVsBoss(rs *game.RunState) bool {
	boss := rs.Boss
	if boss == nil {
		return false
	}

	for i := 0; i < rs.Bullets.Len(); i++ {
		if !rs.Bullets.IsAlive(i) {
			continue
		}
		bullet := rs.Bullets.At(i)
		if !bullet.Intersects(boss.Rect) {
			continue
		}

		rs.Bullets.Destroy(i)
		boss.HP -= cs.cfg.Boss.HitDamage
		cs.effects.Explode(rs, bullet.X, bullet.Y, components.ParticleOrange, cs.cfg.Particle.HitBurstCount)

		if boss.HP <= 0 {
			cs.defeatBoss(rs)
			return true
		}
	}
	return false
}

// defeatBoss 结算通关奖励并移除 Boss
func (cs *CollisionSystem) defeatBoss(rs *game.RunState) {
	boss := rs.Boss
	bonus := cs.cfg.StageClearBonus(rs.Stage)
	rs.AddScore(bonus)

	cs.sounds.PlaySound(game.SoundBossExplosion)
	cx, cy := boss.Center()
	cs.effects.Explode(rs, cx, cy, components.ParticlePurple, cs.cfg.Particle.BossBurstCount)

	rs.Boss = nil
	log.Printf("[CollisionSystem] Boss defeated at stage %d (bonus %d)", rs.Stage, bonus)
}
