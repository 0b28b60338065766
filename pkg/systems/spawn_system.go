package systems

import (
	"log"

	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

// SpawnSystem 按关卡节奏生成敌机、Boss 和道具
type SpawnSystem struct {
	cfg *config.GameConfig
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(cfg *config.GameConfig) *SpawnSystem {
	return &SpawnSystem{cfg: cfg}
}

// Update 执行一个 tick 的生成逻辑
//
// 返回:
//   - bool: Boss 是否在本 tick 出现
func (ss *SpawnSystem) Update(rs *game.RunState) bool {
	// Boss 出现后本关不再生成普通敌机
	if rs.BossSpawned {
		return false
	}

	rs.SpawnTick++

	if rs.SpawnTick%ss.cfg.SpawnCadence(rs.Stage) == 0 {
		ss.spawnEnemy(rs, components.EnemyStraight)
	}
	if ss.cfg.IsSineSpawnTick(rs.SpawnTick, rs.Stage) {
		ss.spawnEnemy(rs, components.EnemySine)
	}

	if ss.bossTriggered(rs) {
		ss.spawnBoss(rs)
		return true
	}
	return false
}

// bossTriggered 判断是否满足 Boss 出现条件
// 旅程模式看已生成敌机数，否则看分数
func (ss *SpawnSystem) bossTriggered(rs *game.RunState) bool {
	if rs.BossSpawned {
		return false
	}
	if rs.Journey {
		return rs.JourneySpawnCount >= ss.cfg.Journey.MaxEnemies
	}
	return rs.Score >= ss.cfg.BossScoreThreshold(rs.Stage)
}

// spawnEnemy 在画布上方随机 x 处生成一架敌机
func (ss *SpawnSystem) spawnEnemy(rs *game.RunState, t components.EnemyType) {
	ec := ss.cfg.Enemy

	enemy := components.Enemy{Type: t}
	enemy.X = rs.Rand.Float64() * (ss.cfg.Canvas.Width - ec.Width)
	enemy.Y = -ec.Height
	enemy.Width = ec.Width
	enemy.Height = ec.Height
	if t == components.EnemySine {
		enemy.Speed = ss.cfg.SineSpeed(rs.Stage)
	} else {
		enemy.Speed = ss.cfg.StraightSpeed(rs.Stage)
	}
	rs.Enemies.Spawn(enemy)

	if rs.Journey {
		rs.JourneySpawnCount++
	}
}

// spawnBoss 生成 Boss：清空普通敌机并结束本关旅程模式
func (ss *SpawnSystem) spawnBoss(rs *game.RunState) {
	bc := ss.cfg.Boss

	rs.Enemies.Clear()
	rs.Journey = false
	rs.BossSpawned = true

	hp := ss.cfg.BossHP(rs.Stage)
	boss := &components.Boss{
		Speed:     bc.Speed,
		Direction: 1,
		HP:        hp,
		MaxHP:     hp,
	}
	boss.X = ss.cfg.Canvas.Width/2 - bc.Width/2
	boss.Y = bc.SpawnY
	boss.Width = bc.Width
	boss.Height = bc.Height
	rs.Boss = boss

	log.Printf("[SpawnSystem] Boss spawned at stage %d (hp %d, score %d)", rs.Stage, hp, rs.Score)
}

// DropPowerUp 以 DropChance 的概率在 (x, y) 处掉落道具
//
// 返回:
//   - bool: 是否掉落
func (ss *SpawnSystem) DropPowerUp(rs *game.RunState, x, y float64) bool {
	pc := ss.cfg.PowerUp
	if rs.Rand.Float64() >= pc.DropChance {
		return false
	}

	pu := components.PowerUp{Speed: pc.FallSpeed}
	pu.X = x
	pu.Y = y
	pu.Width = pc.Width
	pu.Height = pc.Height
	rs.PowerUps.Spawn(pu)
	return true
}
