package game

import (
	"math/rand/v2"

	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/ecs"
)

// RunState 一局游戏的全部可变状态
//
// 开始新的一局时整体替换，不做逐字段重置。
// 所有实体池只由模拟 tick 修改，渲染只读取。
type RunState struct {
	Score int
	Stage int

	// SpawnTick 普通敌机生成计数器，每个模拟 tick 加 1
	SpawnTick int

	// 旅程模式：Boss 由已生成的敌机数量触发
	Journey           bool
	JourneySpawnCount int

	// BossSpawned 本关 Boss 是否已出现（每关只触发一次）
	BossSpawned bool

	Player components.Player
	// Boss 为 nil 表示当前没有 Boss
	Boss *components.Boss

	Bullets     *ecs.Pool[components.Bullet]
	Enemies     *ecs.Pool[components.Enemy]
	BossBullets *ecs.Pool[components.BossBullet]
	PowerUps    *ecs.Pool[components.PowerUp]
	Particles   *ecs.Pool[components.Particle]

	// Rand 本局使用的随机源，注入以便测试复现
	Rand *rand.Rand
}

// NewRunState 创建第 1 关的初始状态
func NewRunState(cfg *config.GameConfig, rng *rand.Rand) *RunState {
	rs := &RunState{
		Stage:       1,
		Journey:     cfg.Journey.Enabled,
		Bullets:     ecs.NewPool[components.Bullet](32),
		Enemies:     ecs.NewPool[components.Enemy](32),
		BossBullets: ecs.NewPool[components.BossBullet](16),
		PowerUps:    ecs.NewPool[components.PowerUp](4),
		Particles:   ecs.NewPool[components.Particle](256),
		Rand:        rng,
	}

	rs.Player = components.Player{
		Speed: cfg.Player.Speed,
		Lives: cfg.Player.Lives,
	}
	rs.Player.Width = cfg.Player.Width
	rs.Player.Height = cfg.Player.Height
	rs.PlacePlayer(cfg)

	return rs
}

// PlacePlayer 把玩家放回出生点（底部居中）
func (rs *RunState) PlacePlayer(cfg *config.GameConfig) {
	rs.Player.X = cfg.Canvas.Width/2 - cfg.Player.Width/2
	rs.Player.Y = cfg.Canvas.Height - cfg.Player.BottomOffset
}

// AddScore 增加分数，负数被忽略（分数在一局内单调不减）
func (rs *RunState) AddScore(points int) {
	if points > 0 {
		rs.Score += points
	}
}

// ClearTransient 清空所有临时实体（子弹、敌机、粒子、道具、Boss 子弹）
func (rs *RunState) ClearTransient() {
	rs.Bullets.Clear()
	rs.Enemies.Clear()
	rs.BossBullets.Clear()
	rs.PowerUps.Clear()
	rs.Particles.Clear()
	rs.Boss = nil
}

// AdvanceStage 进入下一关
// 保留分数和生命，重新开启旅程模式并把玩家放回出生点
func (rs *RunState) AdvanceStage(cfg *config.GameConfig) {
	rs.Stage++
	rs.ClearTransient()
	rs.BossSpawned = false
	rs.Journey = cfg.Journey.Enabled
	rs.JourneySpawnCount = 0
	rs.PlacePlayer(cfg)
}

// RemoveMarked 压缩所有实体池，返回清理的实体总数
func (rs *RunState) RemoveMarked() int {
	return rs.Bullets.RemoveMarked() +
		rs.Enemies.RemoveMarked() +
		rs.BossBullets.RemoveMarked() +
		rs.PowerUps.RemoveMarked() +
		rs.Particles.RemoveMarked()
}

// BossActive 当前是否有 Boss
func (rs *RunState) BossActive() bool {
	return rs.Boss != nil
}
