package systems

import (
	"log"
	"math/rand/v2"

	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

// GameFlowOptions 游戏流程的外部协作者
//
// 所有字段都可以为零值：
//   - Clock 为 nil 时使用系统时钟
//   - Assets 为 nil 时视为资源已就绪
//   - Sounds 为 nil 时静音
//   - Scores 为 nil 时最高分只保存在内存中
//   - NewRand 为 nil 时每局使用新的随机种子
type GameFlowOptions struct {
	Clock   game.Clock
	Assets  *game.LoadFuture
	Sounds  SoundPlayer
	Scores  HighScoreStore
	NewRand func() *rand.Rand
}

// GameFlowSystem 游戏流程状态机
//
// 阶段流转：
//
//	StartScreen → Playing ⇄ BossFight → StageClearing → Playing(下一关) ...
//	Playing/BossFight → GameOver → Playing(新的一局)
//
// 它持有模拟 tick 调度器和通关横幅的墙钟定时器：
// 进入冻结阶段时取消调度器，离开时重新武装。
type GameFlowSystem struct {
	cfg   *config.GameConfig
	phase components.GamePhase

	run   *game.RunState
	stars *game.Starfield

	scheduler  *game.Scheduler
	stageClear *game.Deadline
	assets     *game.LoadFuture

	sounds  SoundPlayer
	scores  HighScoreStore
	newRand func() *rand.Rand

	// highScore 显示用的最高分，本局刷新纪录时实时更新
	// savedHighScore 已写入存储的纪录
	highScore      int
	savedHighScore int

	player    *PlayerSystem
	spawner   *SpawnSystem
	motion    *MotionSystem
	collision *CollisionSystem
	effects   *EffectsSystem

	lastResult CollisionResult
}

// NewGameFlowSystem 创建处于 StartScreen 阶段的游戏流程
func NewGameFlowSystem(cfg *config.GameConfig, opts GameFlowOptions) *GameFlowSystem {
	if opts.Clock == nil {
		opts.Clock = game.RealClock{}
	}
	if opts.Sounds == nil {
		opts.Sounds = nopSounds{}
	}
	if opts.NewRand == nil {
		opts.NewRand = func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}

	effects := NewEffectsSystem(cfg)
	spawner := NewSpawnSystem(cfg)

	fs := &GameFlowSystem{
		cfg:        cfg,
		phase:      components.PhaseStartScreen,
		scheduler:  game.NewScheduler(),
		stageClear: game.NewDeadline(opts.Clock),
		assets:     opts.Assets,
		sounds:     opts.Sounds,
		scores:     opts.Scores,
		newRand:    opts.NewRand,
		player:     NewPlayerSystem(cfg, opts.Sounds),
		spawner:    spawner,
		motion:     NewMotionSystem(cfg),
		collision:  NewCollisionSystem(cfg, spawner, effects, opts.Sounds),
		effects:    effects,
	}

	// 标题画面也需要一个玩家和星空用于绘制
	fs.run = game.NewRunState(cfg, fs.newRand())
	fs.stars = game.NewStarfield(cfg, fs.run.Rand)

	if fs.scores != nil {
		fs.highScore = fs.scores.LoadHighScore()
		fs.savedHighScore = fs.highScore
	}

	return fs
}

// Update 处理一帧
//
// 冻结阶段只检查输入和定时器，不推进模拟。
func (fs *GameFlowSystem) Update(input components.Input) {
	switch fs.phase {
	case components.PhaseStartScreen:
		if input.Start && fs.AssetsReady() {
			fs.startRun()
		}

	case components.PhaseGameOver:
		if input.Restart {
			fs.startRun()
		}

	case components.PhaseStageClearing:
		if fs.stageClear.Poll() {
			fs.nextStage()
		}

	case components.PhasePlaying, components.PhaseBossFight:
		fs.scheduler.Tick(func() { fs.step(input) })
	}
}

// step 执行一个模拟 tick：输入 → 生成 → 移动 → 碰撞 → 清理
func (fs *GameFlowSystem) step(input components.Input) {
	rs := fs.run

	fs.player.Update(rs, input)

	if fs.spawner.Update(rs) {
		fs.setPhase(components.PhaseBossFight)
	}

	fs.motion.Update(rs, fs.stars)

	fs.lastResult = fs.collision.Update(rs)

	rs.RemoveMarked()

	// HUD 实时显示新纪录，写入存储留到游戏结束或退出
	if rs.Score > fs.highScore {
		fs.highScore = rs.Score
	}

	switch {
	case fs.lastResult.GameOver:
		fs.enterGameOver()
	case fs.lastResult.StageCleared:
		fs.enterStageClearing()
	}
}

// startRun 整体替换 RunState 开始新的一局
func (fs *GameFlowSystem) startRun() {
	fs.run = game.NewRunState(fs.cfg, fs.newRand())
	fs.lastResult = CollisionResult{}
	fs.stageClear.Cancel()

	fs.setPhase(components.PhasePlaying)
	fs.scheduler.Arm()
	fs.sounds.PlayMusic(game.MusicBGM)

	log.Printf("[GameFlow] New run started (high score %d)", fs.highScore)
}

// enterGameOver 冻结模拟，停止音乐，必要时保存最高分
func (fs *GameFlowSystem) enterGameOver() {
	fs.scheduler.Cancel()
	fs.stageClear.Cancel()
	fs.setPhase(components.PhaseGameOver)
	fs.sounds.StopMusic()

	if err := fs.PersistHighScore(); err != nil {
		log.Printf("[GameFlow] Warning: Failed to save high score: %v", err)
	}
}

// PersistHighScore 当前分数超过已保存的纪录时写入存储
//
// 游戏结束时自动调用；程序退出时由场景调用，保存未结束的一局。
// 写入失败时纪录仍视为未保存，下次调用会重试。
func (fs *GameFlowSystem) PersistHighScore() error {
	score := fs.run.Score
	if score > fs.highScore {
		fs.highScore = score
	}
	if score <= fs.savedHighScore {
		return nil
	}

	if fs.scores != nil {
		if _, err := fs.scores.SaveHighScore(score, fs.run.Stage); err != nil {
			return err
		}
	}
	fs.savedHighScore = score
	return nil
}

// enterStageClearing 冻结模拟并启动通关横幅计时
func (fs *GameFlowSystem) enterStageClearing() {
	fs.scheduler.Cancel()
	fs.setPhase(components.PhaseStageClearing)
	fs.stageClear.Arm(fs.cfg.StageClearDuration())
}

// nextStage 进入下一关，保留分数和生命
func (fs *GameFlowSystem) nextStage() {
	fs.run.AdvanceStage(fs.cfg)
	fs.setPhase(components.PhasePlaying)
	fs.scheduler.Arm()
}

func (fs *GameFlowSystem) setPhase(phase components.GamePhase) {
	if fs.phase == phase {
		return
	}
	log.Printf("[GameFlow] %s -> %s (stage %d, score %d)", fs.phase, phase, fs.run.Stage, fs.run.Score)
	fs.phase = phase
}

// Phase 返回当前阶段
func (fs *GameFlowSystem) Phase() components.GamePhase {
	return fs.phase
}

// Run 返回当前一局的状态
func (fs *GameFlowSystem) Run() *game.RunState {
	return fs.run
}

// Stars 返回背景星空
func (fs *GameFlowSystem) Stars() *game.Starfield {
	return fs.stars
}

// Scheduler 返回模拟 tick 调度器
func (fs *GameFlowSystem) Scheduler() *game.Scheduler {
	return fs.scheduler
}

// StageClearDeadline 返回通关横幅定时器
func (fs *GameFlowSystem) StageClearDeadline() *game.Deadline {
	return fs.stageClear
}

// HighScore 返回当前显示的最高分（包含本局尚未保存的新纪录）
func (fs *GameFlowSystem) HighScore() int {
	return fs.highScore
}

// LastCollision 返回最近一个模拟 tick 的碰撞结果
func (fs *GameFlowSystem) LastCollision() CollisionResult {
	return fs.lastResult
}

// AssetsReady 资源是否加载完成
func (fs *GameFlowSystem) AssetsReady() bool {
	return fs.assets == nil || fs.assets.Ready()
}

// Frame 返回供渲染使用的只读视图
func (fs *GameFlowSystem) Frame() Frame {
	return Frame{
		Phase:       fs.phase,
		Run:         fs.run,
		Stars:       fs.stars,
		HighScore:   fs.highScore,
		AssetsReady: fs.AssetsReady(),
	}
}
