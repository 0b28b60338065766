package systems

import (
	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

// PlayerSystem 处理玩家输入、移动、射击和计时器
type PlayerSystem struct {
	cfg    *config.GameConfig
	sounds SoundPlayer
}

// NewPlayerSystem 创建玩家系统
//
// 参数:
//   - cfg: 游戏配置
//   - sounds: 音频协作者，可为 nil
func NewPlayerSystem(cfg *config.GameConfig, sounds SoundPlayer) *PlayerSystem {
	if sounds == nil {
		sounds = nopSounds{}
	}
	return &PlayerSystem{cfg: cfg, sounds: sounds}
}

// Update 执行一个 tick 的玩家逻辑
//
// 顺序：移动并夹紧到画布内 → 射击 → 计时器递减。
// 射击检查在冷却递减之前，因此冷却 N 表示每 N tick 射一发。
func (ps *PlayerSystem) Update(rs *game.RunState, input components.Input) {
	p := &rs.Player

	p.X += p.Speed * float64(clampMove(input.Move))
	ps.clamp(p)

	if input.Fire && p.FireCooldown <= 0 {
		ps.fire(rs)
	}

	ps.tickTimers(p)
}

// clamp 把玩家限制在 [0, W - width]
func (ps *PlayerSystem) clamp(p *components.Player) {
	maxX := ps.cfg.Canvas.Width - p.Width
	if p.X < 0 {
		p.X = 0
	}
	if p.X > maxX {
		p.X = maxX
	}
}

// fire 在飞船顶部中央生成一颗子弹并重置冷却
func (ps *PlayerSystem) fire(rs *game.RunState) {
	p := &rs.Player
	bc := ps.cfg.Bullet

	bullet := components.Bullet{Speed: bc.Speed}
	bullet.X = p.X + p.Width/2 - bc.Width/2
	bullet.Y = p.Y
	bullet.Width = bc.Width
	bullet.Height = bc.Height
	rs.Bullets.Spawn(bullet)

	ps.sounds.PlaySound(game.SoundShoot)

	if p.PoweredUp() {
		p.FireCooldown = ps.cfg.Player.PoweredFireCooldown
	} else {
		p.FireCooldown = ps.cfg.Player.FireCooldown
	}
}

// tickTimers 递减射击冷却、强化和无敌计时
//
// 无敌计时归零后的下一个 tick 才清除无敌标记，
// 因此被击中后恰好免疫 InvincibilityTicks 个 tick。
func (ps *PlayerSystem) tickTimers(p *components.Player) {
	if p.FireCooldown > 0 {
		p.FireCooldown--
	}
	if p.PowerUpTimer > 0 {
		p.PowerUpTimer--
	}
	if p.Invincible {
		if p.InvincibleTimer > 0 {
			p.InvincibleTimer--
		} else {
			p.Invincible = false
		}
	}
}

func clampMove(move int) int {
	switch {
	case move < 0:
		return -1
	case move > 0:
		return 1
	}
	return 0
}
