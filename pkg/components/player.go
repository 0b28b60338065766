package components

// Player 玩家飞船
// 整局游戏只有一个，重新开始时整体重置
type Player struct {
	Rect

	Speed float64 // 每 tick 水平移动像素
	Lives int     // 剩余生命，不会小于 0

	Invincible      bool
	InvincibleTimer int // 无敌剩余 tick
	FireCooldown    int // 距下次可射击的 tick
	PowerUpTimer    int // 强化射击剩余 tick
}

// PoweredUp 是否处于强化射击状态
func (p *Player) PoweredUp() bool {
	return p.PowerUpTimer > 0
}
