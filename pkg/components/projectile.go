package components

// Bullet 玩家子弹，向上飞行
type Bullet struct {
	Rect
	Speed float64
}

// BossBullet Boss 子弹，向下飞行
type BossBullet struct {
	Rect
	Speed float64
}
