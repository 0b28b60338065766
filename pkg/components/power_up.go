package components

// PowerUp 强化道具，从敌机击毁位置缓慢下落
type PowerUp struct {
	Rect
	Speed float64
}
