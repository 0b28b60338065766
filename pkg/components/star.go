package components

// Star 背景星星
// 星星数量固定，飞出底部后回到顶部，不参与碰撞
type Star struct {
	X     float64
	Y     float64
	Size  float64
	Speed float64
}
