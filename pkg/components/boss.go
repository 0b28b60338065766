package components

// Boss 关底 Boss
// 同一时刻最多只有一个，仅在 Boss 战阶段存在
type Boss struct {
	Rect

	Speed        float64
	Direction    float64 // 水平移动方向，+1 向右，-1 向左
	HP           int
	MaxHP        int
	FireCooldown int // 距下次射击的 tick
}

// HPRatio 返回剩余血量比例 [0, 1]
func (b *Boss) HPRatio() float64 {
	if b.MaxHP <= 0 || b.HP <= 0 {
		return 0
	}
	return float64(b.HP) / float64(b.MaxHP)
}
