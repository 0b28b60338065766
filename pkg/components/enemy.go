package components

// EnemyType 敌机类型
type EnemyType int

const (
	// EnemyStraight 直线下落的敌机
	EnemyStraight EnemyType = iota
	// EnemySine 沿正弦曲线左右摆动下落的敌机
	EnemySine
)

// String 返回敌机类型名称（用于日志）
func (t EnemyType) String() string {
	switch t {
	case EnemyStraight:
		return "straight"
	case EnemySine:
		return "sine"
	}
	return "unknown"
}

// ImageID 返回敌机贴图的资源 ID
func (t EnemyType) ImageID() string {
	if t == EnemySine {
		return "enemy2"
	}
	return "enemy1"
}

// Enemy 普通敌机
type Enemy struct {
	Rect
	Type  EnemyType
	Speed float64
	Angle float64 // 正弦相位，仅 EnemySine 使用
}
