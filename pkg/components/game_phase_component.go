package components

// GamePhase 游戏流程阶段
type GamePhase int

const (
	// PhaseStartScreen 标题画面，等待资源加载和开始信号
	PhaseStartScreen GamePhase = iota
	// PhasePlaying 正常关卡：生成敌机、移动、碰撞
	PhasePlaying
	// PhaseBossFight Boss 战：停止生成普通敌机
	PhaseBossFight
	// PhaseStageClearing 通关横幅，模拟冻结
	PhaseStageClearing
	// PhaseGameOver 游戏结束，模拟冻结
	PhaseGameOver
)

// String 返回阶段名称（用于日志）
func (p GamePhase) String() string {
	switch p {
	case PhaseStartScreen:
		return "StartScreen"
	case PhasePlaying:
		return "Playing"
	case PhaseBossFight:
		return "BossFight"
	case PhaseStageClearing:
		return "StageClearing"
	case PhaseGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Simulating 该阶段是否推进模拟（生成、移动、碰撞）
func (p GamePhase) Simulating() bool {
	return p == PhasePlaying || p == PhaseBossFight
}
