package components

// Input 单帧玩家输入
// 由前端（Ebitengine 或终端）在每个 tick 开始时采集
type Input struct {
	Move    int  // -1 向左，0 不动，+1 向右
	Fire    bool // 射击键按住
	Start   bool // 开始游戏（回车或点击）
	Restart bool // 重新开始（R）
}
