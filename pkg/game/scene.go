package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game with its own update and draw logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene onto screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在程序退出前保存状态
//
// 窗口关闭或收到系统退出信号时调用 SaveOnExit。
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会退出）
	SaveOnExit() bool
}
