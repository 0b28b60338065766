package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/starforce/pkg/components"
)

// DefaultHoldTicks 终端没有按键抬起事件，按下后视为持续按住的 tick 数
// 需要覆盖系统按键重复的首次延迟之后的间隔
const DefaultHoldTicks = 8

// Keyboard 把 tcell 按键事件转换为每 tick 的 components.Input
//
// 方向和射击按最近一次按下的 tick 推算是否仍按住；
// 开始和重新开始是一次性信号，被 Next 读取后清除。
type Keyboard struct {
	holdTicks uint64
	tick      uint64

	// 最近一次按下的 tick，0 表示从未按下
	left  uint64
	right uint64
	fire  uint64

	start   bool
	restart bool
}

// NewKeyboard 创建键盘状态
// holdTicks <= 0 时使用 DefaultHoldTicks
func NewKeyboard(holdTicks int) *Keyboard {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Keyboard{holdTicks: uint64(holdTicks), tick: 1}
}

// HandleKey 处理一个按键事件
//
// 返回:
//   - bool: 是否请求退出（Esc、Ctrl+C、q）
func (k *Keyboard) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		k.left, k.right = k.tick, 0
	case tcell.KeyRight:
		k.right, k.left = k.tick, 0
	case tcell.KeyEnter:
		k.start = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'a', 'A':
			k.left, k.right = k.tick, 0
		case 'd', 'D':
			k.right, k.left = k.tick, 0
		case ' ':
			k.fire = k.tick
		case 'r', 'R':
			k.restart = true
		}
	}
	return false
}

// Next 返回当前 tick 的输入并推进 tick
func (k *Keyboard) Next() components.Input {
	in := components.Input{
		Fire:    k.held(k.fire),
		Start:   k.start,
		Restart: k.restart,
	}
	switch {
	case k.held(k.left):
		in.Move = -1
	case k.held(k.right):
		in.Move = 1
	}

	k.start, k.restart = false, false
	k.tick++
	return in
}

func (k *Keyboard) held(pressedAt uint64) bool {
	return pressedAt != 0 && k.tick-pressedAt < k.holdTicks
}
