package scenes

import (
	"github.com/gonewx/starforce/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyState 键盘/鼠标状态查询
// 默认实现直接读取 Ebitengine 的输入状态，测试中可替换
type KeyState interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
	// Clicked 本帧是否有鼠标左键或触摸按下
	Clicked() bool
	// Touch 返回当前触摸点的 X 坐标，没有触摸时 ok 为 false
	Touch() (x float64, ok bool)
}

// ebitenKeys 读取 Ebitengine 输入
type ebitenKeys struct {
	touchIDs []ebiten.TouchID
}

func (k *ebitenKeys) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (k *ebitenKeys) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (k *ebitenKeys) Clicked() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	k.touchIDs = inpututil.AppendJustPressedTouchIDs(k.touchIDs[:0])
	return len(k.touchIDs) > 0
}

func (k *ebitenKeys) Touch() (float64, bool) {
	k.touchIDs = ebiten.AppendTouchIDs(k.touchIDs[:0])
	if len(k.touchIDs) == 0 {
		return 0, false
	}
	x, _ := ebiten.TouchPosition(k.touchIDs[0])
	return float64(x), true
}

// touchDeadZone 触摸点与飞船中心的水平距离小于该值时不移动，避免左右抖动
const touchDeadZone = 8

// ReadInput 采集一个 tick 的输入
//
// 绑定：←/A 左移，→/D 右移，空格射击，回车或点击开始，R 或点击重新开始。
// 左右同时按下时互相抵消。点击同时产生开始和重新开始信号，由游戏流程按阶段取用。
//
// 触摸屏没有键盘：按住屏幕时持续射击，飞船向触摸点水平移动。
// playerCenterX 为飞船当前中心的 X 坐标。
func ReadInput(keys KeyState, playerCenterX float64) components.Input {
	var in components.Input

	if x, ok := keys.Touch(); ok {
		in.Fire = true
		switch {
		case x < playerCenterX-touchDeadZone:
			in.Move = -1
		case x > playerCenterX+touchDeadZone:
			in.Move = 1
		}
	}

	var move int
	if keys.Pressed(ebiten.KeyArrowLeft) || keys.Pressed(ebiten.KeyA) {
		move--
	}
	if keys.Pressed(ebiten.KeyArrowRight) || keys.Pressed(ebiten.KeyD) {
		move++
	}
	if move != 0 {
		in.Move = move
	}

	in.Fire = in.Fire || keys.Pressed(ebiten.KeySpace)
	clicked := keys.Clicked()
	in.Start = keys.JustPressed(ebiten.KeyEnter) || keys.JustPressed(ebiten.KeyNumpadEnter) || clicked
	in.Restart = keys.JustPressed(ebiten.KeyR) || clicked

	return in
}
