package scenes

import (
	"log"

	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
	"github.com/gonewx/starforce/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 游戏主场景
//
// 每个 Update 采集一次输入并推进游戏流程；Draw 把当前帧交给渲染系统。
// 标题画面、游戏中、通关和游戏结束都在同一个场景内由状态机切换。
type GameScene struct {
	cfg      *config.GameConfig
	flow     *systems.GameFlowSystem
	renderer *systems.RenderSystem
	images   ImageSource
	keys     KeyState
}

// NewGameScene 创建游戏主场景
//
// 参数:
//   - cfg: 游戏配置
//   - flow: 游戏流程状态机
//   - images: 贴图来源，可为 nil
func NewGameScene(cfg *config.GameConfig, flow *systems.GameFlowSystem, images ImageSource) *GameScene {
	return &GameScene{
		cfg:      cfg,
		flow:     flow,
		renderer: systems.NewRenderSystem(cfg),
		images:   images,
		keys:     &ebitenKeys{},
	}
}

// SetKeyState 替换输入来源
func (s *GameScene) SetKeyState(keys KeyState) {
	s.keys = keys
}

// Flow 返回游戏流程状态机
func (s *GameScene) Flow() *systems.GameFlowSystem {
	return s.flow
}

// Update 推进一个 tick
// 模拟按固定步长运行，deltaTime 不参与计算
func (s *GameScene) Update(deltaTime float64) {
	cx, _ := s.flow.Run().Player.Center()
	s.flow.Update(ReadInput(s.keys, cx))
}

// Draw 绘制当前帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	surface := NewEbitenSurface(screen, s.images, s.cfg.Canvas.Width, s.cfg.Canvas.Height)
	s.renderer.Draw(surface, s.flow.Frame())
}

// SaveOnExit 退出时保存未结束一局的最高分
func (s *GameScene) SaveOnExit() bool {
	if err := s.flow.PersistHighScore(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save high score on exit: %v", err)
		return false
	}
	return true
}

var (
	_ game.Scene    = (*GameScene)(nil)
	_ game.Saveable = (*GameScene)(nil)
)
