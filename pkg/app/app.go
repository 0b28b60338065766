// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"github.com/gonewx/starforce/internal/synth"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/embedded"
	"github.com/gonewx/starforce/pkg/game"
	"github.com/gonewx/starforce/pkg/scenes"
	"github.com/gonewx/starforce/pkg/systems"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// EmbeddedConfigPath 内置游戏配置
	EmbeddedConfigPath = "data/game.yaml"
	// ResourceConfigPath 贴图清单
	ResourceConfigPath = "assets/config/resources.yaml"

	sampleRate = 44100
	synthSeed  = 0x5747
	volumeStep = 0.1
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部游戏配置文件（.yaml/.yml/.toml），为空时使用内置配置
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	flow            *systems.GameFlowSystem
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// 存储不可用时降级为内存模式
	storage, err := game.OpenStorage(gameConfig.Storage.AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (high score and settings will not persist)", err)
	}
	settingsManager := game.NewSettingsManager(storage)
	saveManager := game.NewSaveManager(storage, gameConfig.Storage.HighScoreKey)

	// 贴图在后台解码，标题画面等待全部完成
	resourceManager := game.NewResourceManager(embedded.ReadFile)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		log.Printf("[App] Warning: %v (falling back to solid shapes)", err)
	}
	assets := resourceManager.LoadAll()

	audioContext := audio.NewContext(sampleRate)
	clips := synth.RenderAll(beep.SampleRate(sampleRate), synthSeed)
	audioManager := game.NewAudioManager(audioContext, settingsManager, clips)
	log.Printf("[App] AudioManager initialized")

	flow := systems.NewGameFlowSystem(gameConfig, systems.GameFlowOptions{
		Assets: assets,
		Sounds: audioManager,
		Scores: saveManager,
	})

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(gameConfig, flow, resourceManager))

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		audioManager:    audioManager,
		flow:            flow,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadConfig 加载游戏配置
// path 为空时解析内置的 data/game.yaml
func LoadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		log.Printf("[Config] Loaded game config from %s", filepath.Clean(path))
		return cfg, nil
	}

	data, err := embedded.ReadFile(EmbeddedConfigPath)
	if err != nil {
		return nil, fmt.Errorf("内置游戏配置读取失败: %w", err)
	}
	cfg, err := config.ParseGameConfig(data, config.FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("内置游戏配置解析失败: %w", err)
	}
	return cfg, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// M 静音，-/= 调节音量
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		a.toggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		a.adjustVolume(-volumeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		a.adjustVolume(volumeStep)
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.ToggleFullscreen()
	a.saveSettings()
}

// toggleMute 同时切换音乐和音效
func (a *App) toggleMute() {
	s := a.settingsManager.GetSettings()
	enabled := !(s.MusicEnabled || s.SoundEnabled)

	a.settingsManager.SetMusicEnabled(enabled)
	a.settingsManager.SetSoundEnabled(enabled)
	a.audioManager.ApplySettings()

	// 游戏进行中取消静音时恢复背景音乐
	if enabled && a.flow.Phase().Simulating() {
		a.audioManager.PlayMusic(game.MusicBGM)
	}

	log.Printf("[App] Audio enabled: %v", enabled)
	a.saveSettings()
}

func (a *App) adjustVolume(delta float64) {
	s := a.settingsManager.GetSettings()
	a.settingsManager.SetMusicVolume(s.MusicVolume + delta)
	a.settingsManager.SetSoundVolume(s.SoundVolume + delta)
	a.audioManager.ApplySettings()
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存最高分
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
