package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

// TextAlign 文本水平对齐方式
type TextAlign int

const (
	// AlignLeft x 为文本左边缘
	AlignLeft TextAlign = iota
	// AlignCenter x 为文本中心
	AlignCenter
)

// Surface 渲染目标
//
// 坐标均为逻辑画布坐标（默认 800x600），由具体实现负责缩放。
// DrawText 的 y 为文本基线。
type Surface interface {
	Size() (width, height float64)
	FillRect(x, y, w, h float64, c color.Color)
	DrawText(s string, x, y, size float64, align TextAlign, c color.Color)
	// DrawImage 绘制已加载的贴图，贴图不可用时返回 false
	DrawImage(id string, x, y, w, h float64) bool
}

// Frame 一帧的只读世界快照
type Frame struct {
	Phase       components.GamePhase
	Run         *game.RunState
	Stars       *game.Starfield
	HighScore   int
	AssetsReady bool
}

// 绘制颜色
var (
	ColorBackground = color.RGBA{A: 0xff}
	ColorOverlay    = color.RGBA{A: 0xb3} // 70% 黑色遮罩
	ColorWhite      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorYellow     = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	ColorLime       = color.RGBA{G: 0xff, A: 0xff}
	ColorRed        = color.RGBA{R: 0xff, A: 0xff}
	ColorPurple     = color.RGBA{R: 0x80, B: 0x80, A: 0xff}
	ColorHPTrack    = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	ColorPlayer     = color.RGBA{R: 0x00, G: 0xbf, B: 0xff, A: 0xff}
	ColorEnemy      = color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff}
	ColorEnemySine  = color.RGBA{R: 0xff, G: 0x8c, A: 0xff}
)

// 字号
const (
	FontBanner = config.BannerFontSize
	FontHUD    = config.HUDFontSize
)

// Prompts 标题画面和游戏结束画面的操作提示
// 不同前端的输入方式不同，提示文字随之变化
type Prompts struct {
	Start   string
	Restart string
}

var (
	// PointerPrompts 有鼠标或触摸屏的前端（桌面、移动端）
	PointerPrompts = Prompts{Start: "Click to Start", Restart: "Click or Press R to Restart"}
	// KeyboardPrompts 只有键盘的前端（终端）
	KeyboardPrompts = Prompts{Start: "Press Enter to Start", Restart: "Press R to Restart"}
)

// RenderSystem 把世界快照绘制到 Surface
//
// 只读取状态，不修改任何实体。贴图缺失时退化为纯色矩形。
type RenderSystem struct {
	cfg     *config.GameConfig
	prompts Prompts
}

// NewRenderSystem 创建渲染系统，默认使用 PointerPrompts
func NewRenderSystem(cfg *config.GameConfig) *RenderSystem {
	return &RenderSystem{cfg: cfg, prompts: PointerPrompts}
}

// SetPrompts 替换操作提示
func (r *RenderSystem) SetPrompts(p Prompts) {
	r.prompts = p
}

// Draw 按固定层次绘制一帧：
// 背景 → 星空 → 玩家 → 子弹 → 敌机 → 道具 → 粒子 → Boss → HUD → 横幅
func (r *RenderSystem) Draw(s Surface, f Frame) {
	w, h := s.Size()

	s.FillRect(0, 0, w, h, ColorBackground)
	r.drawStars(s, f.Stars)

	if f.Phase == components.PhaseStartScreen {
		r.drawStartScreen(s, f, w, h)
		return
	}

	rs := f.Run
	if rs == nil {
		return
	}

	r.drawPlayer(s, &rs.Player)

	rs.Bullets.Each(func(_ int, b *components.Bullet) {
		s.FillRect(b.X, b.Y, b.Width, b.Height, ColorYellow)
	})

	rs.Enemies.Each(func(_ int, e *components.Enemy) {
		if s.DrawImage(e.Type.ImageID(), e.X, e.Y, e.Width, e.Height) {
			return
		}
		c := ColorEnemy
		if e.Type == components.EnemySine {
			c = ColorEnemySine
		}
		s.FillRect(e.X, e.Y, e.Width, e.Height, c)
	})

	rs.PowerUps.Each(func(_ int, pu *components.PowerUp) {
		s.DrawText("P", pu.X, pu.Y, FontHUD, AlignLeft, ColorLime)
	})

	rs.Particles.Each(func(_ int, p *components.Particle) {
		s.FillRect(p.X, p.Y, config.ParticleSize, config.ParticleSize, p.Color.RGBA())
	})

	if rs.Boss != nil {
		r.drawBoss(s, rs.Boss, w)
	}
	rs.BossBullets.Each(func(_ int, b *components.BossBullet) {
		s.FillRect(b.X, b.Y, b.Width, b.Height, ColorRed)
	})

	r.drawHUD(s, rs, f.HighScore, w)

	switch f.Phase {
	case components.PhaseStageClearing:
		s.FillRect(0, 0, w, h, ColorOverlay)
		s.DrawText(fmt.Sprintf("STAGE %d CLEAR", rs.Stage), w/2, h/2, FontBanner, AlignCenter, ColorWhite)
	case components.PhaseGameOver:
		s.FillRect(0, 0, w, h, ColorOverlay)
		s.DrawText("GAME OVER", w/2, h/2, FontBanner, AlignCenter, ColorWhite)
		s.DrawText(r.prompts.Restart, w/2, h/2+config.PromptOffsetY, FontHUD, AlignCenter, ColorWhite)
	}
}

func (r *RenderSystem) drawStars(s Surface, sf *game.Starfield) {
	if sf == nil {
		return
	}
	for _, star := range sf.Stars {
		s.FillRect(star.X, star.Y, star.Size, star.Size, ColorWhite)
	}
}

func (r *RenderSystem) drawStartScreen(s Surface, f Frame, w, h float64) {
	s.FillRect(0, 0, w, h, ColorOverlay)
	s.DrawText("STAR FORCE", w/2, h/2+config.StartTitleOffsetY, FontBanner, AlignCenter, ColorWhite)
	s.DrawText(fmt.Sprintf("HI-SCORE: %d", f.HighScore), w/2, h/2+config.StartHighScoreOffsetY, FontHUD, AlignCenter, ColorWhite)

	prompt := r.prompts.Start
	if !f.AssetsReady {
		prompt = "Loading..."
	}
	s.DrawText(prompt, w/2, h/2+config.PromptOffsetY, FontHUD, AlignCenter, ColorWhite)
}

// drawPlayer 无敌期间按固定周期闪烁
func (r *RenderSystem) drawPlayer(s Surface, p *components.Player) {
	if !PlayerVisible(p) {
		return
	}
	if !s.DrawImage("player", p.X, p.Y, p.Width, p.Height) {
		s.FillRect(p.X, p.Y, p.Width, p.Height, ColorPlayer)
	}
}

// PlayerVisible 玩家在当前帧是否可见
func PlayerVisible(p *components.Player) bool {
	return !p.Invincible || (p.InvincibleTimer/config.InvincibleBlinkPeriod)%2 == 0
}

// drawBoss 绘制 Boss 本体和顶部血条（宽 W/2，居中）
func (r *RenderSystem) drawBoss(s Surface, b *components.Boss, w float64) {
	s.FillRect(b.X, b.Y, b.Width, b.Height, ColorPurple)

	barX, barW := config.BossHPBarBounds(w)
	barY, barH := config.BossHPBarY, config.BossHPBarHeight
	s.FillRect(barX, barY, barW, barH, ColorHPTrack)
	if ratio := b.HPRatio(); ratio > 0 {
		s.FillRect(barX, barY, barW*ratio, barH, ColorRed)
	}
}

func (r *RenderSystem) drawHUD(s Surface, rs *game.RunState, highScore int, w float64) {
	s.DrawText(fmt.Sprintf("Score: %d", rs.Score), config.HUDMarginX, config.HUDScoreY, FontHUD, AlignLeft, ColorWhite)
	s.DrawText(fmt.Sprintf("Lives: %d", rs.Player.Lives), config.HUDMarginX, config.HUDLivesY, FontHUD, AlignLeft, ColorWhite)
	s.DrawText(fmt.Sprintf("Stage: %d", rs.Stage), w-config.HUDStageOffsetX, config.HUDLivesY, FontHUD, AlignLeft, ColorWhite)
	s.DrawText(fmt.Sprintf("Hi-Score: %d", highScore), w/2, config.HUDScoreY, FontHUD, AlignCenter, ColorWhite)
}
