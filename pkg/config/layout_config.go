package config

// 布局配置常量
// 本文件定义了游戏画布的逻辑尺寸以及 HUD 元素的位置参数
// 所有坐标使用画布坐标系（左上角为原点，Y 轴向下），文本 Y 坐标为基线

// Canvas Configuration (画布配置)
const (
	// GameWindowWidth 是游戏逻辑画布宽度（像素）
	// 与窗口实际大小无关，Ebitengine 负责缩放
	GameWindowWidth = 800

	// GameWindowHeight 是游戏逻辑画布高度（像素）
	GameWindowHeight = 600
)

// HUD Layout (HUD 布局)
const (
	// HUDMarginX HUD 文本左边距
	HUDMarginX = 10.0

	// HUDScoreY 分数文本基线 Y 坐标
	HUDScoreY = 30.0

	// HUDLivesY 生命数文本基线 Y 坐标
	HUDLivesY = 60.0

	// HUDStageOffsetX 关卡文本距右边缘的偏移
	HUDStageOffsetX = 100.0

	// StartTitleOffsetY 标题相对画布中心的偏移
	StartTitleOffsetY = -60.0

	// StartHighScoreOffsetY 标题画面最高分相对画布中心的偏移
	StartHighScoreOffsetY = -20.0

	// PromptOffsetY 提示文本（开始、重新开始）相对画布中心的偏移
	PromptOffsetY = 40.0

	// HUDFontSize HUD 字号
	HUDFontSize = 20.0

	// BannerFontSize 横幅（STAGE CLEAR / GAME OVER / 标题）字号
	BannerFontSize = 50.0

	// BossHPBarY Boss 血条 Y 坐标
	BossHPBarY = 10.0

	// BossHPBarHeight Boss 血条高度
	BossHPBarHeight = 20.0

	// ParticleSize 粒子绘制边长
	ParticleSize = 2.0

	// InvincibleBlinkPeriod 无敌闪烁周期（tick），每 N tick 切换一次可见性
	InvincibleBlinkPeriod = 10
)

// BossHPBarBounds 计算 Boss 血条外框（居中，占画布一半宽度）
//
// 参数：
//   - canvasWidth: 画布宽度
//
// 返回：
//   - x, width: 血条左边 X 坐标和总宽度
func BossHPBarBounds(canvasWidth float64) (float64, float64) {
	return canvasWidth / 4, canvasWidth / 2
}
