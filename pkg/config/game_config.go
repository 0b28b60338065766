package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ConfigFormat 配置文件格式
type ConfigFormat string

const (
	// FormatYAML YAML 格式（默认，与项目其他配置文件保持一致）
	FormatYAML ConfigFormat = "yaml"
	// FormatTOML TOML 格式（便于玩家手工调参）
	FormatTOML ConfigFormat = "toml"
)

// GameConfig 游戏数值配置
//
// 包含模拟循环使用的全部调参常量。所有以 tick 为单位的数值
// 都按 60 TPS 的固定步长解释。
//
// 配置文件位置: data/game.yaml（可通过 --config 覆盖为 .yaml 或 .toml）
type GameConfig struct {
	Canvas   CanvasConfig   `yaml:"canvas" toml:"canvas"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Bullet   BulletConfig   `yaml:"bullet" toml:"bullet"`
	Enemy    EnemyConfig    `yaml:"enemy" toml:"enemy"`
	Boss     BossConfig     `yaml:"boss" toml:"boss"`
	PowerUp  PowerUpConfig  `yaml:"powerUp" toml:"powerUp"`
	Particle ParticleConfig `yaml:"particle" toml:"particle"`
	Stars    StarConfig     `yaml:"stars" toml:"stars"`
	Scoring  ScoringConfig  `yaml:"scoring" toml:"scoring"`
	Journey  JourneyConfig  `yaml:"journey" toml:"journey"`
	Storage  StorageConfig  `yaml:"storage" toml:"storage"`

	// StageClearDelay 关卡通关横幅显示时长（秒，墙钟时间）
	StageClearDelay float64 `yaml:"stageClearDelay" toml:"stageClearDelay"`
}

// CanvasConfig 画布尺寸
type CanvasConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig 玩家飞船配置
type PlayerConfig struct {
	Width               float64 `yaml:"width" toml:"width"`
	Height              float64 `yaml:"height" toml:"height"`
	Speed               float64 `yaml:"speed" toml:"speed"`               // 每 tick 水平移动像素
	BottomOffset        float64 `yaml:"bottomOffset" toml:"bottomOffset"` // 出生点距画布底部的距离
	Lives               int     `yaml:"lives" toml:"lives"`
	FireCooldown        int     `yaml:"fireCooldown" toml:"fireCooldown"`               // 普通射击间隔（tick）
	PoweredFireCooldown int     `yaml:"poweredFireCooldown" toml:"poweredFireCooldown"` // 强化状态射击间隔（tick）
	InvincibilityTicks  int     `yaml:"invincibilityTicks" toml:"invincibilityTicks"`
	PowerUpTicks        int     `yaml:"powerUpTicks" toml:"powerUpTicks"`
}

// BulletConfig 玩家子弹配置
type BulletConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// EnemyConfig 普通敌机配置
type EnemyConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`

	// 生成节奏：max(MinCadence, BaseCadence - stage*CadenceStep)
	BaseCadence      int     `yaml:"baseCadence" toml:"baseCadence"`
	CadenceStep      int     `yaml:"cadenceStep" toml:"cadenceStep"`
	MinCadence       int     `yaml:"minCadence" toml:"minCadence"`
	SineCadenceRatio float64 `yaml:"sineCadenceRatio" toml:"sineCadenceRatio"`

	// 速度：base + stage*step
	StraightSpeed     float64 `yaml:"straightSpeed" toml:"straightSpeed"`
	StraightSpeedStep float64 `yaml:"straightSpeedStep" toml:"straightSpeedStep"`
	SineSpeed         float64 `yaml:"sineSpeed" toml:"sineSpeed"`
	SineSpeedStep     float64 `yaml:"sineSpeedStep" toml:"sineSpeedStep"`

	SineAmplitude float64 `yaml:"sineAmplitude" toml:"sineAmplitude"`
	SineAngleStep float64 `yaml:"sineAngleStep" toml:"sineAngleStep"`
}

// BossConfig Boss 配置
type BossConfig struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Speed      float64 `yaml:"speed" toml:"speed"`
	EntrySpeed float64 `yaml:"entrySpeed" toml:"entrySpeed"`
	SpawnY     float64 `yaml:"spawnY" toml:"spawnY"` // 出生 Y 坐标（画布上方）
	DockY      float64 `yaml:"dockY" toml:"dockY"`   // 入场下移到该 Y 坐标后停止
	HPPerStage int     `yaml:"hpPerStage" toml:"hpPerStage"`
	HitDamage  int     `yaml:"hitDamage" toml:"hitDamage"` // 每颗玩家子弹造成的伤害

	// 射击间隔：max(MinFireCooldown, FireCooldownBase - stage*FireCooldownStep)
	FireCooldownBase int `yaml:"fireCooldownBase" toml:"fireCooldownBase"`
	FireCooldownStep int `yaml:"fireCooldownStep" toml:"fireCooldownStep"`
	MinFireCooldown  int `yaml:"minFireCooldown" toml:"minFireCooldown"`

	BulletWidth  float64 `yaml:"bulletWidth" toml:"bulletWidth"`
	BulletHeight float64 `yaml:"bulletHeight" toml:"bulletHeight"`
	BulletSpeed  float64 `yaml:"bulletSpeed" toml:"bulletSpeed"`
}

// PowerUpConfig 道具配置
type PowerUpConfig struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	FallSpeed  float64 `yaml:"fallSpeed" toml:"fallSpeed"`
	DropChance float64 `yaml:"dropChance" toml:"dropChance"` // 击杀敌机时掉落概率 0.0 ~ 1.0
}

// ParticleConfig 爆炸粒子配置
type ParticleConfig struct {
	BurstCount     int     `yaml:"burstCount" toml:"burstCount"`         // 普通爆炸粒子数
	HitBurstCount  int     `yaml:"hitBurstCount" toml:"hitBurstCount"`   // 子弹击中 Boss 的粒子数
	BossBurstCount int     `yaml:"bossBurstCount" toml:"bossBurstCount"` // Boss 被击毁的粒子数
	Spread         float64 `yaml:"spread" toml:"spread"`                 // 速度分量取值范围 [-Spread/2, Spread/2)
	Lifespan       int     `yaml:"lifespan" toml:"lifespan"`
}

// StarConfig 背景星空配置
type StarConfig struct {
	Count      int     `yaml:"count" toml:"count"`
	MinSize    float64 `yaml:"minSize" toml:"minSize"`
	SizeRange  float64 `yaml:"sizeRange" toml:"sizeRange"`
	MinSpeed   float64 `yaml:"minSpeed" toml:"minSpeed"`
	SpeedRange float64 `yaml:"speedRange" toml:"speedRange"`
}

// ScoringConfig 计分配置
type ScoringConfig struct {
	EnemyKill          int `yaml:"enemyKill" toml:"enemyKill"`
	StageClearBonus    int `yaml:"stageClearBonus" toml:"stageClearBonus"`       // 乘以关卡编号
	BossScoreThreshold int `yaml:"bossScoreThreshold" toml:"bossScoreThreshold"` // 乘以关卡编号
}

// JourneyConfig 旅程模式配置
//
// 旅程模式下 Boss 由已生成敌机数量触发，否则由分数触发。
type JourneyConfig struct {
	Enabled    bool `yaml:"enabled" toml:"enabled"`
	MaxEnemies int  `yaml:"maxEnemies" toml:"maxEnemies"`
}

// StorageConfig 本地存储配置
type StorageConfig struct {
	AppName      string `yaml:"appName" toml:"appName"`
	HighScoreKey string `yaml:"highScoreKey" toml:"highScoreKey"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Canvas: CanvasConfig{Width: GameWindowWidth, Height: GameWindowHeight},
		Player: PlayerConfig{
			Width:               50,
			Height:              50,
			Speed:               5,
			BottomOffset:        60,
			Lives:               3,
			FireCooldown:        20,
			PoweredFireCooldown: 10,
			InvincibilityTicks:  120,
			PowerUpTicks:        600,
		},
		Bullet: BulletConfig{Width: 5, Height: 10, Speed: 7},
		Enemy: EnemyConfig{
			Width:             50,
			Height:            50,
			BaseCadence:       100,
			CadenceStep:       10,
			MinCadence:        20,
			SineCadenceRatio:  2.5,
			StraightSpeed:     2,
			StraightSpeedStep: 0.2,
			SineSpeed:         1,
			SineSpeedStep:     0.1,
			SineAmplitude:     2,
			SineAngleStep:     0.1,
		},
		Boss: BossConfig{
			Width:            150,
			Height:           100,
			Speed:            2,
			EntrySpeed:       1,
			SpawnY:           -150,
			DockY:            50,
			HPPerStage:       100,
			HitDamage:        5,
			FireCooldownBase: 100,
			FireCooldownStep: 10,
			MinFireCooldown:  30,
			BulletWidth:      10,
			BulletHeight:     20,
			BulletSpeed:      4,
		},
		PowerUp: PowerUpConfig{Width: 20, Height: 20, FallSpeed: 2, DropChance: 0.1},
		Particle: ParticleConfig{
			BurstCount:     20,
			HitBurstCount:  5,
			BossBurstCount: 200,
			Spread:         4,
			Lifespan:       30,
		},
		Stars:   StarConfig{Count: 100, MinSize: 1, SizeRange: 2, MinSpeed: 0.5, SpeedRange: 1},
		Scoring: ScoringConfig{EnemyKill: 10, StageClearBonus: 1000, BossScoreThreshold: 200},
		Journey: JourneyConfig{Enabled: true, MaxEnemies: 30},
		Storage: StorageConfig{AppName: "starforce", HighScoreKey: "starforce_highscore"},

		StageClearDelay: 3,
	}
}

// LoadGameConfig 从磁盘加载游戏配置
//
// 根据扩展名选择解码器（.yaml/.yml 或 .toml），文件中未出现的字段保持默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return ParseGameConfig(data, format)
}

// FormatFromPath 根据文件扩展名推断配置格式
func FormatFromPath(path string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported config format: %s", path)
}

// ParseGameConfig 解析配置数据（在默认值之上覆盖）
//
// 参数:
//   - data: 配置文件内容
//   - format: 数据格式
//
// 返回:
//   - *GameConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseGameConfig(data []byte, format ConfigFormat) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查尺寸、速度、节奏等数值是否在合理范围内。
func (c *GameConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %.0fx%.0f", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive")
	}
	if c.Player.Width > c.Canvas.Width {
		return fmt.Errorf("player width (%.0f) exceeds canvas width (%.0f)", c.Player.Width, c.Canvas.Width)
	}
	if c.Player.Lives < 1 {
		return fmt.Errorf("player lives must be >= 1, got %d", c.Player.Lives)
	}
	if c.Player.FireCooldown < 0 || c.Player.PoweredFireCooldown < 0 {
		return fmt.Errorf("fire cooldown must be >= 0")
	}
	if c.Player.InvincibilityTicks < 0 || c.Player.PowerUpTicks < 0 {
		return fmt.Errorf("player timers must be >= 0")
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet speed must be positive, got %.1f", c.Bullet.Speed)
	}
	if c.Enemy.Width <= 0 || c.Enemy.Width >= c.Canvas.Width {
		return fmt.Errorf("enemy width must be in (0, %.0f), got %.0f", c.Canvas.Width, c.Enemy.Width)
	}
	if c.Enemy.MinCadence < 1 {
		return fmt.Errorf("enemy minCadence must be >= 1, got %d", c.Enemy.MinCadence)
	}
	if c.Enemy.SineCadenceRatio <= 0 {
		return fmt.Errorf("enemy sineCadenceRatio must be positive, got %.2f", c.Enemy.SineCadenceRatio)
	}
	if c.Boss.HPPerStage < 1 || c.Boss.HitDamage < 1 {
		return fmt.Errorf("boss hpPerStage and hitDamage must be >= 1")
	}
	if c.Boss.MinFireCooldown < 1 {
		return fmt.Errorf("boss minFireCooldown must be >= 1, got %d", c.Boss.MinFireCooldown)
	}
	if c.PowerUp.DropChance < 0 || c.PowerUp.DropChance > 1 {
		return fmt.Errorf("powerUp dropChance must be within [0, 1], got %.2f", c.PowerUp.DropChance)
	}
	if c.Particle.Lifespan < 1 {
		return fmt.Errorf("particle lifespan must be >= 1, got %d", c.Particle.Lifespan)
	}
	if c.Stars.Count < 0 {
		return fmt.Errorf("star count must be >= 0, got %d", c.Stars.Count)
	}
	if c.Journey.Enabled && c.Journey.MaxEnemies < 1 {
		return fmt.Errorf("journey maxEnemies must be >= 1 when journey is enabled")
	}
	if c.StageClearDelay < 0 {
		return fmt.Errorf("stageClearDelay must be >= 0, got %.2f", c.StageClearDelay)
	}
	if c.Storage.HighScoreKey == "" {
		return fmt.Errorf("storage highScoreKey must not be empty")
	}
	return nil
}

// SpawnCadence 返回指定关卡的直线敌机生成间隔（tick）
//
// 示例（默认配置）:
//
//	SpawnCadence(1) = 90
//	SpawnCadence(9) = 20 （下限）
func (c *GameConfig) SpawnCadence(stage int) int {
	cadence := c.Enemy.BaseCadence - stage*c.Enemy.CadenceStep
	if cadence < c.Enemy.MinCadence {
		return c.Enemy.MinCadence
	}
	return cadence
}

// SineCadence 返回指定关卡的正弦敌机生成间隔（tick，可能为小数）
func (c *GameConfig) SineCadence(stage int) float64 {
	return float64(c.SpawnCadence(stage)) * c.Enemy.SineCadenceRatio
}

// IsSineSpawnTick 判断 tick 是否落在正弦敌机的生成节拍上
//
// 间隔为小数时（如 cadence=25, ratio=2.5 → 62.5），只有整除的 tick 才生成，
// 与浮点取模的行为保持一致。
func (c *GameConfig) IsSineSpawnTick(tick, stage int) bool {
	if tick <= 0 {
		return false
	}
	return math.Mod(float64(tick), c.SineCadence(stage)) == 0
}

// StraightSpeed 返回指定关卡的直线敌机速度
func (c *GameConfig) StraightSpeed(stage int) float64 {
	return c.Enemy.StraightSpeed + float64(stage)*c.Enemy.StraightSpeedStep
}

// SineSpeed 返回指定关卡的正弦敌机速度
func (c *GameConfig) SineSpeed(stage int) float64 {
	return c.Enemy.SineSpeed + float64(stage)*c.Enemy.SineSpeedStep
}

// BossHP 返回指定关卡的 Boss 最大生命值
func (c *GameConfig) BossHP(stage int) int {
	return c.Boss.HPPerStage * stage
}

// BossFireCooldown 返回指定关卡的 Boss 射击间隔（tick）
func (c *GameConfig) BossFireCooldown(stage int) int {
	cooldown := c.Boss.FireCooldownBase - stage*c.Boss.FireCooldownStep
	if cooldown < c.Boss.MinFireCooldown {
		return c.Boss.MinFireCooldown
	}
	return cooldown
}

// BossScoreThreshold 返回非旅程模式下触发 Boss 的分数门槛
func (c *GameConfig) BossScoreThreshold(stage int) int {
	return c.Scoring.BossScoreThreshold * stage
}

// StageClearBonus 返回通关奖励分
func (c *GameConfig) StageClearBonus(stage int) int {
	return c.Scoring.StageClearBonus * stage
}

// StageClearDuration 返回通关横幅显示时长
func (c *GameConfig) StageClearDuration() time.Duration {
	return time.Duration(c.StageClearDelay * float64(time.Second))
}
