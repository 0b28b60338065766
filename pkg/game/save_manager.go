package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScoreRecord 最高分存档
type HighScoreRecord struct {
	HighScore int       `yaml:"highScore"` // 历史最高分
	Stage     int       `yaml:"stage"`     // 创造最高分时到达的关卡
	UpdatedAt time.Time `yaml:"updatedAt"` // 最后更新时间
}

// SaveManager 最高分持久化
//
// 职责：
//   - 启动时加载最高分
//   - 游戏结束时若刷新纪录则写回
//
// 存储使用 gdata（跨平台用户数据目录），数据为 YAML 格式。
// gdataManager 为 nil 时进入降级模式：最高分只保存在内存中。
type SaveManager struct {
	gdataManager *gdata.Manager
	key          string
	record       HighScoreRecord
}

// 存储对象名
const scoresObject = "scores"

// OpenStorage 打开应用的 gdata 存储
//
// 失败时返回 nil 和错误，调用方可以继续以降级模式运行
func OpenStorage(appName string) (*gdata.Manager, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage %q: %w", appName, err)
	}
	return manager, nil
}

// NewSaveManager 创建最高分管理器并加载已有纪录
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
//   - key: 存储属性名（如 "starforce_highscore"）
//
// 返回：
//   - *SaveManager: 管理器实例（加载失败时纪录为 0，不返回错误）
func NewSaveManager(gdataManager *gdata.Manager, key string) *SaveManager {
	sm := &SaveManager{
		gdataManager: gdataManager,
		key:          key,
	}

	if err := sm.load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load high score: %v (starting from 0)", err)
	}

	return sm
}

// load 从 gdata 读取纪录
func (sm *SaveManager) load() error {
	if sm.gdataManager == nil {
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(scoresObject, sm.key) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoresObject, sm.key)
	if err != nil {
		return fmt.Errorf("failed to read high score: %w", err)
	}

	var record HighScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal high score: %w", err)
	}
	if record.HighScore < 0 {
		return fmt.Errorf("invalid high score %d", record.HighScore)
	}

	sm.record = record
	log.Printf("[SaveManager] High score loaded: %d", record.HighScore)
	return nil
}

// LoadHighScore 返回当前最高分
func (sm *SaveManager) LoadHighScore() int {
	return sm.record.HighScore
}

// Record 返回完整的最高分纪录
func (sm *SaveManager) Record() HighScoreRecord {
	return sm.record
}

// SaveHighScore 若 score 超过纪录则更新并持久化
//
// 参数：
//   - score: 本局得分
//   - stage: 本局到达的关卡
//
// 返回：
//   - bool: 是否刷新了纪录
//   - error: 持久化失败（内存中的纪录仍已更新）
func (sm *SaveManager) SaveHighScore(score, stage int) (bool, error) {
	if score <= sm.record.HighScore {
		return false, nil
	}

	sm.record = HighScoreRecord{
		HighScore: score,
		Stage:     stage,
		UpdatedAt: time.Now(),
	}

	if sm.gdataManager == nil {
		return true, nil
	}

	data, err := yaml.Marshal(&sm.record)
	if err != nil {
		return true, fmt.Errorf("failed to marshal high score: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(scoresObject, sm.key, data); err != nil {
		return true, fmt.Errorf("failed to save high score: %w", err)
	}

	log.Printf("[SaveManager] New high score saved: %d (stage %d)", score, stage)
	return true, nil
}
