// check_config 检查游戏配置和贴图清单
//
// 1. 按扩展名解析游戏配置并执行验证，打印关键派生数值
// 2. 解析贴图清单，解码每一张贴图
//
// 使用方法：
//
//	go run ./cmd/check_config
//	go run ./cmd/check_config --config my.toml --stages 5
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

var (
	configPath   = flag.String("config", "data/game.yaml", "游戏配置文件路径")
	manifestPath = flag.String("manifest", "assets/config/resources.yaml", "贴图清单路径")
	stages       = flag.Int("stages", 3, "打印前 N 关的派生数值")
	timeout      = flag.Duration("timeout", 10*time.Second, "贴图解码超时")
)

func main() {
	flag.Parse()

	ok := checkConfig(*configPath, *stages)
	ok = checkManifest(*manifestPath, *timeout) && ok

	if !ok {
		os.Exit(1)
	}
}

func checkConfig(path string, stages int) bool {
	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("❌ 游戏配置无效: %v\n", err)
		return false
	}
	fmt.Printf("✅ 游戏配置: %s\n", path)
	fmt.Printf("   画布 %.0fx%.0f，生命 %d，旅程模式 %v\n",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.Player.Lives, cfg.Journey.Enabled)

	for stage := 1; stage <= stages; stage++ {
		fmt.Printf("   第 %d 关: 生成间隔 %d，直线速度 %.1f，正弦速度 %.1f，Boss HP %d，Boss 射击间隔 %d，分数阈值 %d\n",
			stage,
			cfg.SpawnCadence(stage),
			cfg.StraightSpeed(stage),
			cfg.SineSpeed(stage),
			cfg.BossHP(stage),
			cfg.BossFireCooldown(stage),
			cfg.BossScoreThreshold(stage),
		)
	}
	return true
}

func checkManifest(path string, timeout time.Duration) bool {
	rm := game.NewResourceManager(os.ReadFile)
	if err := rm.LoadResourceConfig(path); err != nil {
		fmt.Printf("❌ 贴图清单无效: %v\n", err)
		return false
	}

	future := rm.LoadAll()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := future.Wait(ctx); err != nil {
		fmt.Printf("❌ 贴图解码超时: %v\n", err)
		return false
	}

	finished, failed, total := future.Progress()
	if failed > 0 {
		fmt.Printf("❌ 贴图: %d/%d 解码失败\n", failed, total)
		return false
	}
	fmt.Printf("✅ 贴图清单: %s（%d/%d 已解码）\n", path, finished, total)
	return true
}
