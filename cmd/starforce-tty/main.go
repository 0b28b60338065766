// starforce-tty 在终端中运行 STAR FORCE
//
// 与桌面版共享同一套模拟和渲染流程，通过 tcell 把画面映射到字符格。
// 终端版本没有声音。
//
// 按键：
//
//	←/→ 或 A/D  移动
//	空格        射击
//	回车        开始
//	R           重新开始
//	Q/Esc       退出
//
// 使用方法：
//
//	go run ./cmd/starforce-tty
//	go run ./cmd/starforce-tty --config my.toml --log starforce.log
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/starforce/internal/terminal"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
	"github.com/gonewx/starforce/pkg/systems"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（.yaml 或 .toml），为空时使用默认配置")
	logPath    = flag.String("log", "", "日志文件路径，为空时不输出日志")
	holdTicks  = flag.Int("hold", terminal.DefaultHoldTicks, "按键按下后视为持续按住的 tick 数")
	tickRate   = flag.Int("fps", 60, "每秒模拟 tick 数")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starforce-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 日志不能写到终端，否则会破坏画面
	if *logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	storage, err := game.OpenStorage(cfg.Storage.AppName)
	if err != nil {
		log.Printf("[TTY] Warning: %v (high score will not persist)", err)
	}
	scores := game.NewSaveManager(storage, cfg.Storage.HighScoreKey)

	flow := systems.NewGameFlowSystem(cfg, systems.GameFlowOptions{Scores: scores})
	renderer := systems.NewRenderSystem(cfg)
	renderer.SetPrompts(systems.KeyboardPrompts)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	surface := terminal.NewSurface(screen, cfg.Canvas.Width, cfg.Canvas.Height, nil)
	keyboard := terminal.NewKeyboard(*holdTicks)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				return
			}
			events <- ev
		}
	}()

	rate := *tickRate
	if rate <= 0 {
		rate = 60
	}
	tick := time.NewTicker(time.Second / time.Duration(rate))
	defer tick.Stop()

	defer func() {
		if err := flow.PersistHighScore(); err != nil {
			log.Printf("[TTY] Warning: Failed to save high score on exit: %v", err)
		}
	}()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if keyboard.HandleKey(e) {
					log.Printf("[TTY] Quit requested")
					return nil
				}
			}
		case <-tick.C:
			flow.Update(keyboard.Next())
			renderer.Draw(surface, flow.Frame())
			screen.Show()
		}
	}
}
