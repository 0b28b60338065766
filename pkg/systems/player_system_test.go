package systems

import (
	"testing"

	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

func TestPlayerMovementClampedToCanvas(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name   string
		startX float64
		move   int
		want   float64
	}{
		{"向左移动", 100, -1, 95},
		{"向右移动", 100, 1, 105},
		{"不动", 100, 0, 100},
		{"左边界夹紧", 2, -1, 0},
		{"右边界夹紧", cfg.Canvas.Width - cfg.Player.Width - 2, 1, cfg.Canvas.Width - cfg.Player.Width},
		{"输入幅度大于 1 按 1 处理", 100, 7, 105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newTestRun(t, cfg)
			ps := NewPlayerSystem(cfg, nil)
			rs.Player.X = tt.startX

			ps.Update(rs, components.Input{Move: tt.move})

			if rs.Player.X != tt.want {
				t.Errorf("expected x = %v, got %v", tt.want, rs.Player.X)
			}
		})
	}
}

func TestPlayerStaysInBoundsUnderSustainedInput(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rs := newTestRun(t, cfg)
	ps := NewPlayerSystem(cfg, nil)

	maxX := cfg.Canvas.Width - cfg.Player.Width
	for i := 0; i < 200; i++ {
		ps.Update(rs, components.Input{Move: 1})
		if rs.Player.X < 0 || rs.Player.X > maxX {
			t.Fatalf("tick %d: x = %v out of [0, %v]", i, rs.Player.X, maxX)
		}
	}
	for i := 0; i < 200; i++ {
		ps.Update(rs, components.Input{Move: -1})
		if rs.Player.X < 0 || rs.Player.X > maxX {
			t.Fatalf("tick %d: x = %v out of [0, %v]", i, rs.Player.X, maxX)
		}
	}
}

func TestPlayerFireCadence(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name      string
		poweredUp bool
		ticks     int
		want      int
	}{
		{"普通射击每 20 tick 一发", false, 60, 3},
		{"强化射击每 10 tick 一发", true, 60, 6},
		{"单 tick 只射一发", false, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newTestRun(t, cfg)
			sounds := &recordingSounds{}
			ps := NewPlayerSystem(cfg, sounds)
			if tt.poweredUp {
				rs.Player.PowerUpTimer = cfg.Player.PowerUpTicks
			}

			for i := 0; i < tt.ticks; i++ {
				ps.Update(rs, components.Input{Fire: true})
			}

			if got := rs.Bullets.Alive(); got != tt.want {
				t.Errorf("expected %d bullets, got %d", tt.want, got)
			}
			if got := sounds.count(game.SoundShoot); got != tt.want {
				t.Errorf("expected %d shoot sounds, got %d", tt.want, got)
			}
		})
	}
}

func TestPlayerBulletSpawnPosition(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rs := newTestRun(t, cfg)
	ps := NewPlayerSystem(cfg, nil)

	ps.Update(rs, components.Input{Fire: true})

	if rs.Bullets.Len() != 1 {
		t.Fatalf("expected 1 bullet, got %d", rs.Bullets.Len())
	}
	b := rs.Bullets.At(0)
	wantX := rs.Player.X + rs.Player.Width/2 - cfg.Bullet.Width/2
	if b.X != wantX || b.Y != rs.Player.Y {
		t.Errorf("expected bullet at (%v, %v), got (%v, %v)", wantX, rs.Player.Y, b.X, b.Y)
	}
	if b.Width != 5 || b.Height != 10 || b.Speed != 7 {
		t.Errorf("unexpected bullet shape %+v", *b)
	}
}

func TestInvincibilityLastsExactly120Ticks(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rs := newTestRun(t, cfg)
	ps := NewPlayerSystem(cfg, nil)

	// 被击中后的状态
	rs.Player.Invincible = true
	rs.Player.InvincibleTimer = cfg.Player.InvincibilityTicks

	// 碰撞检测在玩家更新之后执行，统计之后仍处于无敌的 tick 数
	immune := 0
	for i := 0; i < 300; i++ {
		ps.Update(rs, components.Input{})
		if !rs.Player.Invincible {
			break
		}
		immune++
	}

	if immune != 120 {
		t.Errorf("expected 120 immune ticks, got %d", immune)
	}
	if rs.Player.InvincibleTimer != 0 {
		t.Errorf("expected timer to end at 0, got %d", rs.Player.InvincibleTimer)
	}
}

func TestPlayerTimersNeverNegative(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rs := newTestRun(t, cfg)
	ps := NewPlayerSystem(cfg, nil)

	for i := 0; i < 5; i++ {
		ps.Update(rs, components.Input{})
	}

	p := rs.Player
	if p.FireCooldown != 0 || p.PowerUpTimer != 0 || p.InvincibleTimer != 0 {
		t.Errorf("timers should stay at 0, got %+v", p)
	}
}
