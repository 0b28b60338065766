package systems

import (
	"math"
	"testing"

	"github.com/gonewx/starforce/pkg/components"
	"github.com/gonewx/starforce/pkg/config"
	"github.com/gonewx/starforce/pkg/game"
)

func newBullet(x, y float64) components.Bullet {
	b := components.Bullet{Speed: 7}
	b.X, b.Y, b.Width, b.Height = x, y, 5, 10
	return b
}

func newEnemy(t components.EnemyType, x, y, speed float64) components.Enemy {
	e := components.Enemy{Type: t, Speed: speed}
	e.X, e.Y, e.Width, e.Height = x, y, 50, 50
	return e
}

func TestBulletPrunedOnlyWhenFullyAboveTop(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ms := NewMotionSystem(cfg)

	tests := []struct {
		name      string
		y         float64
		wantAlive bool
	}{
		{"仍在画布内", 100, true},
		{"下边缘恰好在顶部", -3, true},
		{"完全飞出顶部", -4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newTestRun(t, cfg)
			rs.Bullets.Spawn(newBullet(10, tt.y))

			ms.Update(rs, nil)

			if got := rs.Bullets.IsAlive(0); got != tt.wantAlive {
				t.Errorf("expected alive=%v, got %v (y=%v)", tt.wantAlive, got, rs.Bullets.At(0).Y)
			}
		})
	}
}

func TestEnemyMotion(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ms := NewMotionSystem(cfg)
	rs := newTestRun(t, cfg)

	rs.Enemies.Spawn(newEnemy(components.EnemyStraight, 100, 0, 2.2))
	rs.Enemies.Spawn(newEnemy(components.EnemySine, 300, 0, 1.1))

	ms.Update(rs, nil)
	ms.Update(rs, nil)

	straight := rs.Enemies.At(0)
	if straight.X != 100 || math.Abs(straight.Y-4.4) > 1e-9 {
		t.Errorf("straight enemy: expected (100, 4.4), got (%v, %v)", straight.X, straight.Y)
	}

	sine := rs.Enemies.At(1)
	wantX := 300 + math.Sin(0)*2 + math.Sin(0.1)*2
	if math.Abs(sine.X-wantX) > 1e-9 {
		t.Errorf("sine enemy: expected x %v, got %v", wantX, sine.X)
	}
	if math.Abs(sine.Angle-0.2) > 1e-9 {
		t.Errorf("sine enemy: expected angle 0.2, got %v", sine.Angle)
	}
}

func TestEntitiesPrunedBelowBottom(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ms := NewMotionSystem(cfg)
	rs := newTestRun(t, cfg)
	h := cfg.Canvas.Height

	rs.Enemies.Spawn(newEnemy(components.EnemyStraight, 0, h-1, 2))
	rs.Enemies.Spawn(newEnemy(components.EnemyStraight, 0, h-3, 2))

	bb := components.BossBullet{Speed: 4}
	bb.Y, bb.Width, bb.Height = h-1, 10, 20
	rs.BossBullets.Spawn(bb)

	pu := components.PowerUp{Speed: 2}
	pu.Y, pu.Width, pu.Height = h-1, 20, 20
	rs.PowerUps.Spawn(pu)

	ms.Update(rs, nil)

	if rs.Enemies.IsAlive(0) || !rs.Enemies.IsAlive(1) {
		t.Errorf("expected only the first enemy pruned, alive = [%v %v]", rs.Enemies.IsAlive(0), rs.Enemies.IsAlive(1))
	}
	if rs.BossBullets.Alive() != 0 {
		t.Error("boss bullet below the canvas should be pruned")
	}
	if rs.PowerUps.Alive() != 0 {
		t.Error("power-up below the canvas should be pruned")
	}
}

func TestPowerUpPickup(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ms := NewMotionSystem(cfg)
	rs := newTestRun(t, cfg)

	pu := components.PowerUp{Speed: 2}
	pu.X, pu.Y, pu.Width, pu.Height = rs.Player.X+10, rs.Player.Y-10, 20, 20
	rs.PowerUps.Spawn(pu)

	ms.Update(rs, nil)

	if rs.PowerUps.Alive() != 0 {
		t.Error("picked up power-up should be removed")
	}
	if rs.Player.PowerUpTimer != 600 {
		t.Errorf("expected power-up timer 600, got %d", rs.Player.PowerUpTimer)
	}
}

func TestParticleLifespan(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ms := NewMotionSystem(cfg)
	rs := newTestRun(t, cfg)

	rs.Particles.Spawn(components.Particle{X: 10, Y: 10, VelocityX: 1, VelocityY: -1, Lifespan: 2})

	ms.Update(rs, nil)
	p := rs.Particles.At(0)
	if !rs.Particles.IsAlive(0) || p.X != 11 || p.Y != 9 || p.Lifespan != 1 {
		t.Fatalf("unexpected particle after 1 tick: %+v", *p)
	}

	ms.Update(rs, nil)
	if rs.Particles.IsAlive(0) {
		t.Error("particle should be pruned when lifespan reaches 0")
	}
}

func TestStarWrapsToTop(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ms := NewMotionSystem(cfg)
	rs := newTestRun(t, cfg)
	stars := &game.Starfield{Stars: []components.Star{
		{X: 100, Y: cfg.Canvas.Height - 0.5, Size: 1, Speed: 1},
		{X: 200, Y: 10, Size: 2, Speed: 1.5},
	}}

	ms.Update(rs, stars)

	wrapped := stars.Stars[0]
	if wrapped.Y != 0 {
		t.Errorf("expected wrapped star at y=0, got %v", wrapped.Y)
	}
	if wrapped.X < 0 || wrapped.X >= cfg.Canvas.Width {
		t.Errorf("wrapped star x %v out of canvas", wrapped.X)
	}
	if stars.Stars[1].Y != 11.5 || stars.Stars[1].X != 200 {
		t.Errorf("unexpected star %+v", stars.Stars[1])
	}
}

func newTestBoss(cfg *config.GameConfig, x, y float64) *components.Boss {
	b := &components.Boss{Speed: cfg.Boss.Speed, Direction: 1, HP: 100, MaxHP: 100, FireCooldown: 50}
	b.X, b.Y, b.Width, b.Height = x, y, cfg.Boss.Width, cfg.Boss.Height
	return b
}

func TestBossEntryAndDocking(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ms := NewMotionSystem(cfg)

	tests := []struct {
		name  string
		y     float64
		wantY float64
	}{
		{"入场下移", -150, -149},
		{"接近停靠点", 49.5, 50.5},
		{"停靠后不再下移", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newTestRun(t, cfg)
			rs.Boss = newTestBoss(cfg, 300, tt.y)

			ms.Update(rs, nil)

			if rs.Boss.Y != tt.wantY {
				t.Errorf("expected y %v, got %v", tt.wantY, rs.Boss.Y)
			}
		})
	}
}

func TestBossBouncesOffEdges(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ms := NewMotionSystem(cfg)
	rs := newTestRun(t, cfg)

	rs.Boss = newTestBoss(cfg, cfg.Canvas.Width-cfg.Boss.Width-1, 50)
	ms.Update(rs, nil)
	if rs.Boss.Direction != -1 {
		t.Fatalf("boss should turn around at the right edge, direction %v", rs.Boss.Direction)
	}

	rs.Boss.X = 1
	ms.Update(rs, nil)
	if rs.Boss.Direction != 1 {
		t.Errorf("boss should turn around at the left edge, direction %v", rs.Boss.Direction)
	}
}

func TestBossFiresOnCooldown(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ms := NewMotionSystem(cfg)
	rs := newTestRun(t, cfg)

	rs.Boss = newTestBoss(cfg, 300, 50)
	rs.Boss.FireCooldown = 0

	ms.Update(rs, nil)

	if rs.BossBullets.Len() != 1 {
		t.Fatalf("expected 1 boss bullet, got %d", rs.BossBullets.Len())
	}
	b := rs.BossBullets.At(0)
	wantX := rs.Boss.X + rs.Boss.Width/2 - 5
	wantY := rs.Boss.Y + rs.Boss.Height + b.Speed
	if b.X != wantX || b.Y != wantY {
		t.Errorf("expected boss bullet at (%v, %v), got (%v, %v)", wantX, wantY, b.X, b.Y)
	}
	if rs.Boss.FireCooldown != cfg.BossFireCooldown(1) {
		t.Errorf("expected cooldown reset to %d, got %d", cfg.BossFireCooldown(1), rs.Boss.FireCooldown)
	}

	// 冷却期间不再射击
	for i := 0; i < cfg.BossFireCooldown(1)-1; i++ {
		ms.Update(rs, nil)
	}
	if rs.BossBullets.Len() != 1 {
		t.Errorf("boss should not fire during cooldown, got %d bullets", rs.BossBullets.Len())
	}
	ms.Update(rs, nil)
	if rs.BossBullets.Len() != 2 {
		t.Errorf("boss should fire again after cooldown, got %d bullets", rs.BossBullets.Len())
	}
}
