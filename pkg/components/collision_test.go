package components

import "testing"

func TestRectIntersects(t *testing.T) {
	enemy := Rect{X: 100, Y: 100, Width: 50, Height: 50}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"完全包含", Rect{X: 110, Y: 110, Width: 5, Height: 10}, true},
		{"重叠 1 像素", Rect{X: 149, Y: 149, Width: 5, Height: 10}, true},
		{"右边缘相接", Rect{X: 150, Y: 120, Width: 5, Height: 10}, false},
		{"下边缘相接", Rect{X: 120, Y: 150, Width: 5, Height: 10}, false},
		{"上方完全分离", Rect{X: 120, Y: 80, Width: 5, Height: 10}, false},
		{"左侧部分重叠", Rect{X: 96, Y: 120, Width: 5, Height: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enemy.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.b, got, tt.want)
			}
			// 重叠关系是对称的
			if got := tt.b.Intersects(enemy); got != tt.want {
				t.Errorf("reverse Intersects(%+v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 375, Y: 540, Width: 50, Height: 50}
	x, y := r.Center()
	if x != 400 || y != 565 {
		t.Errorf("Center() = (%v, %v), want (400, 565)", x, y)
	}
	if r.Bottom() != 590 {
		t.Errorf("Bottom() = %v, want 590", r.Bottom())
	}
}

func TestBossHPRatio(t *testing.T) {
	tests := []struct {
		name string
		boss Boss
		want float64
	}{
		{"满血", Boss{HP: 100, MaxHP: 100}, 1},
		{"半血", Boss{HP: 50, MaxHP: 100}, 0.5},
		{"负血量", Boss{HP: -5, MaxHP: 100}, 0},
		{"未初始化", Boss{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.boss.HPRatio(); got != tt.want {
				t.Errorf("HPRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnemyTypeImageID(t *testing.T) {
	if EnemyStraight.ImageID() != "enemy1" {
		t.Errorf("straight enemy should use enemy1, got %s", EnemyStraight.ImageID())
	}
	if EnemySine.ImageID() != "enemy2" {
		t.Errorf("sine enemy should use enemy2, got %s", EnemySine.ImageID())
	}
}

func TestGamePhaseSimulating(t *testing.T) {
	simulating := map[GamePhase]bool{
		PhaseStartScreen:   false,
		PhasePlaying:       true,
		PhaseBossFight:     true,
		PhaseStageClearing: false,
		PhaseGameOver:      false,
	}
	for phase, want := range simulating {
		if phase.Simulating() != want {
			t.Errorf("%s.Simulating() = %v, want %v", phase, phase.Simulating(), want)
		}
	}
}
