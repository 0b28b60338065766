package game

import (
	"sync"
	"time"
)

// Clock 墙钟时间来源
type Clock interface {
	Now() time.Time
}

// RealClock 系统时钟
type RealClock struct{}

// Now 返回当前系统时间
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock 可手动推进的时钟，用于测试
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock 创建起始于 start 的模拟时钟
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now 返回当前模拟时间
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance 推进模拟时间
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Deadline 一次性墙钟定时器
//
// 不使用 goroutine 或 time.Timer：由帧回调每帧调用 Poll 检查是否到期，
// 保证回调和模拟在同一个线程上执行。
type Deadline struct {
	clock   Clock
	at      time.Time
	pending bool
}

// NewDeadline 创建未启动的定时器
func NewDeadline(clock Clock) *Deadline {
	return &Deadline{clock: clock}
}

// Arm 从现在开始计时 d 后到期
// 已在计时时重新计时
func (d *Deadline) Arm(after time.Duration) {
	d.at = d.clock.Now().Add(after)
	d.pending = true
}

// Cancel 取消尚未触发的定时器
func (d *Deadline) Cancel() {
	d.pending = false
}

// Pending 是否在等待触发
func (d *Deadline) Pending() bool {
	return d.pending
}

// Remaining 返回距离到期的剩余时间，未启动时为 0
func (d *Deadline) Remaining() time.Duration {
	if !d.pending {
		return 0
	}
	if r := d.at.Sub(d.clock.Now()); r > 0 {
		return r
	}
	return 0
}

// Poll 检查是否到期
// 每次 Arm 之后最多返回一次 true
func (d *Deadline) Poll() bool {
	if !d.pending || d.clock.Now().Before(d.at) {
		return false
	}
	d.pending = false
	return true
}
