package game

// Scheduler 可取消的 tick 调度句柄
//
// 由游戏流程持有：进入冻结阶段（通关、游戏结束）时取消，离开时重新武装。
// 重复武装不会产生第二条调度。
type Scheduler struct {
	armed bool
	ticks uint64
	arms  int
}

// NewScheduler 创建未武装的调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Arm 武装调度器
// 已武装时返回 false 且不做任何事
func (s *Scheduler) Arm() bool {
	if s.armed {
		return false
	}
	s.armed = true
	s.arms++
	return true
}

// Cancel 取消调度，之后的 Tick 不再执行
func (s *Scheduler) Cancel() {
	s.armed = false
}

// Armed 是否处于武装状态
func (s *Scheduler) Armed() bool {
	return s.armed
}

// Tick 在武装状态下执行一次 fn，返回是否执行
func (s *Scheduler) Tick(fn func()) bool {
	if !s.armed {
		return false
	}
	s.ticks++
	fn()
	return true
}

// Ticks 返回已执行的 tick 总数
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Arms 返回成功武装的次数
func (s *Scheduler) Arms() int {
	return s.arms
}
