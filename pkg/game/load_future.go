package game

import (
	"context"
	"sync"
)

// AssetCallback 单个资源加载完成回调
// err 不为 nil 表示加载失败（仍计为已完成）
type AssetCallback func(id string, err error)

// LoadFuture 异步资源加载的"全部完成"信号
//
// 每个资源最多回调一次；全部资源完成后 Done 通道关闭且只关闭一次。
// 失败的资源也计入完成数，避免启动流程卡住。
type LoadFuture struct {
	mu       sync.Mutex
	total    int
	finished map[string]bool
	failed   int
	onAsset  AssetCallback

	done      chan struct{}
	closeOnce sync.Once
}

// NewLoadFuture 创建等待 total 个资源的 future
// total 为 0 时立即完成
func NewLoadFuture(total int, onAsset AssetCallback) *LoadFuture {
	f := &LoadFuture{
		total:    total,
		finished: make(map[string]bool, total),
		onAsset:  onAsset,
		done:     make(chan struct{}),
	}
	if total <= 0 {
		f.resolve()
	}
	return f
}

// Complete 报告一个资源加载结束
// 同一 id 重复报告会被忽略，返回是否为首次报告
func (f *LoadFuture) Complete(id string, err error) bool {
	f.mu.Lock()
	if f.finished[id] || len(f.finished) >= f.total {
		f.mu.Unlock()
		return false
	}
	f.finished[id] = true
	if err != nil {
		f.failed++
	}
	all := len(f.finished) >= f.total
	cb := f.onAsset
	f.mu.Unlock()

	if cb != nil {
		cb(id, err)
	}
	if all {
		f.resolve()
	}
	return true
}

func (f *LoadFuture) resolve() {
	f.closeOnce.Do(func() { close(f.done) })
}

// Done 返回全部完成时关闭的通道
func (f *LoadFuture) Done() <-chan struct{} {
	return f.done
}

// Ready 非阻塞检查是否全部完成
func (f *LoadFuture) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Progress 返回已完成数、失败数和总数
func (f *LoadFuture) Progress() (finished, failed, total int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.finished), f.failed, f.total
}

// Wait 阻塞等待全部完成或 ctx 结束
func (f *LoadFuture) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
