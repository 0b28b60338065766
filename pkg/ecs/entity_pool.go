// Package ecs 提供同构实体池
//
// 每种实体（子弹、敌机、粒子……）存放在各自的 Pool 中，按连续槽位索引。
// 删除采用"先标记、后压缩"的两段式：遍历过程中只标记，帧末统一调用
// RemoveMarked 压缩，避免边遍历边删除导致的索引失效问题。
package ecs

// Pool 管理一种实体的连续存储
type Pool[T any] struct {
	items []T
	// 待删除标记，与 items 一一对应
	marked  []bool
	pending int
}

// NewPool 创建一个新的实体池
// capacity 为预分配容量，可为 0
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		items:  make([]T, 0, capacity),
		marked: make([]bool, 0, capacity),
	}
}

// Spawn 追加新实体并返回其槽位
// 遍历过程中 Spawn 的实体不会被本轮 Each 访问到
func (p *Pool[T]) Spawn(item T) int {
	p.items = append(p.items, item)
	p.marked = append(p.marked, false)
	return len(p.items) - 1
}

// Len 返回槽位总数（包含已标记待删除的实体）
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Alive 返回未被标记删除的实体数量
func (p *Pool[T]) Alive() int {
	return len(p.items) - p.pending
}

// At 返回指定槽位实体的指针，修改会直接作用于池内数据
func (p *Pool[T]) At(slot int) *T {
	return &p.items[slot]
}

// IsAlive 检查槽位上的实体是否仍存活（未被标记）
func (p *Pool[T]) IsAlive(slot int) bool {
	return slot >= 0 && slot < len(p.items) && !p.marked[slot]
}

// Destroy 标记实体待删除（不立即删除）
// 重复标记同一槽位是安全的
func (p *Pool[T]) Destroy(slot int) {
	if slot < 0 || slot >= len(p.items) || p.marked[slot] {
		return
	}
	p.marked[slot] = true
	p.pending++
}

// Each 按槽位顺序遍历所有存活实体
// 回调中可以 Destroy 任意槽位，也可以 Spawn 新实体
func (p *Pool[T]) Each(fn func(slot int, item *T)) {
	n := len(p.items)
	for i := 0; i < n; i++ {
		if p.marked[i] {
			continue
		}
		fn(i, &p.items[i])
	}
}

// RemoveMarked 清理所有标记删除的实体
// 保持存活实体的相对顺序，返回本次清理的数量
func (p *Pool[T]) RemoveMarked() int {
	if p.pending == 0 {
		return 0
	}

	removed := p.pending
	kept := 0
	for i := range p.items {
		if p.marked[i] {
			continue
		}
		p.items[kept] = p.items[i]
		p.marked[kept] = false
		kept++
	}

	// 清零尾部，释放引用
	var zero T
	for i := kept; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:kept]
	p.marked = p.marked[:kept]
	p.pending = 0
	return removed
}

// Clear 清空实体池（保留底层容量）
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
	p.marked = p.marked[:0]
	p.pending = 0
}

// Snapshot 返回存活实体的副本，供渲染等只读场景使用
func (p *Pool[T]) Snapshot() []T {
	out := make([]T, 0, p.Alive())
	for i, item := range p.items {
		if !p.marked[i] {
			out = append(out, item)
		}
	}
	return out
}
