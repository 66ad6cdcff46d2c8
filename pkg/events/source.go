// Package events 提供单线程的事件源与订阅管理
//
// 所有回调都在 Emit 的调用方线程上同步执行，与帧循环处于同一逻辑线程，
// 因此不需要加锁。
package events

// Source 单一类型事件的广播源
// 处理器按订阅顺序被调用
type Source[T any] struct {
	nextID   uint64
	handlers []handlerEntry[T]
}

type handlerEntry[T any] struct {
	id uint64
	fn func(T)
}

// Subscription 订阅句柄
// Unsubscribe 可重复调用
type Subscription struct {
	cancel func()
}

// Unsubscribe 取消订阅
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Subscribe 注册处理器
func (s *Source[T]) Subscribe(fn func(T)) *Subscription {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, handlerEntry[T]{id: id, fn: fn})
	return &Subscription{cancel: func() { s.remove(id) }}
}

func (s *Source[T]) remove(id uint64) {
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Emit 同步分发事件
// 分发期间新增或取消的订阅不影响本次分发
func (s *Source[T]) Emit(event T) {
	if len(s.handlers) == 0 {
		return
	}
	snapshot := make([]handlerEntry[T], len(s.handlers))
	copy(snapshot, s.handlers)
	for _, h := range snapshot {
		h.fn(event)
	}
}

// Len 当前订阅数量
func (s *Source[T]) Len() int {
	return len(s.handlers)
}

// Bag 收集一组订阅，Close 时全部释放
// 组件销毁时调用 Close 即可保证不残留回调
type Bag struct {
	subs []*Subscription
}

// Add 加入订阅
func (b *Bag) Add(sub *Subscription) {
	if sub != nil {
		b.subs = append(b.subs, sub)
	}
}

// Len 持有的订阅数量
func (b *Bag) Len() int {
	return len(b.subs)
}

// Close 释放全部订阅，可重复调用
func (b *Bag) Close() {
	for _, sub := range b.subs {
		sub.Unsubscribe()
	}
	b.subs = nil
}
