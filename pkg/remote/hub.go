package remote

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gonewx/vrroom/pkg/room"
)

// Hub 独占房间：命令、订阅和模拟推进都在 Run 的 goroutine 中处理
type Hub struct {
	room *room.Room

	tick           time.Duration
	broadcastEvery int // 每多少个 tick 广播一次

	commands chan Command
	join     chan chan []byte
	leave    chan chan []byte
	done     chan struct{}

	subscribers map[chan []byte]struct{}
}

// NewHub 创建 Hub
//
// 参数：
//   - r: 房间（Run 返回前由 Hub 独占）
//   - tick: 模拟步长
//   - broadcastEvery: 每隔多少个 tick 广播一次状态（<=0 视为 1）
func NewHub(r *room.Room, tick time.Duration, broadcastEvery int) *Hub {
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Hub{
		room:           r,
		tick:           tick,
		broadcastEvery: broadcastEvery,
		commands:       make(chan Command, 256),
		join:           make(chan chan []byte),
		leave:          make(chan chan []byte),
		done:           make(chan struct{}),
		subscribers:    make(map[chan []byte]struct{}),
	}
}

// Commands 命令入口
func (h *Hub) Commands() chan<- Command { return h.commands }

// Join 注册一个订阅者；ctx 结束或 Hub 已停止时返回 false
func (h *Hub) Join(ctx context.Context, out chan []byte) bool {
	select {
	case h.join <- out:
		return true
	case <-ctx.Done():
		return false
	case <-h.done:
		return false
	}
}

// Leave 注销订阅者；Hub 已停止时直接返回
func (h *Hub) Leave(out chan []byte) {
	select {
	case h.leave <- out:
	case <-h.done:
	}
}

// Done Run 返回后关闭
func (h *Hub) Done() <-chan struct{} { return h.done }

// Run 驱动房间直到 ctx 结束，返回前关闭房间
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()
	defer close(h.done)
	defer h.room.Close()

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			log.Printf("[Hub] Stopped after %d ticks", ticks)
			return

		case out := <-h.join:
			h.subscribers[out] = struct{}{}
			h.send(out, h.encodeState())
			log.Printf("[Hub] Subscriber joined (%d total)", len(h.subscribers))

		case out := <-h.leave:
			delete(h.subscribers, out)
			log.Printf("[Hub] Subscriber left (%d total)", len(h.subscribers))

		case cmd := <-h.commands:
			cmd.Apply(h.room)

		case <-ticker.C:
			h.room.Update(h.tick.Seconds())
			ticks++
			if ticks%h.broadcastEvery == 0 && len(h.subscribers) > 0 {
				h.broadcast(h.encodeState())
			}
		}
	}
}

func (h *Hub) encodeState() []byte {
	b, err := json.Marshal(NewStateMsg(h.room.Snapshot()))
	if err != nil {
		log.Printf("[Hub] Warning: encode state: %v", err)
		return nil
	}
	return b
}

func (h *Hub) broadcast(b []byte) {
	for out := range h.subscribers {
		h.send(out, b)
	}
}

// send 不阻塞：慢客户端丢帧
func (h *Hub) send(out chan []byte, b []byte) {
	if b == nil {
		return
	}
	select {
	case out <- b:
	default:
	}
}
