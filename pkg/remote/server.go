package remote

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 60 * time.Second
	outQueue     = 8
)

// Server WebSocket 入口
type Server struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewServer 创建服务器
func NewServer(hub *Hub) *Server {
	return &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // 本地调试
		},
	}
}

// Handler 处理 /ws：写 goroutine 转发状态，读循环把命令交给 Hub
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		out := make(chan []byte, outQueue)
		if !s.hub.Join(ctx, out) {
			return
		}
		defer s.hub.Leave(out)

		writeDone := make(chan struct{})
		go func() {
			defer close(writeDone)
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-out:
					_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			cmd, err := DecodeCommand(msg)
			if err != nil {
				log.Printf("[Remote] Ignoring command: %v", err)
				continue
			}
			select {
			case s.hub.Commands() <- cmd:
			case <-ctx.Done():
			case <-s.hub.Done():
			}
		}

		cancel()
		<-writeDone
	}
}
