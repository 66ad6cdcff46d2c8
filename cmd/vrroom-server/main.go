// vrroom-server 通过 WebSocket 提供房间
//
// 客户端连接 /ws，发送 {"type":"PLACE","item":"crystal"} 这类命令，
// 服务器每 100ms 广播一次 STATE。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gonewx/vrroom/data"
	"github.com/gonewx/vrroom/pkg/config"
	"github.com/gonewx/vrroom/pkg/embedded"
	"github.com/gonewx/vrroom/pkg/remote"
	"github.com/gonewx/vrroom/pkg/room"
)

var (
	addr       = flag.String("addr", "127.0.0.1:8420", "监听地址")
	configPath = flag.String("config", "", "房间配置文件路径（默认使用内置默认配置）")
	seed       = flag.Int64("seed", 1, "随机种子")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

const (
	tickInterval   = 16 * time.Millisecond
	broadcastEvery = 6
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.InitDir(data.Files)
	cfg, err := config.LoadRoomConfigOrEmbedded(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载房间配置失败: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := remote.NewHub(room.NewRoom(cfg, room.Options{Seed: *seed}), tickInterval, broadcastEvery)
	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", remote.NewServer(hub).Handler())
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte("ok\n"))
	})

	srv := &http.Server{Addr: *addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	fmt.Printf("vrroom-server listening on ws://%s/ws (seed %d)\n", *addr, *seed)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
	<-hub.Done()
}
