// Command spectator relays match events published on redis to websocket
// spectators, so games can be watched without reaching the game process.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krishanu7/sea-battle/config"
	"github.com/krishanu7/sea-battle/internal/auth"
	"github.com/krishanu7/sea-battle/internal/ws"
	"github.com/krishanu7/sea-battle/pkg/redis"
	wsPkg "github.com/krishanu7/sea-battle/pkg/websocket"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	addr := cfg.SpectatorAddr
	if addr == "" {
		addr = ":8080"
	}

	rdb, err := redis.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}
	defer rdb.Close()

	hub := wsPkg.NewHub()
	worker := ws.NewNotificationWorker(rdb, hub, cfg.NotifyChannel)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Notification worker stopped: %v", err)
			stop()
		}
	}()

	tokens := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	wsHandler := ws.NewHandler(hub)
	mux := http.NewServeMux()
	mux.Handle("GET /ws/spectate", auth.RequireToken(tokens, http.HandlerFunc(wsHandler.ServeWS)))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Spectator relay started at %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
