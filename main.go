package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/krishanu7/sea-battle/config"
	"github.com/krishanu7/sea-battle/internal/auth"
	"github.com/krishanu7/sea-battle/internal/console"
	"github.com/krishanu7/sea-battle/internal/game"
	"github.com/krishanu7/sea-battle/internal/match"
	"github.com/krishanu7/sea-battle/internal/player"
	"github.com/krishanu7/sea-battle/internal/random"
	"github.com/krishanu7/sea-battle/internal/ws"
	"github.com/krishanu7/sea-battle/pkg/redis"
	wsPkg "github.com/krishanu7/sea-battle/pkg/websocket"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	rng, seed, err := random.NewSource(cfg.Seed)
	if err != nil {
		log.Fatal("Failed to seed random source: ", err)
	}
	log.Printf("Using seed %d", seed)

	tally := console.NewPlacementTally()
	placer := game.NewPlacer(rng)
	placer.OnReject = tally.Reject
	humanBoard := placer.RandomBoard()
	log.Printf("Placed fleet for %s, refused attempts: %s", cfg.PlayerName, tally)
	tally.Reset()
	computerBoard := placer.RandomBoard()
	log.Printf("Placed fleet for %s, refused attempts: %s", cfg.ComputerName, tally)
	computerBoard.Conceal()

	human := player.New(cfg.PlayerName, humanBoard, computerBoard, player.NewHuman(console.NewPrompt(os.Stdin, os.Stdout)))
	computer := player.New(cfg.ComputerName, computerBoard, humanBoard, player.NewComputer(rng))

	notifiers := []match.Notifier{
		console.NewPresenter(os.Stdout, human, computer).Announce(computer.Name),
	}

	if cfg.RedisAddr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		rdb, err := redis.NewRedisClient(pingCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()
		if err != nil {
			log.Printf("Match events will not be published: %v", err)
		} else {
			defer rdb.Close()
			notifiers = append(notifiers, match.NewRedisNotifier(rdb, cfg.NotifyChannel))
		}
	}

	var hub *wsPkg.Hub
	if cfg.SpectatorAddr != "" {
		hub = wsPkg.NewHub()
		notifiers = append(notifiers, ws.NewBroadcaster(hub))
	}

	svc := match.NewService(human, computer, notifiers...)

	if hub != nil {
		tokens := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
		srv := newSpectatorServer(cfg.SpectatorAddr, svc, hub, tokens)
		go func() {
			log.Printf("Spectator server started at %s", cfg.SpectatorAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Spectator server stopped: %v", err)
			}
		}()
		defer shutdown(srv)

		if tokens.Enabled() {
			token, err := tokens.IssueToken(svc.ID)
			if err != nil {
				log.Printf("Failed to issue spectator token: %v", err)
			} else {
				log.Printf("Spectate match %s with token %s", svc.ID, token)
			}
		}
	}

	console.Greet(os.Stdout)
	if _, err := svc.Run(ctx); err != nil {
		if errors.Is(err, io.EOF) {
			log.Println("Game aborted.")
			return
		}
		log.Printf("Game stopped: %v", err)
	}
}

func newSpectatorServer(addr string, svc *match.Service, hub *wsPkg.Hub, tokens *auth.Service) *http.Server {
	matchHandler := match.NewHandler(svc)
	wsHandler := ws.NewHandler(hub)

	mux := http.NewServeMux()
	mux.Handle("GET /api/v1/match/state", auth.RequireToken(tokens, http.HandlerFunc(matchHandler.State)))
	mux.Handle("GET /ws/spectate", auth.RequireToken(tokens, http.HandlerFunc(wsHandler.ServeWS)))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Failed to shut down spectator server: %v", err)
	}
}
