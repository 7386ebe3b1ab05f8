package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/buzzd/internal/codes"
	"github.com/KirkDiggler/buzzd/internal/common/clock"
	"github.com/KirkDiggler/buzzd/internal/common/uuid"
	"github.com/KirkDiggler/buzzd/internal/handlers/gateway"
	playerRepo "github.com/KirkDiggler/buzzd/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/buzzd/internal/repositories/room"
	playerService "github.com/KirkDiggler/buzzd/internal/services/player"
	roomService "github.com/KirkDiggler/buzzd/internal/services/room"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if getEnv("LOG_PRETTY", "") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	roomRepository, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create room repository")
	}

	playerRepository, err := playerRepo.NewRedis(&playerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create player repository")
	}

	codeGen := codes.New(&codes.Config{})
	clk := clock.New()

	roomSvc, err := roomService.New(&roomService.Config{
		RoomRepo:   roomRepository,
		PlayerRepo: playerRepository,
		CodeGen:    codeGen,
		Clock:      clk,
		RoomTTL:    getEnvDuration("ROOM_TTL", 0),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create room service")
	}

	playerSvc, err := playerService.New(&playerService.Config{
		PlayerRepo: playerRepository,
		RoomRepo:   roomRepository,
		CodeGen:    codeGen,
		Clock:      clk,
		UUIDGen:    uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create player service")
	}

	ticker, err := roomService.NewTicker(&roomService.TickerConfig{
		Service: roomSvc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create ticker")
	}

	gw, err := gateway.New(&gateway.Config{
		Rooms:      roomSvc,
		Players:    playerSvc,
		RoomRepo:   roomRepository,
		PlayerRepo: playerRepository,
		Ticker:     ticker,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create gateway")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go gw.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/ws", gw)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":8080"),
		Handler: mux,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	gw.Close()

	if err := redisClient.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close Redis client")
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration reads a duration in seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("ignoring invalid duration")
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
