package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpAdapter "github.com/auntiebot/auntiecount/internal/adapter/http"
	"github.com/auntiebot/auntiecount/internal/adapter/http/handler"
	"github.com/auntiebot/auntiecount/internal/adapter/http/middleware"
	"github.com/auntiebot/auntiecount/internal/adapter/repository"
	"github.com/auntiebot/auntiecount/internal/adapter/repository/memory"
	redisRepo "github.com/auntiebot/auntiecount/internal/adapter/repository/redis"
	"github.com/auntiebot/auntiecount/internal/infrastructure/config"
	"github.com/auntiebot/auntiecount/internal/infrastructure/logger"
	"github.com/auntiebot/auntiecount/internal/infrastructure/metrics"
	"github.com/auntiebot/auntiecount/internal/infrastructure/redis"
	"github.com/auntiebot/auntiecount/internal/infrastructure/token"
	"github.com/auntiebot/auntiecount/internal/reply"
	"github.com/auntiebot/auntiecount/internal/usecase"
)

func main() {
	// Local runs keep secrets in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("failed to load timezone")
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	ctx := context.Background()

	// Pick the store backend
	var (
		users    usecase.UserRepository
		feedback usecase.FeedbackRepository
		ping     func(context.Context) error
	)
	switch cfg.StoreBackend {
	case "memory":
		users = memory.NewUserStore()
		feedback = memory.NewFeedbackStore()
		log.Warn().Msg("using in-memory store, data is lost on restart")
	default:
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		log.Info().Msg("connected to redis")

		retrier := redisRepo.NewRetrier(log)
		users = redisRepo.NewUserStore(redisClient, retrier)
		feedback = redisRepo.NewFeedbackStore(redisClient, retrier)
		ping = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	m := metrics.New()
	responder := reply.NewResponder(rng, cfg.SummaryBaseURL)
	tokenizer := token.New(cfg.SummarySecret)
	idGen := repository.NewULIDGenerator()

	// Initialize use cases
	chatUC := usecase.NewChatUseCase(users, tokenizer, responder, loc, time.Now)
	ledgerUC := usecase.NewLedgerUseCase(users, loc, time.Now)
	feedbackUC := usecase.NewFeedbackUseCase(feedback, idGen, time.Now)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		WebhookHandler:  handler.NewWebhookHandler(chatUC, m, log),
		LedgerHandler:   handler.NewLedgerHandler(ledgerUC, cfg.AdminToken, m),
		FeedbackHandler: handler.NewFeedbackHandler(feedbackUC, m),
		HealthHandler:   handler.NewHealthHandler(ping),
		HTTPMetrics:     middleware.NewHTTPMetrics(),
		RateLimiter:     middleware.NewRateLimiter(5, 10),
		Logger:          log,
		TwilioToken:     cfg.TwilioToken,
		PublicDir:       cfg.PublicDir,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
