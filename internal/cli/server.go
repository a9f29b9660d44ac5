package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codescore-service/internal/app"
	"codescore-service/internal/config"
	"codescore-service/internal/infra/memory"
	pgloader "codescore-service/internal/infra/postgres"
	rediscache "codescore-service/internal/infra/redis"
	"codescore-service/internal/review"
	transport "codescore-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const (
	defaultAnalysisModel = "gemini-1.5-flash"
	defaultRefactorModel = "gemini-1.5-flash"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the arcade server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 24*time.Hour)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	// Catalog content comes from Postgres when configured, otherwise from the
	// built-in bank.
	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(memory.DefaultCatalog())
	if pool != nil {
		loader = pgloader.NewCatalogLoader(pool)
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	var catalogRepo app.CatalogRepository
	if redisClient != nil {
		catalogRepo = rediscache.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalogRepo = memory.NewCatalogRepository(loader, catalogTTL)
	}

	// Sessions hold live game state and stay in process; only the profile is
	// durable.
	var profiles app.ProfileRepository
	if redisClient != nil {
		profiles = rediscache.NewProfileStore(redisClient, redisTTL)
	} else {
		profiles = memory.NewProfileStore()
	}

	service := app.NewArcadeService(memory.NewSessionStore(), catalogRepo, profiles)
	wsHandler := transport.NewWSHandler(service)

	var reviewer *review.Reviewer
	if apiKey := cfg.LLMAPIKey(); apiKey != "" {
		client, err := review.NewGeminiClient(ctx, apiKey)
		if err != nil {
			return err
		}
		defer client.Close()

		analysisModel := cfg.LLM.AnalysisModel
		if analysisModel == "" {
			analysisModel = defaultAnalysisModel
		}
		refactorModel := cfg.LLM.RefactorModel
		if refactorModel == "" {
			refactorModel = defaultRefactorModel
		}
		reviewer = review.NewReviewer(client.Model(analysisModel), client.Model(refactorModel))
	} else {
		log.Println("GEMINI_API_KEY not set; review endpoints disabled")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	transport.NewReviewHandler(reviewer, service).Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting codescore service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
