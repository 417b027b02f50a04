package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/networking-ai/internal/api"
	"github.com/ignite/networking-ai/internal/config"
	"github.com/ignite/networking-ai/internal/llm"
	"github.com/ignite/networking-ai/internal/pkg/distlock"
	"github.com/ignite/networking-ai/internal/pkg/logger"
	"github.com/ignite/networking-ai/internal/repository/memory"
	"github.com/ignite/networking-ai/internal/repository/postgres"
	"github.com/ignite/networking-ai/internal/service/analytics"
	"github.com/ignite/networking-ai/internal/service/campaign"
	"github.com/ignite/networking-ai/internal/service/contact"
	"github.com/ignite/networking-ai/internal/service/goals"
	"github.com/ignite/networking-ai/internal/service/interaction"
	"github.com/ignite/networking-ai/internal/service/outreach"
	"github.com/ignite/networking-ai/internal/service/template"
)

// checkPortAvailable verifies that the target port is not already in use.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

// extractHost returns the host part of a URL DSN so logs never carry the
// password.
func extractHost(dsn string) string {
	at := strings.Index(dsn, "@")
	if at < 0 {
		return "(unknown)"
	}
	rest := dsn[at+1:]
	if slash := strings.Index(rest, "/"); slash >= 0 {
		rest = rest[:slash]
	}
	return rest
}

// contactStore is the contact repository plus the derived-field writes
// interaction logging needs.
type contactStore interface {
	contact.Repository
	interaction.ContactWriter
}

// repositories is the storage backend chosen at startup.
type repositories struct {
	contacts     contactStore
	campaigns    campaign.Repository
	templates    template.Repository
	interactions interaction.Repository
	goals        goals.Repository
	analytics    analytics.Source
}

func openRepositories(ctx context.Context, cfg config.DatabaseConfig) (*repositories, *sql.DB, error) {
	if cfg.InMemory() {
		logger.Warn("DATABASE_URL not set, using in-memory store (data is lost on restart)")
		store := memory.NewStore()
		return &repositories{
			contacts:     store.Contacts(),
			campaigns:    store.Campaigns(),
			templates:    store.Templates(),
			interactions: store.Interactions(),
			goals:        store.Goals(),
			analytics:    store.Analytics(),
		}, nil, nil
	}

	logger.Info("connecting to database", "host", extractHost(cfg.URL), "schema", cfg.Name)
	db, err := postgres.Open(cfg.URL, cfg.Name, cfg.MaxOpenConns)
	if err != nil {
		return nil, nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	if err := postgres.Migrate(ctx, db, cfg.Name); err != nil {
		db.Close()
		return nil, nil, err
	}
	return &repositories{
		contacts:     postgres.NewContactRepo(db),
		campaigns:    postgres.NewCampaignRepo(db),
		templates:    postgres.NewTemplateRepo(db),
		interactions: postgres.NewInteractionRepo(db),
		goals:        postgres.NewGoalsRepo(db),
		analytics:    postgres.NewAnalyticsRepo(db),
	}, db, nil
}

// connectRedis returns nil when Redis is not configured or unreachable;
// interaction logging then runs without the per-contact lock.
func connectRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.URL == "" {
		logger.Info("redis not configured, relationship refresh runs unlocked")
		return nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		opts = &redis.Options{Addr: cfg.URL}
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis connection failed, relationship refresh runs unlocked", "error", err)
		client.Close()
		return nil
	}
	logger.Info("redis connected", "addr", opts.Addr)
	return client
}

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	logger.SetRedactPII(cfg.Logging.Redact())

	host := cfg.Server.GetHost()
	if err := checkPortAvailable(host, cfg.Server.Port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, db, err := openRepositories(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	redisClient := connectRedis(ctx, cfg.Redis)
	var locks distlock.Factory
	if redisClient != nil {
		locks = distlock.NewRedisFactory(redisClient, cfg.Redis.LockTTL())
	}

	model, err := llm.New(ctx, cfg.LLM)
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		logger.Warn("LLM credentials not configured, email generation is disabled", "provider", cfg.LLM.Provider, "error", err)
	case err != nil:
		log.Fatalf("Failed to initialize LLM client: %v", err)
	default:
		logger.Info("LLM client initialized", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	}

	goalsSvc := goals.NewService(repos.goals)
	handlers := api.NewHandlers(api.Services{
		Contacts:     contact.NewService(repos.contacts),
		Campaigns:    campaign.NewService(repos.campaigns),
		Templates:    template.NewService(repos.templates, repos.contacts),
		Interactions: interaction.NewService(repos.interactions, repos.contacts, locks),
		Goals:        goalsSvc,
		Analytics:    analytics.NewService(repos.analytics),
		Drafter:      outreach.NewDrafter(model, repos.contacts, goalsSvc),
	})
	server := api.NewServer(cfg.Server, handlers, api.NewHealthChecker(db, redisClient))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "addr", server.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	logger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if db != nil {
		db.Close()
	}
	logger.Info("server stopped")
}
