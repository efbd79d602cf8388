package main

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/kioskpoint/backend/internal/ai"
	"github.com/kioskpoint/backend/internal/config"
	"github.com/kioskpoint/backend/internal/database"
	"github.com/kioskpoint/backend/internal/handler"
	"github.com/kioskpoint/backend/internal/logger"
	"github.com/kioskpoint/backend/internal/notify"
	"github.com/kioskpoint/backend/internal/repository"
	"github.com/kioskpoint/backend/pkg"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	pool, err := database.Connect(ctx, cfg.DB.DSN(), cfg.DB.MaxConns)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		sugar.Fatal(err)
	}

	repo := repository.NewRepository(pool)

	if err := seedAdminUser(ctx, repo, cfg); err != nil {
		sugar.Fatal(err)
	}

	var notifier notify.Notifier = notify.NewLogNotifier(log)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			sugar.Warnw("redis unreachable at startup, notifications are best-effort", "err", err)
		}
		cancel()
		notifier = notify.NewRedisNotifier(rdb, log)
	}

	provider := ai.New(cfg.OpenAI.APIKey, cfg.OpenAI.VisionModel)
	if cfg.OpenAI.APIKey == "" {
		sugar.Info("no OPENAI_API_KEY set, OCR/STT/TTS will serve fallback responses")
	}

	h := &handler.Handler{
		Logger:     log,
		Visitors:   &repo.Visitor,
		Hosts:      &repo.Host,
		Visits:     &repo.Visit,
		AdminUsers: &repo.AdminUser,
		OCR:        provider,
		STT:        provider,
		TTS:        provider,
		Notifier:   notifier,
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

// seedAdminUser creates the bootstrap dashboard admin when configured and
// not already present.
func seedAdminUser(ctx context.Context, repo *repository.Repository, cfg *config.Config) error {
	if cfg.Admin.Username == "" {
		return nil
	}

	hash, err := pkg.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	_, err = repo.AdminUser.Create(ctx, cfg.Admin.Username, hash, nil)
	if errors.Is(err, repository.ErrUsernameTaken) {
		return nil
	}
	return err
}
