package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/khadamat/backend/internal/config"
	"github.com/khadamat/backend/internal/handlers"
	"github.com/khadamat/backend/internal/hashing"
	"github.com/khadamat/backend/internal/models"
	"github.com/khadamat/backend/internal/repository"
	"github.com/khadamat/backend/internal/router"
	"github.com/khadamat/backend/internal/service"
	"github.com/khadamat/backend/internal/sessions"
	"github.com/khadamat/backend/internal/token"
)

const sessionTTL = 24 * time.Hour

func main() {
	// .env is optional in hosted environments
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Load(log)
	if cfg.DevMode {
		if devLog, err := zap.NewDevelopment(); err == nil {
			log = devLog
		}
	}

	// TranslateError maps driver duplicate-key errors onto gorm.ErrDuplicatedKey,
	// which the tracking get-or-create relies on.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := models.AutoMigrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	repos := repository.New(db)

	var sessionStore service.SessionStore
	if cfg.RedisAddr != "" {
		redisStore, err := sessions.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, 0, log)
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer redisStore.Close()
		sessionStore = redisStore
	} else if cfg.DevMode {
		log.Warn("REDIS_ADDR not set, using in-memory sessions (dev mode only)")
		sessionStore = sessions.NewMemoryStore()
	} else {
		log.Fatal("REDIS_ADDR is required outside dev mode")
	}

	hasher := hashing.NewBcrypt(0)
	tokens := token.NewHSProvider(cfg.JWTSecret, "khadamat", sessionTTL)

	catalog := service.NewCatalogService(repos.Services, cfg.Currency, log)
	if err := catalog.Seed(context.Background()); err != nil {
		log.Fatal("failed to seed service catalog", zap.Error(err))
	}

	auth := service.NewAuthService(repos.Users, hasher, tokens, sessionStore, log)
	orders := service.NewOrderService(repos.Orders, repos.Tracking, repos.Services, log)

	r := router.New(router.Handlers{
		Auth:    handlers.NewAuthHandler(auth, log),
		Profile: handlers.NewProfileHandler(auth, log),
		Catalog: handlers.NewCatalogHandler(catalog, log),
		Orders:  handlers.NewOrderHandler(orders, cfg.Currency, log),
	}, tokens, sessionStore, cfg.DevMode, log)

	log.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
