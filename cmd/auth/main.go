package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	myPostgresRepo "github.com/pagepal-app/pagepal/auth-service/internal/adapters/db/postgres"
	memoryStore "github.com/pagepal-app/pagepal/auth-service/internal/adapters/token/memory"
	redisStore "github.com/pagepal-app/pagepal/auth-service/internal/adapters/token/redis"
	myHTTP "github.com/pagepal-app/pagepal/auth-service/internal/adapters/transport/http"
	"github.com/pagepal-app/pagepal/auth-service/internal/app/auth/hash"
	appsvc "github.com/pagepal-app/pagepal/auth-service/internal/app/auth/service"
	"github.com/pagepal-app/pagepal/auth-service/internal/app/auth/token"
	"github.com/pagepal-app/pagepal/auth-service/internal/domain/auth/repo"
	"github.com/pagepal-app/pagepal/auth-service/internal/infra/config"
	lg "github.com/pagepal-app/pagepal/auth-service/internal/infra/log"
	"github.com/pagepal-app/pagepal/auth-service/internal/infra/migrate"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tokenStore repo.TokenStore
	switch cfg.TokenBackend {
	case config.BackendRedis:
		redisCli := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisCli.Close()
		tokenStore = redisStore.NewTokenStore(redisCli)
		zapLog.Info("token store: redis", zap.String("addr", cfg.RedisAddress))
	default:
		store := memoryStore.NewTokenStore()
		if cfg.TokenSweepInterval > 0 {
			store.StartSweeper(rootCtx, cfg.TokenSweepInterval)
		}
		tokenStore = store
		zapLog.Info("token store: in-memory (volatile, single instance)")
	}

	validate := validator.New()

	hasher := hash.New(cfg.SecretKey)
	tokens := token.NewManager(tokenStore, cfg.TokenTTL)
	userRepo := myPostgresRepo.NewPostgresUserRepo(db)
	svc := appsvc.New(userRepo, tokens, hasher, validate)

	handler := myHTTP.NewHandler(svc, zapLog)
	router := myHTTP.NewRouter(handler, zapLog, cfg)

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: router}
	g, ctx := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("addr", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			zapLog.Info("shutdown signal received")
		case <-ctx.Done():
		}
		cancel()

		ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		return srv.Shutdown(ctxShutdown)
	})

	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
