package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"go-lodging-api/internal/core/auth"
	"go-lodging-api/internal/core/cache"
	"go-lodging-api/internal/core/config"
	"go-lodging-api/internal/core/database"
	"go-lodging-api/internal/core/logger"
	"go-lodging-api/internal/core/server"
	"go-lodging-api/internal/domain"
	"go-lodging-api/internal/house"
	"go-lodging-api/internal/identity"
	"go-lodging-api/internal/mailer"
	"go-lodging-api/internal/repo"
	"go-lodging-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	log, cleanup := newLogger(cfg)
	defer cleanup()
	gin.DefaultWriter = logger.ToWriter(log, zapcore.InfoLevel)

	// 数据库（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.RoleRecord{},
			&domain.Account{},
			&domain.VerificationToken{},
			&domain.House{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 角色表保证 GENERAL/ADMIN 两行存在
	roleStore := repo.NewRoleStore(db)
	if err := roleStore.Seed(context.Background()); err != nil {
		log.Fatal("seed roles failed", zap.Error(err))
	}

	// redis 可选：没配就全部直连 DB
	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}
	var roles domain.RoleStore = roleStore
	if c != nil {
		roles = repo.NewCachedRoleStore(roleStore, c)
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	accounts := repo.NewAccountRepo(db)
	tokens := repo.NewVerificationTokenRepo(db)

	// 注册通知走异步旁路：令牌落库 + 验证邮件
	notifier := identity.NewSignupNotifier(
		tokens,
		mailer.NewZapMailer(cfg.Mail.From, log),
		log,
		cfg.Signup.QueueSize,
	)
	defer notifier.Close()

	deps := router.APIDeps{
		Auth: router.AuthDeps{
			Registration: identity.NewRegistrationService(accounts, roles, cfg.Signup.BcryptCost),
			Verification: identity.NewVerificationService(tokens, accounts),
			Auth:         identity.NewAuthenticator(accounts),
			Notifier:     notifier,
			Accounts:     accounts,
			JWTer:        jwter,
		},
		Houses: house.NewService(repo.NewHouseRepo(db), c),
	}

	r := router.NewAPIEngine(log, router.APIGate(), deps)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("member api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("member api start FAILED", zap.Error(err))
		}
	}()
	log.Info("member api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("member api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File != "" {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON,
			cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
