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

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	coreauth "go-shop-api/internal/core/auth"
	"go-shop-api/internal/core/cache"
	"go-shop-api/internal/core/config"
	"go-shop-api/internal/core/database"
	"go-shop-api/internal/core/logger"
	"go-shop-api/internal/core/server"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/repo"
	"go-shop-api/internal/service"
	"go-shop-api/internal/transport/http/handler"
	"go-shop-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 关系库（用户/订单）
	db := mustOpenDB(cfg, log)
	log.Info("sql database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Order{}, &domain.OrderItem{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 文档库（商品/购物车）
	mdb, mcleanup, err := database.NewMongo(context.Background(), database.MongoOpts{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnTimeoutSec: cfg.Mongo.ConnTimeoutSec,
	})
	if err != nil {
		log.Fatal("mongo open", zap.Error(err))
	}
	defer mcleanup()
	log.Info("mongo database connected", zap.String("db", cfg.Mongo.Database))

	// 商品详情缓存（可选）
	var c *cache.Cache
	if cfg.Redis.Enable {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// JWT：密钥/TTL 从配置注入，不走全局
	jwter := &coreauth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	userRepo := repo.NewUserRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(mdb)
	cartRepo := repo.NewCartRepo(mdb)

	cacheTTL := time.Duration(cfg.Redis.ProductTTLSec) * time.Second
	h := router.Handlers{
		Auth:    handler.NewAuthHandler(service.NewAuthService(userRepo, jwter), log),
		Cart:    handler.NewCartHandler(service.NewCartService(cartRepo, productRepo), log),
		Product: handler.NewProductHandler(service.NewProductService(productRepo, c, cacheTTL), log),
		Order:   handler.NewOrderHandler(service.NewOrderService(orderRepo, cartRepo, productRepo, c), log),
	}

	r := router.New(log, jwter, h)

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
	log.Info("shop api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("shop api start FAILED", zap.Error(err))
		}
	}()
	log.Info("shop api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("shop api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
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
