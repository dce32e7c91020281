package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/UdayPS-4o/tradewithus/internal/config"
	"github.com/UdayPS-4o/tradewithus/internal/database"
	"github.com/UdayPS-4o/tradewithus/internal/handlers"
	"github.com/UdayPS-4o/tradewithus/internal/metrics"
	"github.com/UdayPS-4o/tradewithus/internal/middleware"
	"github.com/UdayPS-4o/tradewithus/internal/repository"
	"github.com/UdayPS-4o/tradewithus/internal/routes"
	"github.com/UdayPS-4o/tradewithus/internal/server"
	"github.com/UdayPS-4o/tradewithus/internal/services"
	"github.com/UdayPS-4o/tradewithus/internal/utils"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.App.Env)
	defer logger.Sync()

	db, mongoClient, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("mongodb connected", zap.String("database", cfg.Mongo.Database))

	// Redis is optional; without it the auth rate limiter is skipped.
	var authLimiter *middleware.RateLimiter
	if cfg.Redis.Addr != "" {
		rdb, err := database.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		authLimiter = middleware.NewRateLimiter(rdb, "auth_rl", cfg.Security.AuthRateLimit, cfg.Security.AuthRateLimitWindow.Std())
	}

	userRepo := repository.NewMongoUserRepo(db, cfg.Mongo.UserCollection)
	profileRepo := repository.NewMongoProfileRepo(db, cfg.Mongo.ProfileCollection)
	productRepo := repository.NewMongoProductRepo(db, cfg.Mongo.ProductCollection)

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	userSvc := services.NewUserService(userRepo, logger, cfg.Security.PasswordHashCost)
	profileSvc := services.NewProfileService(profileRepo)
	productSvc := services.NewProductService(productRepo)
	feedSvc := services.NewFeedService(productRepo, profileRepo, logger)

	app := server.New(cfg, logger)
	routes.Register(app, routes.Handlers{
		Auth:    handlers.NewAuthHandler(userSvc, jwtManager, logger),
		Profile: handlers.NewProfileHandler(profileSvc, logger),
		Product: handlers.NewProductHandler(productSvc, logger),
		Feed:    handlers.NewFeedHandler(feedSvc, logger),
	}, middleware.JWTAuth(jwtManager, logger), authLimiter)

	if cfg.App.MetricsPort != 0 {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.App.MetricsPort)
			logger.Info("metrics listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, metrics.Handler()); err != nil {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Info("starting server", zap.Int("port", cfg.App.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	if err := app.Shutdown(); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Error("mongodb disconnect error", zap.Error(err))
	}
}
