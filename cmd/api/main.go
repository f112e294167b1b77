package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go-manpower/internal/app"
	"go-manpower/internal/bootstrap"
	"go-manpower/internal/config"
	"go-manpower/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	cfg := config.FromEnv()
	r := bootstrap.NewRouter(cfg.CORSAllowedOrigins)

	container, err := app.BuildApp(r, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = bootstrap.RunHTTPServer(ctx, r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(logger),
		logger,
	)
	if err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
