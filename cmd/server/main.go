package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/IbuoCloud/backensena/internal/config"
	applog "github.com/IbuoCloud/backensena/internal/logger"
	"github.com/IbuoCloud/backensena/internal/model"
	"github.com/IbuoCloud/backensena/internal/routes"
	"github.com/IbuoCloud/backensena/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	// Idempotent provisioning; safe to rerun on every start.
	if err := db.AutoMigrate(model.All()...); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	tokens, err := service.NewTokenService(cfg.JWT.Secret, cfg.TokenTTL(), cfg.JWT.BcryptCost)
	if err != nil {
		slog.Error("token service init failed", "err", err)
		os.Exit(1)
	}

	r := gin.Default()
	routes.Setup(r, db, tokens)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
