// Seed bootstraps a database with an initial admin account so /auth/admin
// and API key management are reachable on a fresh install.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/IbuoCloud/backensena/internal/config"
	applog "github.com/IbuoCloud/backensena/internal/logger"
	"github.com/IbuoCloud/backensena/internal/model"
	"github.com/IbuoCloud/backensena/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "admin@localhost", "admin email")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		slog.Error("missing -password")
		os.Exit(1)
	}

	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	tokens, err := service.NewTokenService(cfg.JWT.Secret, cfg.TokenTTL(), cfg.JWT.BcryptCost)
	if err != nil {
		slog.Error("token service init failed", "err", err)
		os.Exit(1)
	}

	auth := service.NewAuthService(db, tokens)
	u, err := auth.Register(context.Background(), model.RegisterRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
		Role:     "admin",
	})
	if err != nil {
		slog.Error("seed admin failed", "err", err)
		os.Exit(1)
	}
	slog.Info("admin created", "uid", u.ID, "username", u.Username)
}
