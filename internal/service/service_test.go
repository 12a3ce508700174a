package service

import (
	"context"
	"testing"
	"time"

	"github.com/IbuoCloud/backensena/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with foreign keys enforced,
// so cascade behavior matches the MySQL deployment.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestTokens(t *testing.T) *TokenService {
	t.Helper()
	tokens, err := NewTokenService("test-secret", time.Hour, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return tokens
}

func registerUser(t *testing.T, auth *AuthService, username, email, role string) *model.User {
	t.Helper()
	u, err := auth.Register(context.Background(), model.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "secret",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return u
}
