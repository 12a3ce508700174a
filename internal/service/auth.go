package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IbuoCloud/backensena/internal/model"

	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	tokens *TokenService
}

func NewAuthService(db *gorm.DB, tokens *TokenService) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register persists a new user with a bcrypt-derived hash. The plaintext
// password is never stored. Duplicate username or email is a conflict.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", req.Username, req.Email).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("username or email: %w", ErrConflict)
	}

	hash, err := s.tokens.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = "user"
	}

	u := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("username or email: %w", ErrConflict)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

// Authenticate issues a bearer token for valid credentials. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	u, err := s.FindByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !s.tokens.VerifyPassword(password, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.Username, u.Role)
}

func (s *AuthService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}
