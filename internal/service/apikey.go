package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/IbuoCloud/backensena/internal/model"

	"gorm.io/gorm"
)

const apiKeyPrefix = "tm_"

type APIKeyService struct{ db *gorm.DB }

func NewAPIKeyService(db *gorm.DB) *APIKeyService { return &APIKeyService{db: db} }

func (s *APIKeyService) List(ctx context.Context) ([]model.APIKey, error) {
	var keys []model.APIKey
	if err := s.db.WithContext(ctx).Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	return keys, nil
}

// Create issues a new key. The secret is generated server-side:
// tm_<base64url(32 random bytes)>.
func (s *APIKeyService) Create(ctx context.Context, req model.APIKeyCreate) (*model.APIKey, error) {
	secret, err := generateKey()
	if err != nil {
		return nil, err
	}
	k := model.APIKey{UserID: req.UserID, Name: req.Name, Key: secret}
	if err := s.db.WithContext(ctx).Create(&k).Error; err != nil {
		return nil, fmt.Errorf("insert api key: %w", err)
	}
	return &k, nil
}

func (s *APIKeyService) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.APIKey{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete api key: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Validate reports whether a key exists. Validity is existence; keys do not
// expire.
func (s *APIKeyService) Validate(ctx context.Context, key string) (bool, error) {
	var k model.APIKey
	err := s.db.WithContext(ctx).Where("api_key = ?", key).First(&k).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query api key: %w", err)
	}
	return true, nil
}

func generateKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	return apiKeyPrefix + base64.RawURLEncoding.EncodeToString(raw), nil
}
