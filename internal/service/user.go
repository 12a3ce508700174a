package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IbuoCloud/backensena/internal/model"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, id int, upd model.UserUpdate) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := map[string]any{}
	if upd.Username != nil {
		changes["username"] = *upd.Username
	}
	if upd.Email != nil {
		changes["email"] = *upd.Email
	}
	if upd.Role != nil {
		changes["role"] = *upd.Role
	}
	if len(changes) == 0 {
		return u, nil
	}
	if err := s.db.WithContext(ctx).Model(u).Updates(changes).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("username or email: %w", ErrConflict)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// Delete removes a user; the datastore cascades to the user's tasks and
// detaches their API keys.
func (s *UserService) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
