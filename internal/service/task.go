package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IbuoCloud/backensena/internal/model"

	"gorm.io/gorm"
)

type TaskService struct{ db *gorm.DB }

func NewTaskService(db *gorm.DB) *TaskService { return &TaskService{db: db} }

// List returns all tasks, or only one user's when userID is non-nil.
func (s *TaskService) List(ctx context.Context, userID *int) ([]model.Task, error) {
	q := s.db.WithContext(ctx)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var tasks []model.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id int) (*model.Task, error) {
	var t model.Task
	err := s.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}
	return &t, nil
}

func (s *TaskService) Create(ctx context.Context, req model.TaskCreate) (*model.Task, error) {
	status := req.Status
	if status == "" {
		status = "pending"
	}
	t := model.Task{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
	}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &t, nil
}

// Update mutates only the supplied fields; absent fields stay untouched.
func (s *TaskService) Update(ctx context.Context, id int, upd model.TaskUpdate) (*model.Task, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := map[string]any{}
	if upd.Title != nil {
		changes["title"] = *upd.Title
	}
	if upd.Description != nil {
		changes["description"] = *upd.Description
	}
	if upd.Status != nil {
		changes["status"] = *upd.Status
	}
	if upd.DueDate != nil {
		changes["due_date"] = *upd.DueDate
	}
	if len(changes) == 0 {
		return t, nil
	}
	if err := s.db.WithContext(ctx).Model(t).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
