package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IbuoCloud/backensena/internal/model"

	"gorm.io/gorm"
)

type MilestoneService struct{ db *gorm.DB }

func NewMilestoneService(db *gorm.DB) *MilestoneService { return &MilestoneService{db: db} }

func (s *MilestoneService) List(ctx context.Context, projectID *int) ([]model.Milestone, error) {
	q := s.db.WithContext(ctx)
	if projectID != nil {
		q = q.Where("project_id = ?", *projectID)
	}
	var milestones []model.Milestone
	if err := q.Find(&milestones).Error; err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	return milestones, nil
}

func (s *MilestoneService) Get(ctx context.Context, id int) (*model.Milestone, error) {
	var m model.Milestone
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query milestone: %w", err)
	}
	return &m, nil
}

func (s *MilestoneService) Create(ctx context.Context, req model.MilestoneCreate) (*model.Milestone, error) {
	m := model.Milestone{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Date:      req.Date,
		Completed: req.Completed,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert milestone: %w", err)
	}
	return &m, nil
}

func (s *MilestoneService) Update(ctx context.Context, id int, upd model.MilestoneUpdate) (*model.Milestone, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := map[string]any{}
	if upd.Title != nil {
		changes["title"] = *upd.Title
	}
	if upd.Date != nil {
		changes["date"] = *upd.Date
	}
	if upd.Completed != nil {
		changes["completed"] = *upd.Completed
	}
	if len(changes) == 0 {
		return m, nil
	}
	if err := s.db.WithContext(ctx).Model(m).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("update milestone: %w", err)
	}
	return m, nil
}

func (s *MilestoneService) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Milestone{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete milestone: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
