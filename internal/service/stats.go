package service

import (
	"context"
	"fmt"

	"github.com/IbuoCloud/backensena/internal/model"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// Overview computes the four count metrics from real rows. TimeSpent and
// Productivity stay at zero; nothing tracks them yet.
func (s *StatsService) Overview(ctx context.Context) (*model.Stats, error) {
	var st model.Stats
	counts := []struct {
		entity any
		status string
		dst    *int64
	}{
		{&model.Project{}, "active", &st.ActiveProjects},
		{&model.Project{}, "completed", &st.CompletedProjects},
		{&model.Task{}, "pending", &st.PendingTasks},
		{&model.Task{}, "completed", &st.CompletedTasks},
	}
	for _, c := range counts {
		err := s.db.WithContext(ctx).Model(c.entity).
			Where("status = ?", c.status).
			Count(c.dst).Error
		if err != nil {
			return nil, fmt.Errorf("count stats: %w", err)
		}
	}
	return &st, nil
}
