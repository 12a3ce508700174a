package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IbuoCloud/backensena/internal/model"

	"gorm.io/gorm"
)

// TeamService owns teams and team members.
type TeamService struct{ db *gorm.DB }

func NewTeamService(db *gorm.DB) *TeamService { return &TeamService{db: db} }

func (s *TeamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := s.db.WithContext(ctx).Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id int) (*model.Team, error) {
	var t model.Team
	err := s.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query team: %w", err)
	}
	return &t, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, req model.TeamCreate) (*model.Team, error) {
	t := model.Team{Name: req.Name, Description: req.Description, AvatarURL: req.AvatarURL}
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("team name: %w", ErrConflict)
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}
	return &t, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id int, upd model.TeamUpdate) (*model.Team, error) {
	t, err := s.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := map[string]any{}
	if upd.Name != nil {
		changes["name"] = *upd.Name
	}
	if upd.Description != nil {
		changes["description"] = *upd.Description
	}
	if upd.AvatarURL != nil {
		changes["avatar_url"] = *upd.AvatarURL
	}
	if len(changes) == 0 {
		return t, nil
	}
	if err := s.db.WithContext(ctx).Model(t).Updates(changes).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("team name: %w", ErrConflict)
		}
		return nil, fmt.Errorf("update team: %w", err)
	}
	return t, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Team{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete team: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TeamService) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	if err := s.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	return members, nil
}

func (s *TeamService) GetMember(ctx context.Context, id int) (*model.TeamMember, error) {
	var m model.TeamMember
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query team member: %w", err)
	}
	return &m, nil
}

func (s *TeamService) CreateMember(ctx context.Context, req model.TeamMemberCreate) (*model.TeamMember, error) {
	m := model.TeamMember{
		Name:      req.Name,
		Role:      req.Role,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		TeamID:    req.TeamID,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("member email: %w", ErrConflict)
		}
		return nil, fmt.Errorf("insert team member: %w", err)
	}
	return &m, nil
}

func (s *TeamService) UpdateMember(ctx context.Context, id int, upd model.TeamMemberUpdate) (*model.TeamMember, error) {
	m, err := s.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := map[string]any{}
	if upd.Name != nil {
		changes["name"] = *upd.Name
	}
	if upd.Role != nil {
		changes["role"] = *upd.Role
	}
	if upd.Email != nil {
		changes["email"] = *upd.Email
	}
	if upd.AvatarURL != nil {
		changes["avatar_url"] = *upd.AvatarURL
	}
	if upd.TeamID != nil {
		changes["team_id"] = *upd.TeamID
	}
	if len(changes) == 0 {
		return m, nil
	}
	if err := s.db.WithContext(ctx).Model(m).Updates(changes).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("member email: %w", ErrConflict)
		}
		return nil, fmt.Errorf("update team member: %w", err)
	}
	return m, nil
}

func (s *TeamService) DeleteMember(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.TeamMember{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete team member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
