package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IbuoCloud/backensena/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectService struct{ db *gorm.DB }

func NewProjectService(db *gorm.DB) *ProjectService { return &ProjectService{db: db} }

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id int) (*model.Project, error) {
	var p model.Project
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query project: %w", err)
	}
	return &p, nil
}

func (s *ProjectService) Create(ctx context.Context, req model.ProjectCreate) (*model.Project, error) {
	status := req.Status
	if status == "" {
		status = "active"
	}
	p := model.Project{
		Name:        req.Name,
		Description: req.Description,
		ClientName:  req.ClientName,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
		Progress:    req.Progress,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &p, nil
}

func (s *ProjectService) Update(ctx context.Context, id int, upd model.ProjectUpdate) (*model.Project, error) {
	p, err := s.Get(ctx, id)
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
	if upd.ClientName != nil {
		changes["client_name"] = *upd.ClientName
	}
	if upd.StartDate != nil {
		changes["start_date"] = *upd.StartDate
	}
	if upd.EndDate != nil {
		changes["end_date"] = *upd.EndDate
	}
	if upd.Status != nil {
		changes["status"] = *upd.Status
	}
	if upd.Progress != nil {
		changes["progress"] = *upd.Progress
	}
	if len(changes) == 0 {
		return p, nil
	}
	if err := s.db.WithContext(ctx).Model(p).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

// Delete removes a project; milestones and team associations cascade away in
// the datastore.
func (s *ProjectService) Delete(ctx context.Context, id int) error {
	res := s.db.WithContext(ctx).Delete(&model.Project{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Team returns the members assigned to a project.
func (s *ProjectService) Team(ctx context.Context, projectID int) ([]model.TeamMember, error) {
	var members []model.TeamMember
	err := s.db.WithContext(ctx).
		Joins("JOIN project_team pt ON pt.team_member_id = team_members.id").
		Where("pt.project_id = ?", projectID).
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("query project team: %w", err)
	}
	return members, nil
}

// AssignTeam bulk-inserts project/member pairs. Re-adding an existing pair is
// a no-op.
func (s *ProjectService) AssignTeam(ctx context.Context, projectID int, memberIDs []int) error {
	if _, err := s.Get(ctx, projectID); err != nil {
		return err
	}
	if len(memberIDs) == 0 {
		return nil
	}
	rows := make([]model.ProjectTeam, 0, len(memberIDs))
	for _, mid := range memberIDs {
		rows = append(rows, model.ProjectTeam{ProjectID: projectID, TeamMemberID: mid})
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("assign team: %w", err)
	}
	return nil
}

// RemoveTeamMember deletes a single association row.
func (s *ProjectService) RemoveTeamMember(ctx context.Context, projectID, memberID int) error {
	res := s.db.WithContext(ctx).
		Where("project_id = ? AND team_member_id = ?", projectID, memberID).
		Delete(&model.ProjectTeam{})
	if res.Error != nil {
		return fmt.Errorf("remove team member: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
