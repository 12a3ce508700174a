package service

import (
	"context"
	"errors"
	"testing"

	"github.com/IbuoCloud/backensena/internal/model"
)

func TestTeamNameUnique(t *testing.T) {
	teams := NewTeamService(newTestDB(t))
	ctx := context.Background()

	if _, err := teams.CreateTeam(ctx, model.TeamCreate{Name: "platform"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := teams.CreateTeam(ctx, model.TeamCreate{Name: "platform"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate team err = %v, want ErrConflict", err)
	}
}

func TestMemberEmailUnique(t *testing.T) {
	teams := NewTeamService(newTestDB(t))
	ctx := context.Background()

	createMember(t, teams, "alice", "alice@example.com")
	_, err := teams.CreateMember(ctx, model.TeamMemberCreate{
		Name: "alice again", Email: "alice@example.com",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email err = %v, want ErrConflict", err)
	}
}

func TestMemberPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, model.TeamCreate{Name: "platform"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	m := createMember(t, teams, "alice", "alice@example.com")

	got, err := teams.UpdateMember(ctx, m.ID, model.TeamMemberUpdate{TeamID: &team.ID})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.TeamID == nil || *got.TeamID != team.ID {
		t.Errorf("team_id = %v, want %d", got.TeamID, team.ID)
	}
	if got.Name != "alice" || got.Email != "alice@example.com" || got.Role != "developer" {
		t.Error("untouched fields mutated")
	}
}

func TestTeamDeleteDetachesMembers(t *testing.T) {
	db := newTestDB(t)
	teams := NewTeamService(db)
	ctx := context.Background()

	team, err := teams.CreateTeam(ctx, model.TeamCreate{Name: "platform"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	m := createMember(t, teams, "alice", "alice@example.com")
	if _, err := teams.UpdateMember(ctx, m.ID, model.TeamMemberUpdate{TeamID: &team.ID}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	if err := teams.DeleteTeam(ctx, team.ID); err != nil {
		t.Fatalf("delete team: %v", err)
	}

	// The member survives with its team reference cleared.
	got, err := teams.GetMember(ctx, m.ID)
	if err != nil {
		t.Fatalf("get member: %v", err)
	}
	if got.TeamID != nil {
		t.Errorf("team_id = %v, want nil after team deletion", got.TeamID)
	}
}
