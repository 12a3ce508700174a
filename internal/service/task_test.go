package service

import (
	"context"
	"errors"
	"testing"

	"github.com/IbuoCloud/backensena/internal/model"
)

func strptr(s string) *string { return &s }

func TestTaskCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestTokens(t))
	tasks := NewTaskService(db)
	ctx := context.Background()
	u := registerUser(t, auth, "alice", "alice@example.com", "")

	task, err := tasks.Create(ctx, model.TaskCreate{UserID: u.ID, Title: "write report"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.ID <= 0 {
		t.Errorf("id = %d, want positive", task.ID)
	}
	if task.Status != "pending" {
		t.Errorf("status = %q, want default pending", task.Status)
	}
}

func TestTaskPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestTokens(t))
	tasks := NewTaskService(db)
	ctx := context.Background()
	u := registerUser(t, auth, "alice", "alice@example.com", "")

	task, err := tasks.Create(ctx, model.TaskCreate{
		UserID:      u.ID,
		Title:       "write report",
		Description: "quarterly numbers",
		DueDate:     model.NewDate("2026-09-15"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := tasks.Update(ctx, task.ID, model.TaskUpdate{Status: strptr("completed")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != "completed" {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.Title != "write report" || got.Description != "quarterly numbers" {
		t.Error("untouched fields mutated")
	}
	if got.DueDate.String() != "2026-09-15" {
		t.Errorf("due_date changed: %v", got.DueDate)
	}

	// Re-read to make sure the row, not just the struct, is intact.
	stored, err := tasks.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Title != "write report" || stored.Status != "completed" {
		t.Errorf("stored row = %q/%q", stored.Title, stored.Status)
	}
	if stored.DueDate.String() != "2026-09-15" {
		t.Errorf("stored due_date = %v, want 2026-09-15", stored.DueDate)
	}
}

func TestTaskListFilter(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestTokens(t))
	tasks := NewTaskService(db)
	ctx := context.Background()
	alice := registerUser(t, auth, "alice", "alice@example.com", "")
	bob := registerUser(t, auth, "bob", "bob@example.com", "")

	for _, owner := range []int{alice.ID, alice.ID, bob.ID} {
		if _, err := tasks.Create(ctx, model.TaskCreate{UserID: owner, Title: "t"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := tasks.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}
	mine, err := tasks.List(ctx, &alice.ID)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("alice's tasks = %d, want 2", len(mine))
	}
}

func TestTaskNotFound(t *testing.T) {
	tasks := NewTaskService(newTestDB(t))
	ctx := context.Background()

	if _, err := tasks.Get(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("get err = %v", err)
	}
	if _, err := tasks.Update(ctx, 999, model.TaskUpdate{Title: strptr("x")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update err = %v", err)
	}
	if err := tasks.Delete(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete err = %v", err)
	}
}

func TestUserDeleteCascadesTasks(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, newTestTokens(t))
	users := NewUserService(db)
	tasks := NewTaskService(db)
	ctx := context.Background()
	alice := registerUser(t, auth, "alice", "alice@example.com", "")
	bob := registerUser(t, auth, "bob", "bob@example.com", "")

	for _, owner := range []int{alice.ID, alice.ID, bob.ID} {
		if _, err := tasks.Create(ctx, model.TaskCreate{UserID: owner, Title: "t"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	if err := users.Delete(ctx, alice.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	remaining, err := tasks.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("tasks after cascade = %d, want 1", len(remaining))
	}
	if remaining[0].UserID != bob.ID {
		t.Errorf("surviving task belongs to %d, want %d", remaining[0].UserID, bob.ID)
	}
}
