package service

import (
	"context"
	"errors"
	"testing"

	"github.com/IbuoCloud/backensena/internal/model"
)

func TestRegister(t *testing.T) {
	auth := NewAuthService(newTestDB(t), newTestTokens(t))
	ctx := context.Background()

	u, err := auth.Register(ctx, model.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "p1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID <= 0 {
		t.Errorf("id = %d, want positive", u.ID)
	}
	if u.Role != "user" {
		t.Errorf("role = %q, want default user", u.Role)
	}
	if u.PasswordHash == "p1" || u.PasswordHash == "" {
		t.Error("password stored without hashing")
	}

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"duplicate username", "alice", "other@example.com"},
		{"duplicate email", "bob", "alice@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(ctx, model.RegisterRequest{
				Username: tt.username, Email: tt.email, Password: "p2",
			})
			if !errors.Is(err, ErrConflict) {
				t.Fatalf("err = %v, want ErrConflict", err)
			}
		})
	}

	// Distinct identifiers still succeed.
	u2, err := auth.Register(ctx, model.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "p2",
	})
	if err != nil {
		t.Fatalf("register bob: %v", err)
	}
	if u2.ID <= u.ID {
		t.Errorf("id %d not assigned after %d", u2.ID, u.ID)
	}
}

func TestAuthenticate(t *testing.T) {
	tokens := newTestTokens(t)
	auth := NewAuthService(newTestDB(t), tokens)
	ctx := context.Background()
	registerUser(t, auth, "alice", "alice@example.com", "admin")

	token, err := auth.Authenticate(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Subject != "alice" || claims.Role != "admin" {
		t.Errorf("claims = %q/%q, want alice/admin", claims.Subject, claims.Role)
	}
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	auth := NewAuthService(newTestDB(t), newTestTokens(t))
	ctx := context.Background()
	registerUser(t, auth, "alice", "alice@example.com", "")

	_, wrongPass := auth.Authenticate(ctx, "alice", "wrong")
	_, noUser := auth.Authenticate(ctx, "nosuchuser", "x")

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v", wrongPass)
	}
	if !errors.Is(noUser, ErrInvalidCredentials) {
		t.Fatalf("unknown user err = %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Errorf("failure causes distinguishable: %q vs %q", wrongPass, noUser)
	}
}

func TestFindByUsernameMissing(t *testing.T) {
	auth := NewAuthService(newTestDB(t), newTestTokens(t))
	if _, err := auth.FindByUsername(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
