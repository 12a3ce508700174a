package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/IbuoCloud/backensena/internal/model"
)

func TestAPIKeyCreateGeneratesSecret(t *testing.T) {
	keys := NewAPIKeyService(newTestDB(t))
	ctx := context.Background()

	k1, err := keys.Create(ctx, model.APIKeyCreate{Name: "ci"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	k2, err := keys.Create(ctx, model.APIKeyCreate{Name: "deploy"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, k := range []*model.APIKey{k1, k2} {
		if !strings.HasPrefix(k.Key, "tm_") {
			t.Errorf("key %q missing prefix", k.Key)
		}
		if len(k.Key) < 40 {
			t.Errorf("key %q too short", k.Key)
		}
	}
	if k1.Key == k2.Key {
		t.Error("generated keys collide")
	}
}

func TestAPIKeyValidate(t *testing.T) {
	keys := NewAPIKeyService(newTestDB(t))
	ctx := context.Background()

	k, err := keys.Create(ctx, model.APIKeyCreate{Name: "ci"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	valid, err := keys.Validate(ctx, k.Key)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !valid {
		t.Error("existing key reported invalid")
	}

	valid, err = keys.Validate(ctx, "tm_nonexistent")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if valid {
		t.Error("unknown key reported valid")
	}

	// Deletion revokes: validity is existence.
	if err := keys.Delete(ctx, k.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	valid, err = keys.Validate(ctx, k.Key)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if valid {
		t.Error("deleted key reported valid")
	}
	if err := keys.Delete(ctx, k.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}
