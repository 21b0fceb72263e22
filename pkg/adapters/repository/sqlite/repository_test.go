package sqlite

import (
	"context"
	"testing"
)

func TestStateRoundTrip(t *testing.T) {
	repo, err := NewStateRepository("file:statetest?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("init state db: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	if v, err := repo.Get(ctx, "access_token"); err != nil || v != "" {
		t.Fatalf("Get on empty store = (%q, %v), want empty", v, err)
	}

	if err := repo.Set(ctx, "access_token", "tok-1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := repo.Get(ctx, "access_token"); v != "tok-1" {
		t.Errorf("Get = %q, want tok-1", v)
	}

	// Upsert overwrites in place.
	if err := repo.Set(ctx, "access_token", "tok-2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _ := repo.Get(ctx, "access_token"); v != "tok-2" {
		t.Errorf("Get after overwrite = %q, want tok-2", v)
	}

	if err := repo.Delete(ctx, "access_token"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if v, _ := repo.Get(ctx, "access_token"); v != "" {
		t.Errorf("Get after delete = %q, want empty", v)
	}
}
