package redis

import (
	"context"
	"testing"
	"time"

	"codescore-service/internal/domain"
	miniredis "github.com/alicebob/miniredis/v2"
)

func TestProfileStoreRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewProfileStore(newClient(mr), time.Hour)

	if _, ok, err := store.Load(ctx, "p1"); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}

	saved := domain.Profile{
		Coins:           40,
		MonstersOwned:   []string{"pep_snek", "lint_lizard"},
		SelectedMonster: "lint_lizard",
	}
	if err := store.Save(ctx, "p1", saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.Load(ctx, "p1")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.Coins != 40 || got.SelectedMonster != "lint_lizard" || len(got.MonstersOwned) != 2 {
		t.Fatalf("unexpected profile %+v", got)
	}
}

func TestProfileStoreExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewProfileStore(newClient(mr), time.Minute)

	if err := store.Save(ctx, "p1", domain.Profile{Coins: 5}); err != nil {
		t.Fatalf("save: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, ok, err := store.Load(ctx, "p1"); err != nil || ok {
		t.Fatalf("expected expired profile to miss, ok=%v err=%v", ok, err)
	}
}
