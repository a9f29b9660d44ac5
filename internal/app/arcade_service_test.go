package app_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"codescore-service/internal/app"
	"codescore-service/internal/domain"
	"codescore-service/internal/infra/memory"
)

func serviceBank() []domain.Question {
	ids := []string{"q1", "q2", "q3", "q4", "q5"}
	bank := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		bank = append(bank, domain.Question{
			ID:          id,
			Prompt:      "pick yes",
			Options:     []string{"no1", "yes", "no2", "no3"},
			AnswerIdx:   1,
			Explanation: "yes was right",
			Topic:       "basics",
		})
	}
	return bank
}

func newTestService() (*app.ArcadeService, *memory.ProfileStore) {
	catalog := domain.Catalog{
		Questions: serviceBank(),
		Monsters: []domain.Monster{
			{ID: "pep_snek", Name: "Pep Snek", Price: 20},
			{ID: "lint_lizard", Name: "Lint Lizard", Price: 35},
		},
	}
	store := memory.NewSessionStoreWithFactory(func(playerID string) *app.Session {
		return app.NewSessionWithRand(playerID, rand.New(rand.NewSource(7)))
	})
	repo := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(catalog), time.Minute)
	profiles := memory.NewProfileStore()
	return app.NewArcadeService(store, repo, profiles), profiles
}

// answerVisible finds the visible index of the "yes" option and submits it
// (or a wrong one when correct is false).
func answerVisible(t *testing.T, service *app.ArcadeService, snap domain.GameSnapshot, correct bool) domain.GameSnapshot {
	t.Helper()
	if snap.Question == nil {
		t.Fatal("snapshot has no question")
	}
	idx := -1
	for i, opt := range snap.Question.Options {
		if (opt == "yes") == correct {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatalf("no suitable option in %v", snap.Question.Options)
	}
	out, err := service.SubmitAnswer(context.Background(), "p1", idx)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return out
}

func TestFullGameThroughService(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	snap, err := service.StartGame(ctx, "p1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.Phase != domain.PhaseInProgress || snap.TotalQuestions != 3 {
		t.Fatalf("unexpected start snapshot: %+v", snap)
	}
	if snap.Question == nil || snap.Question.Number != 1 {
		t.Fatalf("expected question 1, got %+v", snap.Question)
	}

	for i := 0; i < 3; i++ {
		snap = answerVisible(t, service, snap, true)
		if snap.LastOutcome != domain.OutcomeCorrect {
			t.Fatalf("question %d: expected correct, got %s", i, snap.LastOutcome)
		}
		snap, err = service.Advance(ctx, "p1")
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if snap.Phase != domain.PhaseFinished {
		t.Fatalf("expected finished, got %s", snap.Phase)
	}
	if snap.Score != 3 || snap.Coins != 18 {
		t.Fatalf("expected score 3 and 18 coins, got %d/%d", snap.Score, snap.Coins)
	}
	if snap.Summary == "" {
		t.Fatal("expected summary on finished snapshot")
	}
}

func TestSubmitBeforeStart(t *testing.T) {
	service, _ := newTestService()
	_, err := service.SubmitAnswer(context.Background(), "p1", 0)
	if !errors.Is(err, domain.ErrGameNotStarted) {
		t.Fatalf("expected ErrGameNotStarted, got %v", err)
	}
}

func TestInvalidOptionIndex(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	if _, err := service.StartGame(ctx, "p1", 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := service.SubmitAnswer(ctx, "p1", 17); !errors.Is(err, domain.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if _, err := service.SubmitAnswer(ctx, "p1", -1); !errors.Is(err, domain.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestHintThroughService(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	snap, err := service.StartGame(ctx, "p1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	// Earn some coins first.
	snap = answerVisible(t, service, snap, true)
	if _, err := service.Advance(ctx, "p1"); err != nil {
		t.Fatalf("advance: %v", err)
	}

	snap, err = service.BuyPowerUp(ctx, "p1", domain.PowerUpHint)
	if err != nil {
		t.Fatalf("hint: %v", err)
	}
	if !snap.HintShown || snap.Question.Topic != "basics" {
		t.Fatalf("hint not reflected: %+v", snap.Question)
	}
	if snap.Coins != 5-domain.HintCost {
		t.Fatalf("expected %d coins, got %d", 5-domain.HintCost, snap.Coins)
	}
}

func TestUnknownPowerUp(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()
	if _, err := service.StartGame(ctx, "p1", 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := service.BuyPowerUp(ctx, "p1", domain.PowerUp("teleport")); !errors.Is(err, domain.ErrUnknownPowerUp) {
		t.Fatalf("expected ErrUnknownPowerUp, got %v", err)
	}
}

func TestMonsterPurchaseFlow(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	// Earn 25 coins: a full 3-question streak is 5+6+7, then one more game.
	snap, err := service.StartGame(ctx, "p1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 3; i++ {
		snap = answerVisible(t, service, snap, true)
		if snap, err = service.Advance(ctx, "p1"); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	snap, err = service.StartGame(ctx, "p1", 3)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	snap = answerVisible(t, service, snap, true)
	if snap.Coins != 23 {
		t.Fatalf("expected 23 coins, got %d", snap.Coins)
	}

	if _, err := service.BuyMonster(ctx, "p1", "lint_lizard"); !errors.Is(err, domain.ErrInsufficientCoins) {
		t.Fatalf("expected ErrInsufficientCoins, got %v", err)
	}
	snap, err = service.BuyMonster(ctx, "p1", "pep_snek")
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if snap.Coins != 3 {
		t.Fatalf("expected 3 coins after purchase, got %d", snap.Coins)
	}
	if snap.Profile.SelectedMonster != "pep_snek" || !snap.Profile.Owns("pep_snek") {
		t.Fatalf("purchase not reflected in profile: %+v", snap.Profile)
	}

	if _, err := service.BuyMonster(ctx, "p1", "ghost"); !errors.Is(err, domain.ErrMonsterNotFound) {
		t.Fatalf("expected ErrMonsterNotFound, got %v", err)
	}
	if _, err := service.SelectMonster(ctx, "p1", "lint_lizard"); !errors.Is(err, domain.ErrMonsterNotOwned) {
		t.Fatalf("expected ErrMonsterNotOwned, got %v", err)
	}
}

func TestLeavePersistsProfile(t *testing.T) {
	ctx := context.Background()
	service, profiles := newTestService()

	snap, err := service.StartGame(ctx, "p1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	answerVisible(t, service, snap, true)
	service.Leave(ctx, "p1")

	profile, ok, err := profiles.Load(ctx, "p1")
	if err != nil || !ok {
		t.Fatalf("expected stored profile, ok=%v err=%v", ok, err)
	}
	if profile.Coins != 5 {
		t.Fatalf("expected 5 coins persisted, got %d", profile.Coins)
	}

	// A fresh session picks the balance back up; the game itself is gone.
	snap, err = service.Snapshot(ctx, "p1")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Phase != domain.PhaseNotStarted {
		t.Fatalf("expected fresh phase, got %s", snap.Phase)
	}
	if snap.Coins != 5 {
		t.Fatalf("expected 5 coins after rejoin, got %d", snap.Coins)
	}
}

func TestMonstersListing(t *testing.T) {
	service, _ := newTestService()
	monsters, err := service.Monsters(context.Background())
	if err != nil {
		t.Fatalf("monsters: %v", err)
	}
	if len(monsters) != 2 {
		t.Fatalf("expected 2 monsters, got %d", len(monsters))
	}
}
