package domain

import (
	"errors"
	"testing"
)

func validCatalog() Catalog {
	return Catalog{
		Questions: []Question{
			{ID: "q1", Prompt: "p", Options: []string{"a", "b"}, AnswerIdx: 0},
			{ID: "q2", Prompt: "p", Options: []string{"a", "b", "c"}, AnswerIdx: 2},
		},
		Monsters: []Monster{
			{ID: "m1", Name: "One", Price: 10},
		},
	}
}

func TestCatalogValidate(t *testing.T) {
	if err := validCatalog().Validate(); err != nil {
		t.Fatalf("valid catalog rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{"empty bank", func(c *Catalog) { c.Questions = nil }},
		{"empty question id", func(c *Catalog) { c.Questions[0].ID = "" }},
		{"duplicate question id", func(c *Catalog) { c.Questions[1].ID = "q1" }},
		{"single option", func(c *Catalog) { c.Questions[0].Options = []string{"a"} }},
		{"answer out of range", func(c *Catalog) { c.Questions[0].AnswerIdx = 5 }},
		{"negative answer", func(c *Catalog) { c.Questions[0].AnswerIdx = -1 }},
		{"empty monster id", func(c *Catalog) { c.Monsters[0].ID = "" }},
		{"duplicate monster id", func(c *Catalog) {
			c.Monsters = append(c.Monsters, Monster{ID: "m1", Price: 1})
		}},
		{"negative price", func(c *Catalog) { c.Monsters[0].Price = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			catalog := validCatalog()
			tc.mutate(&catalog)
			if err := catalog.Validate(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	catalog := validCatalog()

	if _, err := catalog.QuestionByID("q2"); err != nil {
		t.Fatalf("known question: %v", err)
	}
	if _, err := catalog.QuestionByID("nope"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if _, err := catalog.MonsterByID("m1"); err != nil {
		t.Fatalf("known monster: %v", err)
	}
	if _, err := catalog.MonsterByID("nope"); !errors.Is(err, ErrMonsterNotFound) {
		t.Fatalf("expected ErrMonsterNotFound, got %v", err)
	}
}

func TestPowerUpCost(t *testing.T) {
	tests := []struct {
		powerUp PowerUp
		want    int
	}{
		{PowerUpHint, HintCost},
		{PowerUpSkip, SkipCost},
		{PowerUpFiftyFifty, FiftyFiftyCost},
	}
	for _, tc := range tests {
		got, err := tc.powerUp.Cost()
		if err != nil || got != tc.want {
			t.Errorf("%s: got %d err=%v, want %d", tc.powerUp, got, err, tc.want)
		}
	}
	if _, err := PowerUp("teleport").Cost(); !errors.Is(err, ErrUnknownPowerUp) {
		t.Fatalf("expected ErrUnknownPowerUp, got %v", err)
	}
}

func TestProfileOwns(t *testing.T) {
	p := Profile{MonstersOwned: []string{"m1", "m2"}}
	if !p.Owns("m1") || p.Owns("m3") {
		t.Fatalf("ownership check wrong: %+v", p)
	}
}
