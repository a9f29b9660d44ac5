package domain

import "fmt"

// Question models a multiple-choice quiz item. Code is an optional snippet
// shown alongside the prompt; Topic doubles as the hint text.
type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Code        string   `json:"code,omitempty"`
	Options     []string `json:"options"`
	AnswerIdx   int      `json:"answerIdx"`
	Explanation string   `json:"explanation"`
	Topic       string   `json:"topic"`
}

// Monster is a purely cosmetic shop item; it never affects gameplay.
type Monster struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Catalog bundles the immutable question bank and monster shop. It is loaded
// once and validated before any session can use it.
type Catalog struct {
	Questions []Question `json:"questions"`
	Monsters  []Monster  `json:"monsters"`
}

// Validate checks the catalog invariants: unique IDs, at least two options
// per question, answer index in bounds, non-negative prices.
func (c Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog: %w", ErrEmptyQuestionBank)
	}
	seen := make(map[string]struct{}, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID == "" {
			return fmt.Errorf("catalog: question with empty id")
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
		if len(q.Options) < 2 {
			return fmt.Errorf("catalog: question %q has %d options, need at least 2", q.ID, len(q.Options))
		}
		if q.AnswerIdx < 0 || q.AnswerIdx >= len(q.Options) {
			return fmt.Errorf("catalog: question %q answer index %d out of range", q.ID, q.AnswerIdx)
		}
	}
	owned := make(map[string]struct{}, len(c.Monsters))
	for _, m := range c.Monsters {
		if m.ID == "" {
			return fmt.Errorf("catalog: monster with empty id")
		}
		if _, dup := owned[m.ID]; dup {
			return fmt.Errorf("catalog: duplicate monster id %q", m.ID)
		}
		owned[m.ID] = struct{}{}
		if m.Price < 0 {
			return fmt.Errorf("catalog: monster %q has negative price", m.ID)
		}
	}
	return nil
}

// QuestionByID looks up a question in the bank.
func (c Catalog) QuestionByID(id string) (Question, error) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, ErrQuestionNotFound
}

// MonsterByID looks up a shop entry.
func (c Catalog) MonsterByID(id string) (Monster, error) {
	for _, m := range c.Monsters {
		if m.ID == id {
			return m, nil
		}
	}
	return Monster{}, ErrMonsterNotFound
}

// Profile is the player-owned state that survives game resets: the single
// coin balance shared by gameplay rewards and shop spending, plus cosmetics.
type Profile struct {
	Coins           int      `json:"coins"`
	MonstersOwned   []string `json:"monstersOwned"`
	SelectedMonster string   `json:"selectedMonster,omitempty"`
}

// Owns reports whether the profile contains the given monster.
func (p Profile) Owns(monsterID string) bool {
	for _, id := range p.MonstersOwned {
		if id == monsterID {
			return true
		}
	}
	return false
}

// Outcome is the tri-state result of the current question.
type Outcome string

const (
	OutcomeNone      Outcome = "none"
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	OutcomeSkipped   Outcome = "skipped"
)

// Phase tracks the game lifecycle.
type Phase string

const (
	PhaseNotStarted Phase = "notStarted"
	PhaseInProgress Phase = "inProgress"
	PhaseFinished   Phase = "finished"
)

// PowerUp identifies a paid modifier.
type PowerUp string

const (
	PowerUpHint       PowerUp = "hint"
	PowerUpSkip       PowerUp = "skip"
	PowerUpFiftyFifty PowerUp = "fiftyFifty"
)

// Power-up prices in coins. Deducted immediately on purchase, never refunded.
const (
	HintCost       = 3
	SkipCost       = 4
	FiftyFiftyCost = 5
)

// Cost returns the coin price of a power-up.
func (p PowerUp) Cost() (int, error) {
	switch p {
	case PowerUpHint:
		return HintCost, nil
	case PowerUpSkip:
		return SkipCost, nil
	case PowerUpFiftyFifty:
		return FiftyFiftyCost, nil
	}
	return 0, ErrUnknownPowerUp
}

// Reward tuning.
const (
	BaseCoinReward = 5
	MaxStreakBonus = 5
)

// Question count bounds per game; requests outside are clamped.
const (
	MinQuestionsPerGame = 3
	MaxQuestionsPerGame = 10
	DefaultNumQuestions = 7
)

// Badge identifiers. Badges are derived, never set directly.
const (
	BadgeApprentice       = "apprentice"
	BadgePro              = "pro"
	BadgeStreakMaster     = "streak_master"
	BadgeNoHintHero       = "no_hint_hero"
	BadgeFiftyFiftyUser   = "fifty_fifty_user"
	BadgeMonsterCollector = "monster_collector"
)

// Badge thresholds.
const (
	BadgeScoreApprentice = 5
	BadgeScorePro        = 7
	BadgeStreakThreshold = 3
)

// QuestionView is the per-question portion of a snapshot. Options holds the
// currently visible options (post 50/50); answers are submitted by visible
// index. Topic is set only after a hint purchase; Explanation and AnswerIdx
// only once the question is answered.
type QuestionView struct {
	ID          string   `json:"id"`
	Number      int      `json:"number"`
	Prompt      string   `json:"prompt"`
	Code        string   `json:"code,omitempty"`
	Options     []string `json:"options"`
	Topic       string   `json:"topic,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	AnswerIdx   int      `json:"answerIdx"`
}

// GameSnapshot is the read model handed to the presentation layer after each
// transition.
type GameSnapshot struct {
	GameID         string        `json:"gameId,omitempty"`
	Phase          Phase         `json:"phase"`
	TotalQuestions int           `json:"totalQuestions"`
	Score          int           `json:"score"`
	Coins          int           `json:"coins"`
	Streak         int           `json:"streak"`
	Answered       bool          `json:"answered"`
	LastOutcome    Outcome       `json:"lastOutcome"`
	HintShown      bool          `json:"hintShown"`
	HintsUsed      int           `json:"hintsUsed"`
	SkipsUsed      int           `json:"skipsUsed"`
	Badges         []string      `json:"badges"`
	Question       *QuestionView `json:"question,omitempty"`
	Summary        string        `json:"summary,omitempty"`
	Profile        Profile       `json:"profile"`
}
