package app

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"codescore-service/internal/domain"
)

// Session owns the per-player quiz state: the active game run plus the
// player profile (coins, cosmetics) that survives game resets. Every user
// action is one synchronous transition under the session mutex.
type Session struct {
	playerID string
	now      func() time.Time

	mu  sync.RWMutex
	rnd *rand.Rand

	profile       domain.Profile
	profileLoaded bool

	// Per-game state, reset by start().
	gameID        string
	phase         domain.Phase
	order         []string
	index         int
	score         int
	streak        int
	hintsUsed     int
	skipsUsed     int
	usedFiftyEver bool
	badges        map[string]struct{}
	badgesAwarded bool
	startedAt     time.Time

	// Per-question state, reset on every advance.
	answered    bool
	lastOutcome domain.Outcome
	hintShown   bool
	fiftyUsed   bool
	eliminated  map[int]struct{}
	applied     map[domain.PowerUp]struct{}
}

// NewSession is exported for infrastructure layers that need to seed sessions.
func NewSession(playerID string) *Session {
	return newSession(playerID, rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewSessionWithRand is test-only for deterministic sampling and 50/50 picks.
func NewSessionWithRand(playerID string, rnd *rand.Rand) *Session {
	return newSession(playerID, rnd, time.Now)
}

func newSession(playerID string, rnd *rand.Rand, now func() time.Time) *Session {
	return &Session{
		playerID:    playerID,
		now:         now,
		rnd:         rnd,
		phase:       domain.PhaseNotStarted,
		lastOutcome: domain.OutcomeNone,
		badges:      make(map[string]struct{}),
	}
}

// PlayerID returns the owning player.
func (s *Session) PlayerID() string { return s.playerID }

func (s *Session) needsProfile() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.profileLoaded
}

func (s *Session) attachProfile(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profileLoaded {
		return
	}
	s.profile = p
	s.profileLoaded = true
}

func (s *Session) profileCopy() domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.profile
	p.MonstersOwned = append([]string(nil), s.profile.MonstersOwned...)
	return p
}

// start resets all per-game state and samples questionCount distinct IDs
// from the bank without replacement. The profile (coins, monsters) is kept.
func (s *Session) start(bank []domain.Question, questionCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := questionCount
	if n < domain.MinQuestionsPerGame {
		n = domain.MinQuestionsPerGame
	}
	if n > domain.MaxQuestionsPerGame {
		n = domain.MaxQuestionsPerGame
	}
	if n > len(bank) {
		n = len(bank)
	}

	order := make([]string, 0, n)
	for _, i := range s.rnd.Perm(len(bank))[:n] {
		order = append(order, bank[i].ID)
	}

	s.gameID = uuid.NewString()
	s.phase = domain.PhaseInProgress
	s.order = order
	s.index = 0
	s.score = 0
	s.streak = 0
	s.hintsUsed = 0
	s.skipsUsed = 0
	s.usedFiftyEver = false
	s.badges = make(map[string]struct{})
	s.badgesAwarded = false
	s.startedAt = s.now()
	s.resetQuestionLocked()
}

func (s *Session) resetQuestionLocked() {
	s.answered = false
	s.lastOutcome = domain.OutcomeNone
	s.hintShown = false
	s.fiftyUsed = false
	s.eliminated = nil
	s.applied = nil
}

// currentQuestionID returns the ID the session is positioned on.
func (s *Session) currentQuestionID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentQuestionIDLocked()
}

func (s *Session) currentQuestionIDLocked() (string, error) {
	switch s.phase {
	case domain.PhaseNotStarted:
		return "", domain.ErrGameNotStarted
	case domain.PhaseFinished:
		return "", domain.ErrGameFinished
	}
	return s.order[s.index], nil
}

// submit locks in an answer by visible option index. The index is mapped back
// to the true option position after 50/50 filtering. A second submit on the
// same question is rejected.
func (s *Session) submit(q domain.Question, visibleIdx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpenQuestionLocked(); err != nil {
		return err
	}

	visible := s.visibleIndicesLocked(q)
	if visibleIdx < 0 || visibleIdx >= len(visible) {
		return domain.ErrInvalidOption
	}
	trueIdx := visible[visibleIdx]

	s.answered = true
	if trueIdx == q.AnswerIdx {
		// Reward scales with the streak carried into this question, capped.
		s.profile.Coins += rewardForCorrect(s.streak)
		s.score++
		s.streak++
		s.lastOutcome = domain.OutcomeCorrect
	} else {
		s.streak = 0
		s.lastOutcome = domain.OutcomeIncorrect
	}
	return nil
}

// advance moves past an answered question, resetting per-question power-up
// state. Reaching the end of the order finishes the game and awards badges
// exactly once.
func (s *Session) advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case domain.PhaseNotStarted:
		return domain.ErrGameNotStarted
	case domain.PhaseFinished:
		return domain.ErrGameFinished
	}
	if !s.answered {
		return domain.ErrNotAnswered
	}
	s.advanceLocked()
	return nil
}

func (s *Session) advanceLocked() {
	s.index++
	s.resetQuestionLocked()
	if s.index == len(s.order) {
		s.phase = domain.PhaseFinished
		s.awardBadgesLocked()
	}
}

// skip forfeits the current question for SkipCost coins: the streak resets,
// nothing is scored, and the session moves on immediately.
func (s *Session) skip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpenQuestionLocked(); err != nil {
		return err
	}
	if s.profile.Coins < domain.SkipCost {
		return domain.ErrInsufficientCoins
	}
	s.profile.Coins -= domain.SkipCost
	s.skipsUsed++
	s.streak = 0
	s.answered = true
	s.lastOutcome = domain.OutcomeSkipped
	s.advanceLocked()
	return nil
}

// buyHint reveals the current question's topic. Purely informational; it can
// be bought again on the same question (each purchase costs).
func (s *Session) buyHint() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpenQuestionLocked(); err != nil {
		return err
	}
	if s.profile.Coins < domain.HintCost {
		return domain.ErrInsufficientCoins
	}
	s.profile.Coins -= domain.HintCost
	s.hintsUsed++
	s.hintShown = true
	return nil
}

// buyFiftyFifty hides min(2, wrongCount) incorrect options on the current
// question. The correct option is never eliminated. Membership in the
// applied set guarantees at-most-once application per question.
func (s *Session) buyFiftyFifty(q domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpenQuestionLocked(); err != nil {
		return err
	}
	if s.fiftyUsed {
		return domain.ErrFiftyFiftyUsed
	}
	if _, done := s.applied[domain.PowerUpFiftyFifty]; done {
		return domain.ErrFiftyFiftyUsed
	}
	if s.profile.Coins < domain.FiftyFiftyCost {
		return domain.ErrInsufficientCoins
	}
	s.profile.Coins -= domain.FiftyFiftyCost
	if s.applied == nil {
		s.applied = make(map[domain.PowerUp]struct{})
	}
	s.applied[domain.PowerUpFiftyFifty] = struct{}{}
	s.usedFiftyEver = true

	wrong := make([]int, 0, len(q.Options)-1)
	for i := range q.Options {
		if i != q.AnswerIdx {
			wrong = append(wrong, i)
		}
	}
	k := 2
	if len(wrong) < k {
		k = len(wrong)
	}
	s.eliminated = make(map[int]struct{}, k)
	for _, i := range s.rnd.Perm(len(wrong))[:k] {
		s.eliminated[wrong[i]] = struct{}{}
	}
	s.fiftyUsed = true
	return nil
}

// buyMonster purchases a cosmetic and selects it. Grants Monster Collector
// at purchase time, independent of game completion.
func (s *Session) buyMonster(m domain.Monster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile.Owns(m.ID) {
		return domain.ErrMonsterOwned
	}
	if s.profile.Coins < m.Price {
		return domain.ErrInsufficientCoins
	}
	s.profile.Coins -= m.Price
	s.profile.MonstersOwned = append(s.profile.MonstersOwned, m.ID)
	s.profile.SelectedMonster = m.ID
	s.badges[domain.BadgeMonsterCollector] = struct{}{}
	return nil
}

func (s *Session) selectMonster(m domain.Monster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.profile.Owns(m.ID) {
		return domain.ErrMonsterNotOwned
	}
	s.profile.SelectedMonster = m.ID
	return nil
}

func (s *Session) requireOpenQuestionLocked() error {
	switch s.phase {
	case domain.PhaseNotStarted:
		return domain.ErrGameNotStarted
	case domain.PhaseFinished:
		return domain.ErrGameFinished
	}
	if s.answered {
		return domain.ErrAlreadyAnswered
	}
	return nil
}

func (s *Session) visibleIndicesLocked(q domain.Question) []int {
	visible := make([]int, 0, len(q.Options))
	for i := range q.Options {
		if _, gone := s.eliminated[i]; gone {
			continue
		}
		visible = append(visible, i)
	}
	return visible
}

func (s *Session) awardBadgesLocked() {
	if s.badgesAwarded {
		return
	}
	s.badgesAwarded = true

	if s.score >= domain.BadgeScoreApprentice {
		s.badges[domain.BadgeApprentice] = struct{}{}
	}
	if s.score >= domain.BadgeScorePro {
		s.badges[domain.BadgePro] = struct{}{}
	}
	// Evaluated on the streak value at game end, so a late wrong answer can
	// cost the badge even if a longer streak occurred earlier.
	if s.streak >= domain.BadgeStreakThreshold {
		s.badges[domain.BadgeStreakMaster] = struct{}{}
	}
	if s.hintsUsed == 0 && s.index == len(s.order) {
		s.badges[domain.BadgeNoHintHero] = struct{}{}
	}
	if s.usedFiftyEver {
		s.badges[domain.BadgeFiftyFiftyUser] = struct{}{}
	}
}

// snapshot builds the read model for rendering. q is the resolved current
// question when the game is in progress, nil otherwise.
func (s *Session) snapshot(q *domain.Question) domain.GameSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	badges := make([]string, 0, len(s.badges))
	for b := range s.badges {
		badges = append(badges, b)
	}
	sort.Strings(badges)

	profile := s.profile
	profile.MonstersOwned = append([]string(nil), s.profile.MonstersOwned...)

	snap := domain.GameSnapshot{
		GameID:         s.gameID,
		Phase:          s.phase,
		TotalQuestions: len(s.order),
		Score:          s.score,
		Coins:          s.profile.Coins,
		Streak:         s.streak,
		Answered:       s.answered,
		LastOutcome:    s.lastOutcome,
		HintShown:      s.hintShown,
		HintsUsed:      s.hintsUsed,
		SkipsUsed:      s.skipsUsed,
		Badges:         badges,
		Profile:        profile,
	}

	if s.phase == domain.PhaseFinished {
		snap.Summary = resultSummary(s.score, len(s.order))
	}

	if q != nil && s.phase == domain.PhaseInProgress {
		visible := s.visibleIndicesLocked(*q)
		options := make([]string, 0, len(visible))
		answerVisibleIdx := -1
		for vi, ti := range visible {
			options = append(options, q.Options[ti])
			if ti == q.AnswerIdx {
				answerVisibleIdx = vi
			}
		}
		view := &domain.QuestionView{
			ID:        q.ID,
			Number:    s.index + 1,
			Prompt:    q.Prompt,
			Code:      q.Code,
			Options:   options,
			AnswerIdx: -1,
		}
		if s.hintShown {
			view.Topic = q.Topic
		}
		if s.answered {
			view.Explanation = q.Explanation
			view.AnswerIdx = answerVisibleIdx
		}
		snap.Question = view
	}
	return snap
}

// rewardForCorrect computes the coin reward for a correct answer given the
// streak carried into the question: monotonic non-decreasing and capped at
// BaseCoinReward + MaxStreakBonus.
func rewardForCorrect(streak int) int {
	bonus := streak
	if bonus > domain.MaxStreakBonus {
		bonus = domain.MaxStreakBonus
	}
	return domain.BaseCoinReward + bonus
}

func resultSummary(score, total int) string {
	if total == 0 {
		return ""
	}
	ratio := float64(score) / float64(total)
	switch {
	case ratio <= 0.4:
		return "Basic familiarity with PEP 8."
	case ratio <= 0.75:
		return "Solid understanding of PEP 8."
	default:
		return "Very strong understanding of PEP 8."
	}
}
