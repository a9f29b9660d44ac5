package app

import (
	"context"
	"fmt"

	"codescore-service/internal/domain"
)

// SessionRepository abstracts how player sessions are stored (in-memory, etc).
type SessionRepository interface {
	GetOrCreate(playerID string) *Session
	Get(playerID string) (*Session, bool)
	Delete(playerID string)
}

// CatalogRepository loads the question/monster catalog (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (domain.Catalog, error)
}

// ProfileRepository persists player profiles across games and sessions.
type ProfileRepository interface {
	Load(ctx context.Context, playerID string) (domain.Profile, bool, error)
	Save(ctx context.Context, playerID string, profile domain.Profile) error
}

// ArcadeService contains the quiz arcade use cases. Each user action maps to
// exactly one transition call followed by a snapshot read for rendering.
type ArcadeService struct {
	sessions SessionRepository
	catalog  CatalogRepository
	profiles ProfileRepository
}

func NewArcadeService(sessions SessionRepository, catalog CatalogRepository, profiles ProfileRepository) *ArcadeService {
	return &ArcadeService{sessions: sessions, catalog: catalog, profiles: profiles}
}

// StartGame begins a new quiz run for the player. The question count is
// clamped to the configured bounds and the bank size; the profile carries
// over untouched.
func (a *ArcadeService) StartGame(ctx context.Context, playerID string, questionCount int) (domain.GameSnapshot, error) {
	catalog, err := a.catalog.GetCatalog(ctx)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	session, err := a.session(ctx, playerID)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	session.start(catalog.Questions, questionCount)
	return a.render(ctx, session, catalog)
}

// Snapshot returns the current state without mutating it.
func (a *ArcadeService) Snapshot(ctx context.Context, playerID string) (domain.GameSnapshot, error) {
	catalog, err := a.catalog.GetCatalog(ctx)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	session, err := a.session(ctx, playerID)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	return a.snapshotOf(session, catalog)
}

// SubmitAnswer locks in the visible option index for the current question.
func (a *ArcadeService) SubmitAnswer(ctx context.Context, playerID string, visibleIdx int) (domain.GameSnapshot, error) {
	catalog, session, question, err := a.currentQuestion(ctx, playerID)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	if err := session.submit(question, visibleIdx); err != nil {
		return domain.GameSnapshot{}, err
	}
	return a.render(ctx, session, catalog)
}

// Advance moves to the next question (or finishes the game).
func (a *ArcadeService) Advance(ctx context.Context, playerID string) (domain.GameSnapshot, error) {
	catalog, err := a.catalog.GetCatalog(ctx)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	session, err := a.session(ctx, playerID)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	if err := session.advance(); err != nil {
		return domain.GameSnapshot{}, err
	}
	return a.render(ctx, session, catalog)
}

// BuyPowerUp purchases and applies one of the three paid modifiers.
func (a *ArcadeService) BuyPowerUp(ctx context.Context, playerID string, powerUp domain.PowerUp) (domain.GameSnapshot, error) {
	catalog, session, question, err := a.currentQuestion(ctx, playerID)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	switch powerUp {
	case domain.PowerUpHint:
		err = session.buyHint()
	case domain.PowerUpSkip:
		err = session.skip()
	case domain.PowerUpFiftyFifty:
		err = session.buyFiftyFifty(question)
	default:
		err = domain.ErrUnknownPowerUp
	}
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	return a.render(ctx, session, catalog)
}

// BuyMonster purchases a cosmetic from the shop.
func (a *ArcadeService) BuyMonster(ctx context.Context, playerID, monsterID string) (domain.GameSnapshot, error) {
	catalog, err := a.catalog.GetCatalog(ctx)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	session, err := a.session(ctx, playerID)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	monster, err := catalog.MonsterByID(monsterID)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	if err := session.buyMonster(monster); err != nil {
		return domain.GameSnapshot{}, err
	}
	return a.render(ctx, session, catalog)
}

// SelectMonster switches the displayed cosmetic to an owned one.
func (a *ArcadeService) SelectMonster(ctx context.Context, playerID, monsterID string) (domain.GameSnapshot, error) {
	catalog, err := a.catalog.GetCatalog(ctx)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	session, err := a.session(ctx, playerID)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	monster, err := catalog.MonsterByID(monsterID)
	if err != nil {
		return domain.GameSnapshot{}, err
	}
	if err := session.selectMonster(monster); err != nil {
		return domain.GameSnapshot{}, err
	}
	return a.render(ctx, session, catalog)
}

// Monsters exposes the shop catalog for rendering.
func (a *ArcadeService) Monsters(ctx context.Context) ([]domain.Monster, error) {
	catalog, err := a.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Monsters, nil
}

// Leave persists the profile and drops the in-memory session.
func (a *ArcadeService) Leave(ctx context.Context, playerID string) {
	session, ok := a.sessions.Get(playerID)
	if !ok {
		return
	}
	_ = a.profiles.Save(ctx, playerID, session.profileCopy())
	a.sessions.Delete(playerID)
}

// session resolves the player's session, hydrating the profile from the
// repository on first touch.
func (a *ArcadeService) session(ctx context.Context, playerID string) (*Session, error) {
	session := a.sessions.GetOrCreate(playerID)
	if session.needsProfile() {
		profile, _, err := a.profiles.Load(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		session.attachProfile(profile)
	}
	return session, nil
}

func (a *ArcadeService) currentQuestion(ctx context.Context, playerID string) (domain.Catalog, *Session, domain.Question, error) {
	catalog, err := a.catalog.GetCatalog(ctx)
	if err != nil {
		return domain.Catalog{}, nil, domain.Question{}, err
	}
	session, err := a.session(ctx, playerID)
	if err != nil {
		return domain.Catalog{}, nil, domain.Question{}, err
	}
	questionID, err := session.currentQuestionID()
	if err != nil {
		return domain.Catalog{}, nil, domain.Question{}, err
	}
	// Sampling only draws from known IDs, so a miss here is an internal
	// invariant violation surfaced as a request-fatal error.
	question, err := catalog.QuestionByID(questionID)
	if err != nil {
		return domain.Catalog{}, nil, domain.Question{}, fmt.Errorf("resolve question %q: %w", questionID, err)
	}
	return catalog, session, question, nil
}

// render persists the (possibly mutated) profile and returns a fresh snapshot.
func (a *ArcadeService) render(ctx context.Context, session *Session, catalog domain.Catalog) (domain.GameSnapshot, error) {
	if err := a.profiles.Save(ctx, session.PlayerID(), session.profileCopy()); err != nil {
		return domain.GameSnapshot{}, fmt.Errorf("save profile: %w", err)
	}
	return a.snapshotOf(session, catalog)
}

func (a *ArcadeService) snapshotOf(session *Session, catalog domain.Catalog) (domain.GameSnapshot, error) {
	questionID, err := session.currentQuestionID()
	if err != nil {
		// Not started or finished: snapshot without a question view.
		return session.snapshot(nil), nil
	}
	question, err := catalog.QuestionByID(questionID)
	if err != nil {
		return domain.GameSnapshot{}, fmt.Errorf("resolve question %q: %w", questionID, err)
	}
	return session.snapshot(&question), nil
}
