package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a player has no active session.
	ErrSessionNotFound = errors.New("player session not found")
	// ErrGameNotStarted is returned for in-game actions before startGame.
	ErrGameNotStarted = errors.New("game not started")
	// ErrGameFinished is returned for in-game actions after completion.
	ErrGameFinished = errors.New("game already finished")
	// ErrAlreadyAnswered rejects a second submit on a locked question.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNotAnswered rejects advancing before the current question is locked.
	ErrNotAnswered = errors.New("current question not answered yet")
	// ErrInvalidOption is returned when a visible option index is out of range.
	ErrInvalidOption = errors.New("selected option out of range")
	// ErrInsufficientCoins gates every purchase; the balance never goes negative.
	ErrInsufficientCoins = errors.New("not enough coins")
	// ErrFiftyFiftyUsed rejects a second 50/50 on the same question.
	ErrFiftyFiftyUsed = errors.New("50/50 already used on this question")
	// ErrUnknownPowerUp is returned for an unrecognized power-up kind.
	ErrUnknownPowerUp = errors.New("unknown power-up")
	// ErrQuestionNotFound indicates a question ID missing from the bank.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrMonsterNotFound indicates a monster ID missing from the shop.
	ErrMonsterNotFound = errors.New("monster not found")
	// ErrMonsterOwned rejects buying a monster twice.
	ErrMonsterOwned = errors.New("monster already owned")
	// ErrMonsterNotOwned rejects selecting a monster that was never bought.
	ErrMonsterNotOwned = errors.New("monster not owned")
	// ErrEmptyQuestionBank indicates the catalog has no questions.
	ErrEmptyQuestionBank = errors.New("question bank is empty")
)
