package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"codescore-service/internal/domain"
)

// CatalogLoader loads the question bank and monster shop from Postgres.
// Rows hold one JSONB document per entry.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	questions, err := l.loadQuestions(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	monsters, err := l.loadMonsters(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	return domain.Catalog{Questions: questions, Monsters: monsters}, nil
}

func (l *CatalogLoader) loadQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		var q domain.Question
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("unmarshal question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return questions, nil
}

func (l *CatalogLoader) loadMonsters(ctx context.Context) ([]domain.Monster, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM monsters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load monsters: %w", err)
	}
	defer rows.Close()

	var monsters []domain.Monster
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan monster: %w", err)
		}
		var m domain.Monster
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal monster: %w", err)
		}
		monsters = append(monsters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load monsters: %w", err)
	}
	return monsters, nil
}
