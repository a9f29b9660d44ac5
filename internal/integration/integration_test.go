package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"codescore-service/internal/app"
	"codescore-service/internal/domain"
	"codescore-service/internal/infra/memory"
	pgloader "codescore-service/internal/infra/postgres"
	pgmigrations "codescore-service/internal/infra/postgres/migrations"
	infraredis "codescore-service/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestArcadeEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedCatalog(t, ctx, pgURL, sampleCatalog())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	catalogRepo := infraredis.NewCatalogRepository(redisClient, pgloader.NewCatalogLoader(pool), 5*time.Minute)
	profiles := infraredis.NewProfileStore(redisClient, time.Hour)
	service := app.NewArcadeService(memory.NewSessionStore(), catalogRepo, profiles)

	snap, err := service.StartGame(ctx, "p1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.TotalQuestions != 3 || snap.Question == nil {
		t.Fatalf("unexpected start snapshot %+v", snap)
	}

	// Every seeded question marks its correct option "yes".
	for snap.Phase == domain.PhaseInProgress {
		idx := -1
		for i, opt := range snap.Question.Options {
			if opt == "yes" {
				idx = i
			}
		}
		if idx < 0 {
			t.Fatalf("no correct option in %v", snap.Question.Options)
		}
		if snap, err = service.SubmitAnswer(ctx, "p1", idx); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if snap, err = service.Advance(ctx, "p1"); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}

	if snap.Score != 3 || snap.Coins != 18 {
		t.Fatalf("expected 3/18, got score=%d coins=%d", snap.Score, snap.Coins)
	}

	// The profile survives a dropped session via Redis.
	service.Leave(ctx, "p1")
	snap, err = service.Snapshot(ctx, "p1")
	if err != nil {
		t.Fatalf("snapshot after leave: %v", err)
	}
	if snap.Phase != domain.PhaseNotStarted || snap.Coins != 18 {
		t.Fatalf("profile not restored: phase=%s coins=%d", snap.Phase, snap.Coins)
	}

	// Coins buy a monster from the seeded shop.
	if _, err := service.BuyMonster(ctx, "p1", "pep_snek"); err != nil {
		t.Fatalf("buy monster: %v", err)
	}
	profile, ok, err := profiles.Load(ctx, "p1")
	if err != nil || !ok {
		t.Fatalf("load profile: ok=%v err=%v", ok, err)
	}
	if profile.Coins != 3 || !profile.Owns("pep_snek") {
		t.Fatalf("purchase not persisted: %+v", profile)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "arcade", "POSTGRES_PASSWORD": "arcadepass", "POSTGRES_DB": "arcadedb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://arcade:arcadepass@%s:%s/arcadedb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedCatalog(t *testing.T, ctx context.Context, dsn string, catalog domain.Catalog) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, q := range catalog.Questions {
		data, err := json.Marshal(q)
		if err != nil {
			t.Fatalf("marshal question: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO questions (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`, q.ID, string(data)); err != nil {
			t.Fatalf("insert question: %v", err)
		}
	}
	for _, m := range catalog.Monsters {
		data, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("marshal monster: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO monsters (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`, m.ID, string(data)); err != nil {
			t.Fatalf("insert monster: %v", err)
		}
	}
}

func sampleCatalog() domain.Catalog {
	questions := make([]domain.Question, 0, 4)
	for _, id := range []string{"q1", "q2", "q3", "q4"} {
		questions = append(questions, domain.Question{
			ID:          id,
			Prompt:      "Pick yes",
			Options:     []string{"no1", "yes", "no2"},
			AnswerIdx:   1,
			Explanation: "yes was right",
			Topic:       "basics",
		})
	}
	return domain.Catalog{
		Questions: questions,
		Monsters: []domain.Monster{
			{ID: "pep_snek", Name: "Pep Snek", Price: 15, Description: "A tidy snake."},
		},
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
