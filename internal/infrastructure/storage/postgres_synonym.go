package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
)

const (
	postgresConnectAttempts = 10
	postgresConnectDelay    = 2 * time.Second
)

type postgresSynonymRepository struct {
	db *sql.DB
}

// NewPostgresSynonymRepository opens a Postgres-backed learned-synonym store
// and creates its tables if they do not exist yet.
func NewPostgresSynonymRepository(dsn string) (repository.SynonymRepository, error) {
	db, err := openPostgresWithRetry(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	repo := &postgresSynonymRepository{db: db}
	if err := repo.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func openPostgresWithRetry(dsn string) (*sql.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= postgresConnectAttempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if pingErr := db.Ping(); pingErr == nil {
				return db, nil
			} else {
				err = pingErr
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if attempt < postgresConnectAttempts {
			time.Sleep(postgresConnectDelay)
		}
	}
	return nil, lastErr
}

func (p *postgresSynonymRepository) migrate() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS learned_synonyms (
			query     TEXT PRIMARY KEY,
			canonical TEXT NOT NULL,
			learned_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS unmatched_queries (
			query   TEXT NOT NULL,
			seen_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to migrate synonym tables: %w", err)
	}
	return nil
}

func (p *postgresSynonymRepository) Lookup(ctx context.Context, query string) (string, bool, error) {
	var canonical string
	err := p.db.QueryRowContext(ctx,
		`SELECT canonical FROM learned_synonyms WHERE query = $1`, query).Scan(&canonical)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("synonym lookup failed: %w", err)
	}
	return canonical, true, nil
}

func (p *postgresSynonymRepository) Learn(ctx context.Context, query, canonical string) error {
	// DO NOTHING keeps the write idempotent and preserves the first mapping.
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO learned_synonyms (query, canonical) VALUES ($1, $2)
		 ON CONFLICT (query) DO NOTHING`, query, canonical)
	if err != nil {
		return fmt.Errorf("failed to learn synonym: %w", err)
	}
	return nil
}

func (p *postgresSynonymRepository) LogUnmatched(ctx context.Context, query string) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO unmatched_queries (query) VALUES ($1)`, query)
	if err != nil {
		return fmt.Errorf("failed to log unmatched query: %w", err)
	}
	return nil
}
