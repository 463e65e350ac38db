package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepository implements Repository on a Postgres table.
type PostgresRepository struct {
	db *sql.DB
}

// Open connects to Postgres with the pgx stdlib driver and verifies the
// connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// NewPostgresRepository constructs a repository over an open connection pool.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the presentations table if it does not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS presentations (
	id          TEXT PRIMARY KEY,
	link        TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL,
	owner_id    TEXT NOT NULL,
	file_key    TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS presentations_owner_idx ON presentations (owner_id, created_at DESC);`

	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, rec *Record) error {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	const q = `INSERT INTO presentations (id, link, title, description, owner_id, file_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.db.ExecContext(ctx, q, rec.ID, rec.Link, rec.Title, rec.Description, rec.OwnerID, rec.FileKey, rec.CreatedAt); err != nil {
		return fmt.Errorf("insert presentation: %w", err)
	}
	return nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Record, error) {
	const q = `SELECT id, link, title, description, owner_id, file_key, created_at
FROM presentations WHERE id = $1`

	var rec Record
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&rec.ID, &rec.Link, &rec.Title, &rec.Description, &rec.OwnerID, &rec.FileKey, &rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query presentation: %w", err)
	}
	return &rec, nil
}

func (r *PostgresRepository) FindByOwner(ctx context.Context, ownerID string) ([]Record, error) {
	const q = `SELECT id, link, title, description, owner_id, file_key, created_at
FROM presentations WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query presentations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Link, &rec.Title, &rec.Description, &rec.OwnerID, &rec.FileKey, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan presentation: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presentations: %w", err)
	}
	return records, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM presentations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete presentation: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
