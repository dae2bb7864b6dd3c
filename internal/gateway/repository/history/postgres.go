package history

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"

	"stencil/internal/gateway/entity"
)

const createExportsTable = `
CREATE TABLE IF NOT EXISTS export_history (
	id         BIGSERIAL PRIMARY KEY,
	project_id TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	filename   TEXT NOT NULL,
	files      INT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS export_history_project_idx ON export_history (project_id);
`

// PostgresStore appends export rows to an export_history table.
type PostgresStore struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgres(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, createExportsTable)
	})
	return s.schemaErr
}

func (s *PostgresStore) Append(ctx context.Context, rec Record) (int64, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return 0, err
	}
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO export_history (project_id, user_id, filename, files, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		rec.ProjectID, rec.UserID.String(), rec.Filename, rec.Files, rec.CreatedAt).Scan(&id)
	return id, err
}

func (s *PostgresStore) UpdateFiles(ctx context.Context, id int64, files int) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `UPDATE export_history SET files = $1 WHERE id = $2`, files, id)
	return err
}

func (s *PostgresStore) List(ctx context.Context, projectID string) ([]Record, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, user_id, filename, files, created_at
		FROM export_history WHERE project_id = $1 ORDER BY id`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec  Record
			user string
		)
		if err := rows.Scan(&rec.ID, &rec.ProjectID, &user, &rec.Filename, &rec.Files, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.UserID = entity.NormalizeUserID(user)
		out = append(out, rec)
	}
	return out, rows.Err()
}
