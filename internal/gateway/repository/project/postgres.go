package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"stencil/internal/gateway/entity"
)

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
	id          TEXT PRIMARY KEY,
	owner_id    TEXT NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	template    TEXT NOT NULL,
	selection   JSONB NOT NULL DEFAULT '{}'::jsonb,
	pages       JSONB NOT NULL DEFAULT '[]'::jsonb,
	vision      TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS projects_owner_idx ON projects (owner_id);
`

func (s *Store) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, createProjectsTable)
	})
	return s.schemaErr
}

func (s *Store) getDB(ctx context.Context, id string) (Record, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return Record{}, err
	}
	row := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, description, template, selection, pages, vision, created_at
		FROM projects WHERE id = $1`, id)
	return scanRecord(row)
}

func (s *Store) putDB(ctx context.Context, rec Record) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	selJSON, err := json.Marshal(rec.Selection)
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	pages := rec.Pages
	if pages == nil {
		pages = []Page{}
	}
	pagesJSON, err := json.Marshal(pages)
	if err != nil {
		return fmt.Errorf("encode pages: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, owner_id, name, description, template, selection, pages, vision, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			owner_id = EXCLUDED.owner_id,
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			template = EXCLUDED.template,
			selection = EXCLUDED.selection,
			pages = EXCLUDED.pages,
			vision = EXCLUDED.vision`,
		rec.ID, rec.OwnerID.String(), rec.Name, rec.Description, rec.Template,
		selJSON, pagesJSON, rec.Vision, rec.CreatedAt)
	return err
}

func (s *Store) listByOwnerDB(ctx context.Context, ownerID entity.UserID) ([]Record, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, name, description, template, selection, pages, vision, created_at
		FROM projects WHERE owner_id = $1 ORDER BY created_at, id`, ownerID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec       Record
		owner     string
		selJSON   []byte
		pagesJSON []byte
	)
	err := row.Scan(&rec.ID, &owner, &rec.Name, &rec.Description, &rec.Template,
		&selJSON, &pagesJSON, &rec.Vision, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	rec.OwnerID = entity.NormalizeUserID(owner)
	if err := json.Unmarshal(selJSON, &rec.Selection); err != nil {
		return Record{}, fmt.Errorf("decode selection for %s: %w", rec.ID, err)
	}
	if err := json.Unmarshal(pagesJSON, &rec.Pages); err != nil {
		return Record{}, fmt.Errorf("decode pages for %s: %w", rec.ID, err)
	}
	return rec, nil
}
