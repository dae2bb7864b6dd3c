package history

import (
	"context"
	"time"

	"stencil/internal/gateway/entity"
)

// Record is one export event for a project.
type Record struct {
	ID        int64         `json:"id"`
	ProjectID string        `json:"project_id"`
	UserID    entity.UserID `json:"user_id"`
	Filename  string        `json:"filename"`
	Files     int           `json:"files"`
	CreatedAt time.Time     `json:"created_at"`
}

// Store records export events. Append failures never block an export.
// Append returns the new record's id so the file count, unknown until the
// archive is finished, can be filled in afterwards.
type Store interface {
	Append(ctx context.Context, rec Record) (int64, error)
	UpdateFiles(ctx context.Context, id int64, files int) error
	List(ctx context.Context, projectID string) ([]Record, error)
}
