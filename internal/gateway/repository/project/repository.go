package project

import (
	"context"
	"errors"
	"time"

	"stencil/internal/gateway/entity"
	"stencil/internal/registry"
)

// ErrNotFound is returned when no project row exists for an id.
var ErrNotFound = errors.New("project not found")

// Page is one declared route of a stored project.
type Page struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Protected bool   `json:"protected"`
}

// Record is the persisted project row the export path consumes.
type Record struct {
	ID          string             `json:"id"`
	OwnerID     entity.UserID      `json:"owner_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Template    string             `json:"template"`
	Selection   registry.Selection `json:"selection"`
	Pages       []Page             `json:"pages"`
	Vision      string             `json:"vision,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Repository is the narrow persistence surface the engine depends on.
type Repository interface {
	Get(ctx context.Context, id string) (Record, error)
	Put(ctx context.Context, rec Record) error
	ListByOwner(ctx context.Context, ownerID entity.UserID) ([]Record, error)
}
