package project

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"stencil/internal/gateway/entity"
)

// Store persists project records in postgres when a DSN is configured,
// otherwise in a JSON file. Reads go through an LRU cache in either mode.
type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]Record

	schemaOnce sync.Once
	schemaErr  error

	cache *lru.Cache[string, Record]
}

func New(path string) *Store {
	cache, _ := lru.New[string, Record](256)
	return &Store{
		path:  path,
		byID:  make(map[string]Record),
		cache: cache,
	}
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, Record](256)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, cache: cache}, nil
}

// NewFromEnv picks postgres when dsn is non-empty, falling back to the file
// backend when the connection cannot be established.
func NewFromEnv(dsn, path string) *Store {
	if strings.TrimSpace(dsn) == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		log.Printf("project store: postgres unavailable (%v), using file backend %s", err, path)
		return New(path)
	}
	return s
}

func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	if s == nil {
		return Record{}, ErrNotFound
	}
	if rec, ok := s.cache.Get(id); ok {
		return rec, nil
	}
	var (
		rec Record
		err error
	)
	if s.db != nil {
		rec, err = s.getDB(ctx, id)
	} else {
		rec, err = s.getFile(id)
	}
	if err != nil {
		return Record{}, err
	}
	s.cache.Add(id, rec)
	return rec, nil
}

func (s *Store) Put(ctx context.Context, rec Record) error {
	if s == nil || strings.TrimSpace(rec.ID) == "" {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.putDB(ctx, rec)
	} else {
		err = s.putFile(rec)
	}
	if err == nil {
		s.cache.Remove(rec.ID)
	}
	return err
}

func (s *Store) ListByOwner(ctx context.Context, ownerID entity.UserID) ([]Record, error) {
	if s == nil {
		return nil, nil
	}
	if s.db != nil {
		return s.listByOwnerDB(ctx, ownerID)
	}
	return s.listByOwnerFile(ownerID), nil
}
