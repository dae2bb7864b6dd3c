package history

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps export history in memory for file-backed deployments.
type MemoryStore struct {
	mu   sync.Mutex
	next int64
	recs []Record
}

func NewMemory() *MemoryStore {
	return &MemoryStore{next: 1}
}

func (s *MemoryStore) Append(_ context.Context, rec Record) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.next
	s.next++
	s.recs = append(s.recs, rec)
	return rec.ID, nil
}

func (s *MemoryStore) UpdateFiles(_ context.Context, id int64, files int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recs {
		if s.recs[i].ID == id {
			s.recs[i].Files = files
			return nil
		}
	}
	return fmt.Errorf("history: no record %d", id)
}

func (s *MemoryStore) List(_ context.Context, projectID string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Record
	for _, rec := range s.recs {
		if rec.ProjectID == projectID {
			out = append(out, rec)
		}
	}
	return out, nil
}
