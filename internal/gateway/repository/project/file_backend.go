package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"stencil/internal/gateway/entity"
)

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var byID map[string]Record
		if err := json.Unmarshal(data, &byID); err != nil {
			return
		}
		s.mu.Lock()
		s.byID = byID
		s.mu.Unlock()
	})
}

func (s *Store) saveFile() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.byID, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) getFile(id string) (Record, error) {
	s.ensureLoadedFile()
	s.mu.RLock()
	rec, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *Store) putFile(rec Record) error {
	s.ensureLoadedFile()
	s.mu.Lock()
	s.byID[rec.ID] = rec
	s.mu.Unlock()
	return s.saveFile()
}

func (s *Store) listByOwnerFile(ownerID entity.UserID) []Record {
	s.ensureLoadedFile()
	s.mu.RLock()
	out := make([]Record, 0, len(s.byID))
	for _, rec := range s.byID {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
