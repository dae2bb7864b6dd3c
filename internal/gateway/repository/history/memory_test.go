package history

import (
	"context"
	"testing"
	"time"

	"stencil/internal/gateway/entity"
)

func TestMemoryStoreAppendList(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	for i, projectID := range []string{"p1", "p2", "p1"} {
		id, err := s.Append(ctx, Record{
			ProjectID: projectID,
			UserID:    entity.NormalizeUserID("alice"),
			Filename:  "app.zip",
			Files:     10 + i,
			CreatedAt: time.Unix(1700000000+int64(i), 0).UTC(),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if id != int64(i+1) {
			t.Fatalf("append %d: id = %d", i, id)
		}
	}

	got, err := s.List(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID >= got[1].ID {
		t.Fatalf("ids not monotonic: %d, %d", got[0].ID, got[1].ID)
	}
	if got[0].Files != 10 || got[1].Files != 12 {
		t.Fatalf("records out of order: %+v", got)
	}

	empty, err := s.List(ctx, "p9")
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("unexpected records: %+v", empty)
	}
}

func TestMemoryStoreUpdateFiles(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	id, err := s.Append(ctx, Record{ProjectID: "p1", Filename: "app.zip"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.UpdateFiles(ctx, id, 42); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.List(ctx, "p1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Files != 42 {
		t.Fatalf("records = %+v", got)
	}

	if err := s.UpdateFiles(ctx, 999, 1); err == nil {
		t.Fatal("expected error for unknown id")
	}
}
