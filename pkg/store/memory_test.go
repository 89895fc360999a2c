package store

import (
	"context"
	"testing"
	"time"

	"github.com/layerforge/layerforge/pkg/tasks"
)

func TestMemoryStoreUpsertMapping(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := CodeMapping{ElementID: "hero", Target: "react", Code: "v1", UpdatedAt: time.Now()}
	if err := s.SaveCodeMapping(ctx, first); err != nil {
		t.Fatalf("SaveCodeMapping() error = %v", err)
	}

	second := first
	second.Code = "v2"
	if err := s.SaveCodeMapping(ctx, second); err != nil {
		t.Fatalf("SaveCodeMapping() error = %v", err)
	}

	if got := s.MappingCount(); got != 1 {
		t.Fatalf("MappingCount() = %d, want 1 after upsert", got)
	}
	m, ok := s.CodeMapping("hero", "react")
	if !ok {
		t.Fatal("CodeMapping() not found")
	}
	if m.Code != "v2" {
		t.Errorf("Code = %q, want v2", m.Code)
	}
}

func TestMemoryStoreDistinctTargets(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, target := range []string{"react", "vue", "html", "svg"} {
		m := CodeMapping{ElementID: "hero", Target: target, Code: "code-" + target}
		if err := s.SaveCodeMapping(ctx, m); err != nil {
			t.Fatalf("SaveCodeMapping(%s) error = %v", target, err)
		}
	}

	if got := s.MappingCount(); got != 4 {
		t.Errorf("MappingCount() = %d, want 4", got)
	}
}

func TestMemoryStoreTasksAppend(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	batch := tasks.Decompose("cmp-1", nil, "react")
	for _, task := range batch {
		if err := s.SaveWorkerTask(ctx, task); err != nil {
			t.Fatalf("SaveWorkerTask() error = %v", err)
		}
	}

	got := s.Tasks()
	if len(got) != len(batch) {
		t.Fatalf("Tasks() len = %d, want %d", len(got), len(batch))
	}
	for i := range got {
		if got[i].ID != batch[i].ID {
			t.Errorf("Tasks()[%d].ID = %q, want %q", i, got[i].ID, batch[i].ID)
		}
	}
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.SaveCodeMapping(ctx, CodeMapping{ElementID: "x", Target: "react"}); err == nil {
		t.Error("SaveCodeMapping() with cancelled context should fail")
	}
	if err := s.SaveWorkerTask(ctx, tasks.Task{ID: "t1"}); err == nil {
		t.Error("SaveWorkerTask() with cancelled context should fail")
	}
}
