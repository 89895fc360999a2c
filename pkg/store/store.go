// Package store persists generated code mappings and worker tasks.
//
// The engine depends on exactly two write operations: an idempotent upsert
// of generated code keyed by (element id, target), and an append of one
// worker task per call. [Store] is that boundary; [MongoStore] talks to
// MongoDB and [MemoryStore] backs tests and local CLI runs.
//
// All failures surface with code errors.ErrCodePersistence so callers can
// distinguish storage trouble from bad input. Transient failures should be
// wrapped with [Retryable] and driven through [Retry] - persistence is
// awaited with bounded retry, never retried indefinitely and never
// swallowed.
package store

import (
	"context"
	"time"

	"github.com/layerforge/layerforge/pkg/tasks"
)

// CodeMapping links a layer element to the code generated for one target.
type CodeMapping struct {
	ElementID string    `json:"element_id" bson:"element_id"`
	Target    string    `json:"target" bson:"target"`
	Code      string    `json:"code" bson:"code"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Store is the external persistence collaborator.
type Store interface {
	// SaveCodeMapping upserts generated code keyed by (ElementID, Target).
	// Saving the same pair twice replaces the code; it never duplicates.
	SaveCodeMapping(ctx context.Context, m CodeMapping) error

	// SaveWorkerTask appends one worker task.
	SaveWorkerTask(ctx context.Context, t tasks.Task) error

	// Close releases any underlying connections.
	Close(ctx context.Context) error
}
