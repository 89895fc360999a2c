// Package tasks models the asynchronous refinement work queued against a
// generated component.
//
// The engine only creates tasks: [Decompose] expands a finished component
// into a fixed, priority-ordered pipeline of seven worker tasks, every one
// born pending. Status transitions belong entirely to the external worker
// runtime; nothing in this repository ever writes another status. Ordering
// is implicit via Priority rather than an explicit dependency graph - if
// workers need enforcement, that lives on their side.
package tasks

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Task Types - Fixed Refinement Pipeline
// =============================================================================

// Type identifies one of the seven fixed refinement task kinds.
type Type string

const (
	TypeExtractStructure      Type = "extract-structure"
	TypeApplyStyleGuide       Type = "apply-style-guide"
	TypeGenerateCode          Type = "generate-code"
	TypeGenerateVectorVariant Type = "generate-vector-variant"
	TypeValidateAccessibility Type = "validate-accessibility"
	TypeTestResponsive        Type = "test-responsive"
	TypeGenerateDocs          Type = "generate-docs"
)

// =============================================================================
// Status
// =============================================================================

// Status is the lifecycle state of a worker task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// =============================================================================
// Task
// =============================================================================

// Task is one unit of downstream refinement work.
type Task struct {
	ID          string         `json:"id" bson:"_id"`
	Type        Type           `json:"type" bson:"type"`
	ComponentID string         `json:"component_id" bson:"component_id"`
	Description string         `json:"description" bson:"description"`
	Priority    int            `json:"priority" bson:"priority"`
	Status      Status         `json:"status" bson:"status"`
	AssignedTo  string         `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
}

// newTask creates a pending task with a fresh id.
func newTask(t Type, componentID, description string, priority int, metadata map[string]any) Task {
	return Task{
		ID:          uuid.NewString(),
		Type:        t,
		ComponentID: componentID,
		Description: description,
		Priority:    priority,
		Status:      StatusPending,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}
}
