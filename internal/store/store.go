// Package store persists checklist tasks. Two backends share one schema:
// PostgreSQL for deployments and an embedded SQLite file for single-node
// setups and tests.
package store

import (
	"context"
	"errors"

	"github.com/adanyl0v/checklist/internal/models"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrUnboundedDelete = errors.New("delete requires a subject or task id")
	ErrDuplicateTitle  = errors.New("duplicate personalized task title")
	ErrInvalidTask     = errors.New("invalid task")
)

// Filter narrows List and Delete. Zero fields match everything.
type Filter struct {
	ID           string
	SubjectID    string
	Personalized *bool
	Custom       *bool
	Category     string
	Status       models.Status
	// ExceptGeneration excludes records written by the given generation.
	ExceptGeneration string
}

// UpdateFields is a partial update. Nil fields are left unchanged.
type UpdateFields struct {
	Title       *string
	Description *string
	Category    *models.Category
	Status      *models.Status
}

func (f UpdateFields) Empty() bool {
	return f.Title == nil && f.Description == nil && f.Category == nil && f.Status == nil
}

type Store interface {
	// List returns personalized tasks in generation order followed by
	// custom tasks in creation order.
	List(ctx context.Context, filter Filter) ([]*models.Task, error)

	// Get returns ErrTaskNotFound if the subject has no task with id.
	Get(ctx context.Context, subjectID, id string) (*models.Task, error)

	// Insert stores tasks in one statement. Missing ids and timestamps are
	// filled in place.
	Insert(ctx context.Context, tasks []*models.Task) error

	Update(ctx context.Context, subjectID, id string, fields UpdateFields) (*models.Task, error)

	// Delete removes matching tasks and returns how many were removed. A
	// filter without SubjectID or ID returns ErrUnboundedDelete.
	Delete(ctx context.Context, filter Filter) (int64, error)

	Close() error
}

// Replacer is implemented by stores that can swap the personalized tasks
// of a subject atomically.
type Replacer interface {
	ReplacePersonalized(ctx context.Context, subjectID string, tasks []*models.Task) (int64, error)
}

func Bool(v bool) *bool {
	return &v
}
