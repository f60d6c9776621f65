// Package store defines the persistence contract for todo and note records.
//
// Records are addressed by their id alone; reads do not filter by owner so
// that the service layer can tell a missing record (404) apart from a
// record owned by someone else (403).
package store

import (
	"context"
	"errors"

	"listkeeper/internal/shared/models"
)

// ErrNotFound indicates no record exists at the requested id.
var ErrNotFound = errors.New("record not found")

// Store is a key-value table per resource kind. Put replaces the whole
// record; there is no concurrency token, the last writer wins.
type Store interface {
	GetTodo(ctx context.Context, id string) (models.Todo, error)
	PutTodo(ctx context.Context, todo models.Todo) error
	DeleteTodo(ctx context.Context, id string) error
	ListTodosByOwner(ctx context.Context, userID string) ([]models.Todo, error)

	GetNote(ctx context.Context, id string) (models.Note, error)
	PutNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, id string) error
	ListNotesByOwner(ctx context.Context, userID string) ([]models.Note, error)
}
