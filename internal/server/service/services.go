// Package service implements the ownership-checked operations shared by both
// resource kinds. Every operation takes the decoded caller identity; reads
// and writes on a single record check that the record's owner matches the
// caller before anything is returned or mutated.
//
// Update is a non-atomic read-merge-write with no version token: two
// concurrent updates to the same record race and the later put wins in full.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"listkeeper/internal/server/identity"
	"listkeeper/internal/server/store"
	"listkeeper/internal/shared/models"
)

type Services struct {
	Todos *TodosService
	Notes *NotesService
}

func NewServices(st store.Store) *Services {
	return &Services{
		Todos: &TodosService{store: st},
		Notes: &NotesService{store: st},
	}
}

// TodosService performs CRUD on todos scoped to the caller.
type TodosService struct {
	store store.Store
}

func (s *TodosService) List(ctx context.Context, caller identity.Identity) ([]models.Todo, error) {
	return s.store.ListTodosByOwner(ctx, caller.UserID)
}

func (s *TodosService) Get(ctx context.Context, caller identity.Identity, id string) (models.Todo, error) {
	todo, err := s.store.GetTodo(ctx, id)
	if err != nil {
		return models.Todo{}, err
	}
	if todo.UserID != caller.UserID {
		return models.Todo{}, ErrForbidden
	}
	return todo, nil
}

func (s *TodosService) Create(ctx context.Context, caller identity.Identity, title string) (models.Todo, error) {
	if title == "" {
		return models.Todo{}, &ValidationError{Msg: "Title is required"}
	}
	todo := models.Todo{
		ID:        uuid.NewString(),
		UserID:    caller.UserID,
		Username:  caller.Username,
		Title:     title,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.PutTodo(ctx, todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *TodosService) Update(ctx context.Context, caller identity.Identity, id string, patch models.TodoPatch) (models.Todo, error) {
	todo, err := s.Get(ctx, caller, id)
	if err != nil {
		return models.Todo{}, err
	}
	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	if err := s.store.PutTodo(ctx, todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *TodosService) Delete(ctx context.Context, caller identity.Identity, id string) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	return s.store.DeleteTodo(ctx, id)
}

// NotesService performs CRUD on notes scoped to the caller.
type NotesService struct {
	store store.Store
}

func (s *NotesService) List(ctx context.Context, caller identity.Identity) ([]models.Note, error) {
	return s.store.ListNotesByOwner(ctx, caller.UserID)
}

func (s *NotesService) Get(ctx context.Context, caller identity.Identity, id string) (models.Note, error) {
	note, err := s.store.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, err
	}
	if note.UserID != caller.UserID {
		return models.Note{}, ErrForbidden
	}
	return note, nil
}

func (s *NotesService) Create(ctx context.Context, caller identity.Identity, content string) (models.Note, error) {
	if content == "" {
		return models.Note{}, &ValidationError{Msg: "Content is required"}
	}
	note := models.Note{
		ID:        uuid.NewString(),
		UserID:    caller.UserID,
		Username:  caller.Username,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.PutNote(ctx, note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NotesService) Update(ctx context.Context, caller identity.Identity, id string, patch models.NotePatch) (models.Note, error) {
	note, err := s.Get(ctx, caller, id)
	if err != nil {
		return models.Note{}, err
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if err := s.store.PutNote(ctx, note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (s *NotesService) Delete(ctx context.Context, caller identity.Identity, id string) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	return s.store.DeleteNote(ctx, id)
}
