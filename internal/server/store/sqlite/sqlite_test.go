package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"listkeeper/internal/server/store"
	"listkeeper/internal/shared/models"
)

func newTestStore(t *testing.T, name string) *Store {
	t.Helper()
	st, err := New("file:"+name+"?mode=memory&cache=shared", "todos", "notes")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestNew_RejectsBadTableName(t *testing.T) {
	if _, err := New("file::memory:", "todos; DROP TABLE x", "notes"); err == nil {
		t.Fatal("expected error for bad table name")
	}
	if _, err := New("file::memory:", "todos", "notes--"); err == nil {
		t.Fatal("expected error for bad table name")
	}
}

func TestTodoCRUD(t *testing.T) {
	st := newTestStore(t, "store_todo_crud")
	ctx := context.Background()

	todo := models.Todo{
		ID:        "t1",
		UserID:    "u1",
		Username:  "alice",
		Title:     "buy milk",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := st.PutTodo(ctx, todo); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetTodo(ctx, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "buy milk" || got.UserID != "u1" || got.Username != "alice" || got.Completed {
		t.Fatalf("got %+v", got)
	}

	// put on the same id replaces the row
	todo.Completed = true
	todo.Title = "buy oat milk"
	if err := st.PutTodo(ctx, todo); err != nil {
		t.Fatal(err)
	}
	got, err = st.GetTodo(ctx, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Completed || got.Title != "buy oat milk" {
		t.Fatalf("after replace: %+v", got)
	}

	if err := st.DeleteTodo(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := st.GetTodo(ctx, "t1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("get after delete: %v", err)
	}
	if err := st.DeleteTodo(ctx, "t1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestListTodosByOwner(t *testing.T) {
	st := newTestStore(t, "store_todo_list")
	ctx := context.Background()
	now := time.Now().UTC()

	for _, todo := range []models.Todo{
		{ID: "a", UserID: "u1", Username: "alice", Title: "one", CreatedAt: now},
		{ID: "b", UserID: "u1", Username: "alice", Title: "two", CreatedAt: now},
		{ID: "c", UserID: "u2", Username: "bob", Title: "theirs", CreatedAt: now},
	} {
		if err := st.PutTodo(ctx, todo); err != nil {
			t.Fatal(err)
		}
	}

	mine, err := st.ListTodosByOwner(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 {
		t.Fatalf("want 2 todos, got %d", len(mine))
	}
	for _, todo := range mine {
		if todo.UserID != "u1" {
			t.Fatalf("foreign todo in listing: %+v", todo)
		}
	}

	// empty result is an empty array, not nil
	none, err := st.ListTodosByOwner(ctx, "u3")
	if err != nil {
		t.Fatal(err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("want empty slice, got %#v", none)
	}
}

func TestNoteCRUD(t *testing.T) {
	st := newTestStore(t, "store_note_crud")
	ctx := context.Background()

	note := models.Note{
		ID:        "n1",
		UserID:    "u1",
		Username:  "alice",
		Content:   "remember this",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := st.PutNote(ctx, note); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetNote(ctx, "n1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "remember this" || got.UserID != "u1" {
		t.Fatalf("got %+v", got)
	}

	list, err := st.ListNotesByOwner(ctx, "u1")
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v, %d items", err, len(list))
	}

	if err := st.DeleteNote(ctx, "n1"); err != nil {
		t.Fatal(err)
	}
	if err := st.DeleteNote(ctx, "n1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}
