package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"listkeeper/internal/server/httpapi"
	"listkeeper/internal/server/identity"
	"listkeeper/internal/server/service"
	"listkeeper/internal/server/store/sqlite"
	"listkeeper/internal/shared/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := sqlite.New("file:client_api?mode=memory&cache=shared", "todos", "notes")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	router := httpapi.NewRouter(service.NewServices(st), identity.NewDecoder(""), nil, 1<<20)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func mintToken(t *testing.T, sub, username string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "cognito:username": username}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestClientAgainstServer(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, mintToken(t, "u1", "alice"))

	todo, err := c.CreateTodo("buy milk")
	if err != nil {
		t.Fatal(err)
	}
	if todo.ID == "" || todo.UserID != "u1" || todo.Completed {
		t.Fatalf("create: %+v", todo)
	}

	todos, err := c.ListTodos()
	if err != nil || len(todos) != 1 {
		t.Fatalf("list: %v, %d items", err, len(todos))
	}

	completed := true
	updated, err := c.UpdateTodo(todo.ID, models.TodoPatch{Completed: &completed})
	if err != nil || !updated.Completed || updated.Title != "buy milk" {
		t.Fatalf("update: %+v, %v", updated, err)
	}

	note, err := c.CreateNote("remember")
	if err != nil || note.Content != "remember" {
		t.Fatalf("note create: %+v, %v", note, err)
	}
	if err := c.DeleteNote(note.ID); err != nil {
		t.Fatal(err)
	}

	if err := c.DeleteTodo(todo.ID); err != nil {
		t.Fatal(err)
	}
	if err := c.DeleteTodo(todo.ID); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("second delete: %v", err)
	}
}

func TestClientSurfacesServerMessages(t *testing.T) {
	srv := newTestServer(t)

	// foreign record access
	owner := New(srv.URL, mintToken(t, "owner", "alice"))
	todo, err := owner.CreateTodo("private")
	if err != nil {
		t.Fatal(err)
	}
	other := New(srv.URL, mintToken(t, "other", "bob"))
	if _, err := other.GetTodo(todo.ID); err == nil || !strings.Contains(err.Error(), "Access denied") {
		t.Fatalf("foreign get: %v", err)
	}

	// no token at all
	anon := New(srv.URL, "")
	if _, err := anon.ListTodos(); err == nil {
		t.Fatal("anonymous list succeeded")
	}
}
