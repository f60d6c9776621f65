package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"listkeeper/internal/shared/models"
)

type createTodoRequest struct {
	Title string `json:"title"`
}

func (rt *Router) handleListTodos(w http.ResponseWriter, req *http.Request) {
	todos, err := rt.services.Todos.List(req.Context(), caller(req.Context()))
	if err != nil {
		rt.writeOpError(w, "Todo", err)
		return
	}
	rt.writeJSON(w, http.StatusOK, todos)
}

func (rt *Router) handleGetTodo(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	todo, err := rt.services.Todos.Get(req.Context(), caller(req.Context()), id)
	if err != nil {
		rt.writeOpError(w, "Todo", err)
		return
	}
	rt.writeJSON(w, http.StatusOK, todo)
}

func (rt *Router) handleCreateTodo(w http.ResponseWriter, req *http.Request) {
	var body createTodoRequest
	if err := rt.decodeBody(w, req, &body); err != nil {
		rt.writeOpError(w, "Todo", err)
		return
	}
	todo, err := rt.services.Todos.Create(req.Context(), caller(req.Context()), body.Title)
	if err != nil {
		rt.writeOpError(w, "Todo", err)
		return
	}
	rt.writeJSON(w, http.StatusCreated, todo)
}

func (rt *Router) handleUpdateTodo(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	var patch models.TodoPatch
	if err := rt.decodeBody(w, req, &patch); err != nil {
		rt.writeOpError(w, "Todo", err)
		return
	}
	todo, err := rt.services.Todos.Update(req.Context(), caller(req.Context()), id, patch)
	if err != nil {
		rt.writeOpError(w, "Todo", err)
		return
	}
	rt.writeJSON(w, http.StatusOK, todo)
}

func (rt *Router) handleDeleteTodo(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	if err := rt.services.Todos.Delete(req.Context(), caller(req.Context()), id); err != nil {
		rt.writeOpError(w, "Todo", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeBody parses a JSON request body. A body the client got wrong ends
// up as a 500 through writeOpError, matching the reference behavior of
// treating parse failures as unexpected errors. Oversized bodies are the
// one case reported distinctly.
func (rt *Router) decodeBody(w http.ResponseWriter, req *http.Request, dst any) error {
	if rt.maxRequestBytes > 0 {
		req.Body = http.MaxBytesReader(w, req.Body, rt.maxRequestBytes)
	}
	return json.NewDecoder(req.Body).Decode(dst)
}
