package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"listkeeper/internal/shared/models"
)

type createNoteRequest struct {
	Content string `json:"content"`
}

func (rt *Router) handleListNotes(w http.ResponseWriter, req *http.Request) {
	notes, err := rt.services.Notes.List(req.Context(), caller(req.Context()))
	if err != nil {
		rt.writeOpError(w, "Note", err)
		return
	}
	rt.writeJSON(w, http.StatusOK, notes)
}

func (rt *Router) handleGetNote(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	note, err := rt.services.Notes.Get(req.Context(), caller(req.Context()), id)
	if err != nil {
		rt.writeOpError(w, "Note", err)
		return
	}
	rt.writeJSON(w, http.StatusOK, note)
}

func (rt *Router) handleCreateNote(w http.ResponseWriter, req *http.Request) {
	var body createNoteRequest
	if err := rt.decodeBody(w, req, &body); err != nil {
		rt.writeOpError(w, "Note", err)
		return
	}
	note, err := rt.services.Notes.Create(req.Context(), caller(req.Context()), body.Content)
	if err != nil {
		rt.writeOpError(w, "Note", err)
		return
	}
	rt.writeJSON(w, http.StatusCreated, note)
}

func (rt *Router) handleUpdateNote(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	var patch models.NotePatch
	if err := rt.decodeBody(w, req, &patch); err != nil {
		rt.writeOpError(w, "Note", err)
		return
	}
	note, err := rt.services.Notes.Update(req.Context(), caller(req.Context()), id, patch)
	if err != nil {
		rt.writeOpError(w, "Note", err)
		return
	}
	rt.writeJSON(w, http.StatusOK, note)
}

func (rt *Router) handleDeleteNote(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")
	if err := rt.services.Notes.Delete(req.Context(), caller(req.Context()), id); err != nil {
		rt.writeOpError(w, "Note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
