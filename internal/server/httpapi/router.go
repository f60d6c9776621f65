package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"listkeeper/internal/server/identity"
	"listkeeper/internal/server/service"
)

type Router struct {
	services        *service.Services
	decoder         *identity.Decoder
	logger          *log.Logger
	maxRequestBytes int64
}

func NewRouter(services *service.Services, decoder *identity.Decoder, logger *log.Logger, maxRequestBytes int64) http.Handler {
	rt := &Router{services: services, decoder: decoder, logger: logger, maxRequestBytes: maxRequestBytes}
	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.Timeout(30 * time.Second))
	mux.Use(rt.corsMiddleware)

	mux.Get("/health", rt.handleHealth)

	mux.Route("/todos", func(r chi.Router) {
		r.Use(rt.authMiddleware)
		r.MethodNotAllowed(rt.handleUnsupportedMethod)
		r.Get("/", rt.handleListTodos)
		r.Post("/", rt.handleCreateTodo)
		r.Put("/", rt.handleMissingID("Todo"))
		r.Delete("/", rt.handleMissingID("Todo"))
		r.Get("/{id}", rt.handleGetTodo)
		r.Put("/{id}", rt.handleUpdateTodo)
		r.Delete("/{id}", rt.handleDeleteTodo)
	})

	mux.Route("/notes", func(r chi.Router) {
		r.Use(rt.authMiddleware)
		r.MethodNotAllowed(rt.handleUnsupportedMethod)
		r.Get("/", rt.handleListNotes)
		r.Post("/", rt.handleCreateNote)
		r.Put("/", rt.handleMissingID("Note"))
		r.Delete("/", rt.handleMissingID("Note"))
		r.Get("/{id}", rt.handleGetNote)
		r.Put("/{id}", rt.handleUpdateNote)
		r.Delete("/{id}", rt.handleDeleteNote)
	})

	return mux
}

func (rt *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	rt.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) handleUnsupportedMethod(w http.ResponseWriter, _ *http.Request) {
	rt.writeMessage(w, http.StatusBadRequest, "Unsupported method")
}

func (rt *Router) handleMissingID(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		rt.writeMessage(w, http.StatusBadRequest, resource+" ID is required")
	}
}
