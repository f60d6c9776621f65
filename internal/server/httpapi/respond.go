package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"listkeeper/internal/server/service"
	"listkeeper/internal/server/store"
)

func (rt *Router) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && rt.logger != nil {
		rt.logger.Printf("json encode error: %v", err)
	}
}

func (rt *Router) writeMessage(w http.ResponseWriter, status int, msg string) {
	rt.writeJSON(w, status, map[string]string{"message": msg})
}

// writeOpError is the single place operation failures are mapped to HTTP
// status codes. Anything unrecognized (persistence failure, malformed
// request body) becomes a 500 with a generic message; the detail is logged,
// never returned.
func (rt *Router) writeOpError(w http.ResponseWriter, resource string, err error) {
	var verr *service.ValidationError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &verr):
		rt.writeMessage(w, http.StatusBadRequest, verr.Msg)
	case errors.As(err, &maxErr):
		rt.writeMessage(w, http.StatusRequestEntityTooLarge, "request entity too large")
	case errors.Is(err, service.ErrForbidden):
		rt.writeMessage(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, store.ErrNotFound):
		rt.writeMessage(w, http.StatusNotFound, resource+" not found")
	default:
		if rt.logger != nil {
			rt.logger.Printf("internal error: %v", err)
		}
		rt.writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
