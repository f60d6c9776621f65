package httpapi

import (
	"context"
	"net/http"

	"listkeeper/internal/server/identity"
)

type contextKey string

const callerContextKey contextKey = "caller"

// corsMiddleware stamps the fixed CORS header set on every response and
// answers all OPTIONS requests immediately, before authentication runs.
func (rt *Router) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h := w.Header()
		h.Set("Content-Type", "application/json")
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		h.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// authMiddleware runs for every method except OPTIONS (already handled by
// the CORS middleware) and for unsupported methods too, since routing
// happens after it.
func (rt *Router) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		caller, err := rt.decoder.FromRequest(req)
		if err != nil {
			rt.writeMessage(w, http.StatusUnauthorized, err.Error())
			return
		}
		ctx := context.WithValue(req.Context(), callerContextKey, caller)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

func caller(ctx context.Context) identity.Identity {
	if v := ctx.Value(callerContextKey); v != nil {
		if id, ok := v.(identity.Identity); ok {
			return id
		}
	}
	return identity.Identity{}
}
