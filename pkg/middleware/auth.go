package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"pennyledger/pkg/session"
)

var noSessUrls = map[string]string{
	"/sign-up": http.MethodPost,
	"/sign-in": http.MethodPost,
}

// CheckSession guards every route not listed in noSessUrls. The authorization
// header carries the raw session token, no "Bearer " scheme. Missing and
// unrecognized tokens produce the same 401 body.
func CheckSession(sessions session.Repository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := mux.CurrentRoute(r)
			template, err := route.GetPathTemplate()

			if err != nil {
				http.Error(w, "Route not found", http.StatusNotFound)
				return
			}

			if method, ok := noSessUrls[template]; ok && method == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			token := r.Header.Get("Authorization")
			if token == "" {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			userID, err := sessions.Resolve(token)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
					return
				}
				logger.Error("session resolve", "error", err)
				http.Error(w, `{"message":"internal server error"}`, http.StatusInternalServerError)
				return
			}

			ctx := session.ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
