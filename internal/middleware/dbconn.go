package middleware

import (
	"context"
	"net/http"

	"catalogql/internal/database"
	"catalogql/internal/repository"

	"go.uber.org/zap"
)

type storeKey struct{}

// DatabaseConn acquires one pooled connection before the handler runs
// and releases it after, on every exit path. The wrapped handler finds
// the connection via StoreFrom. Acquisition failure ends the request
// with 503 without invoking the handler.
func DatabaseConn(db *database.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler, err := db.Acquire(r.Context())
			if err != nil {
				logger.Error("Failed to acquire database connection", zap.Error(err))
				RespondWithError(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
			defer handler.Release()

			next.ServeHTTP(w, r.WithContext(WithStore(r.Context(), handler)))
		})
	}
}

// WithStore binds a store to the request context. Exposed so tests can
// substitute a fake store for the pooled handler.
func WithStore(ctx context.Context, store repository.Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// StoreFrom returns the store bound to the request context, or nil
func StoreFrom(ctx context.Context) repository.Store {
	store, _ := ctx.Value(storeKey{}).(repository.Store)
	return store
}
