package graph

import (
	"context"

	"catalogql/internal/repository"
)

type storeKey struct{}

// WithStore binds a request-scoped store to the context so resolvers
// can reach it during execution
func WithStore(ctx context.Context, store repository.Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// StoreFrom extracts the request-scoped store, or nil if none is bound
func StoreFrom(ctx context.Context) repository.Store {
	store, _ := ctx.Value(storeKey{}).(repository.Store)
	return store
}
