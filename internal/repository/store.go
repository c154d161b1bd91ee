package repository

import (
	"context"

	"catalogql/internal/domain"
)

// Store is the capability set a GraphQL resolver needs from the
// database layer. Handler implements it over a pooled connection;
// tests implement it with in-memory fakes.
//
// Insert operations return the full current table contents on success,
// not just the inserted rows. That read-after-write contract is part of
// the public API and must be preserved.
type Store interface {
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetProducts(ctx context.Context) ([]domain.Product, error)
	InsertProducts(ctx context.Context, products []domain.Product) ([]domain.Product, error)

	GetCountryByFullName(ctx context.Context, fullName string) (*domain.Country, error)
	GetCountries(ctx context.Context) ([]domain.Country, error)
	InsertCountries(ctx context.Context, countries []domain.Country) ([]domain.Country, error)
}
