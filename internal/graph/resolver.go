package graph

import (
	"context"

	"catalogql/internal/domain"

	"go.uber.org/zap"
)

// Resolver is the root for both the Query and Mutation field sets.
//
// Database failures are swallowed at this boundary: single-entity
// lookups collapse to an absent value, collection reads and mutations
// collapse to an empty list, and the failure is logged server-side.
// Clients inspect the payload shape, not an error list, to detect
// these.
type Resolver struct {
	logger *zap.Logger
}

// ProductArgs carries the product lookup argument
type ProductArgs struct {
	ID string
}

// CountryArgs carries the country lookup argument
type CountryArgs struct {
	FullName string
}

// CreateProductArgs carries the createProduct mutation payload
type CreateProductArgs struct {
	Products []domain.ProductInput
}

// CreateCountryArgs carries the createCountry mutation payload
type CreateCountryArgs struct {
	Countries []domain.CountryInput
}

// APIVersion resolves the apiVersion field on both roots
func (r *Resolver) APIVersion() string {
	return APIVersion
}

// Product resolves a single product by id, best effort
func (r *Resolver) Product(ctx context.Context, args ProductArgs) *domain.Product {
	store := StoreFrom(ctx)
	if store == nil {
		r.logger.Error("no store bound to request context")
		return nil
	}

	product, err := store.GetProductByID(ctx, args.ID)
	if err != nil {
		r.logger.Warn("product lookup failed",
			zap.String("id", args.ID),
			zap.Error(err),
		)
		return nil
	}

	return product
}

// AllProducts resolves the full product listing
func (r *Resolver) AllProducts(ctx context.Context) []domain.Product {
	store := StoreFrom(ctx)
	if store == nil {
		r.logger.Error("no store bound to request context")
		return []domain.Product{}
	}

	products, err := store.GetProducts(ctx)
	if err != nil {
		r.logger.Error("product listing failed", zap.Error(err))
		return []domain.Product{}
	}

	return products
}

// Country resolves a single country by full name, best effort
func (r *Resolver) Country(ctx context.Context, args CountryArgs) *domain.Country {
	store := StoreFrom(ctx)
	if store == nil {
		r.logger.Error("no store bound to request context")
		return nil
	}

	country, err := store.GetCountryByFullName(ctx, args.FullName)
	if err != nil {
		r.logger.Warn("country lookup failed",
			zap.String("full_name", args.FullName),
			zap.Error(err),
		)
		return nil
	}

	return country
}

// AllCountries resolves the full country listing
func (r *Resolver) AllCountries(ctx context.Context) []domain.Country {
	store := StoreFrom(ctx)
	if store == nil {
		r.logger.Error("no store bound to request context")
		return []domain.Country{}
	}

	countries, err := store.GetCountries(ctx)
	if err != nil {
		r.logger.Error("country listing failed", zap.Error(err))
		return []domain.Country{}
	}

	return countries
}

// CreateProduct converts each input, assigning identities, inserts the
// batch and returns the resulting full table snapshot
func (r *Resolver) CreateProduct(ctx context.Context, args CreateProductArgs) []domain.Product {
	store := StoreFrom(ctx)
	if store == nil {
		r.logger.Error("no store bound to request context")
		return []domain.Product{}
	}

	products := make([]domain.Product, 0, len(args.Products))
	for _, in := range args.Products {
		products = append(products, in.ToProduct())
	}

	result, err := store.InsertProducts(ctx, products)
	if err != nil {
		r.logger.Error("product insert failed",
			zap.Int("count", len(products)),
			zap.Error(err),
		)
		return []domain.Product{}
	}

	return result
}

// CreateCountry inserts the country batch and returns the resulting
// full table snapshot
func (r *Resolver) CreateCountry(ctx context.Context, args CreateCountryArgs) []domain.Country {
	store := StoreFrom(ctx)
	if store == nil {
		r.logger.Error("no store bound to request context")
		return []domain.Country{}
	}

	countries := make([]domain.Country, 0, len(args.Countries))
	for _, in := range args.Countries {
		countries = append(countries, in.ToCountry())
	}

	result, err := store.InsertCountries(ctx, countries)
	if err != nil {
		r.logger.Error("country insert failed",
			zap.Int("count", len(countries)),
			zap.Error(err),
		)
		return []domain.Country{}
	}

	return result
}
