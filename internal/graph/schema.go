package graph

import (
	"context"

	"catalogql/internal/repository"

	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

// APIVersion is the informational version constant exposed on both
// root field sets
const APIVersion = "0.1"

const schemaString = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		apiVersion: String!
		product(id: String!): Product
		allProducts: [Product!]!
		country(fullName: String!): Country
		allCountries: [Country!]!
	}

	type Mutation {
		apiVersion: String!
		createProduct(products: [ProductInput!]!): [Product!]!
		createCountry(countries: [CountryInput!]!): [Country!]!
	}

	type Product {
		id: String!
		name: String!
		price: Float!
		description: String
		country: String
	}

	input ProductInput {
		name: String!
		price: Float!
		description: String
		country: String
	}

	type Country {
		shortName: String!
		fullName: String!
		continent: String!
	}

	input CountryInput {
		shortName: String!
		fullName: String!
		continent: String!
	}
`

// Engine evaluates GraphQL operations against the catalog schema. The
// schema is parsed once at construction; the per-request store travels
// through the execution context.
type Engine struct {
	schema *graphql.Schema
}

// NewEngine parses the schema and binds the resolver root. Parse
// failures are programmer errors and panic at startup.
func NewEngine(logger *zap.Logger) *Engine {
	root := &Resolver{logger: logger}
	return &Engine{
		schema: graphql.MustParseSchema(schemaString, root, graphql.UseFieldResolvers()),
	}
}

// Execute evaluates one query or mutation string with the given store.
// A syntactically invalid operation produces a response whose error
// list is non-empty; field-level failures never fail the envelope.
func (e *Engine) Execute(ctx context.Context, query string, store repository.Store) *graphql.Response {
	return e.schema.Exec(WithStore(ctx, store), query, "", nil)
}
