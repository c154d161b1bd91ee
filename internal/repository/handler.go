package repository

import (
	"context"

	"catalogql/internal/apperr"
	"catalogql/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectProducts    = `SELECT id, name, price, description, country FROM products`
	selectProductByID = `SELECT id, name, price, description, country FROM products WHERE id = $1`
	insertProduct     = `INSERT INTO products (id, name, price, description, country) VALUES ($1, $2, $3, $4, $5)`

	selectCountries         = `SELECT short_name, full_name, continent FROM countries`
	selectCountryByFullName = `SELECT short_name, full_name, continent FROM countries WHERE full_name = $1`
	insertCountry           = `INSERT INTO countries (short_name, full_name, continent) VALUES ($1, $2, $3)`
)

// Handler wraps one pool-acquired connection for the duration of a
// single request and exposes the CRUD operations for each entity type.
type Handler struct {
	conn *pgxpool.Conn
}

var _ Store = (*Handler)(nil)

// NewHandler creates a Handler around an acquired connection
func NewHandler(conn *pgxpool.Conn) *Handler {
	return &Handler{conn: conn}
}

// Release returns the underlying connection to the pool. It must be
// called exactly once, on every exit path of the owning request.
func (h *Handler) Release() {
	h.conn.Release()
}

// GetProductByID reads a single product by primary key. Zero rows is a
// not-found logic error; more than one row should be structurally
// impossible but is checked and reported rather than silently taking
// the first row.
func (h *Handler) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	rows, err := h.conn.Query(ctx, selectProductByID, id)
	if err != nil {
		return nil, apperr.DBf("could not select product by id: %v", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Product])
	if err != nil {
		return nil, apperr.DBf("could not scan product row: %v", err)
	}

	switch {
	case len(products) == 0:
		return nil, apperr.Logic("no product with id " + id + " found")
	case len(products) > 1:
		return nil, apperr.Logic("multiple products with id " + id)
	}

	return &products[0], nil
}

// GetProducts reads the whole products table, unordered. An empty
// table yields an empty list, never an error.
func (h *Handler) GetProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := h.conn.Query(ctx, selectProducts)
	if err != nil {
		return nil, apperr.DBf("could not select all products: %v", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Product])
	if err != nil {
		return nil, apperr.DBf("could not scan product rows: %v", err)
	}

	return products, nil
}

// InsertProducts inserts fully-formed products (identities already
// assigned) in one batch and returns the full table contents on
// success. On insert failure the read is not attempted.
func (h *Handler) InsertProducts(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(insertProduct, p.ID, p.Name, p.Price, p.Description, p.Country)
	}

	if err := h.conn.SendBatch(ctx, batch).Close(); err != nil {
		return nil, apperr.DBf("could not insert products: %v", err)
	}

	return h.GetProducts(ctx)
}

// GetCountryByFullName reads a single country by its full name, with
// the same zero-row and duplicate-row checks as a key lookup.
func (h *Handler) GetCountryByFullName(ctx context.Context, fullName string) (*domain.Country, error) {
	rows, err := h.conn.Query(ctx, selectCountryByFullName, fullName)
	if err != nil {
		return nil, apperr.DBf("could not select country by full name: %v", err)
	}

	countries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Country])
	if err != nil {
		return nil, apperr.DBf("could not scan country row: %v", err)
	}

	switch {
	case len(countries) == 0:
		return nil, apperr.Logic("no country named " + fullName + " found")
	case len(countries) > 1:
		return nil, apperr.Logic("multiple countries named " + fullName)
	}

	return &countries[0], nil
}

// GetCountries reads the whole countries table, unordered
func (h *Handler) GetCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := h.conn.Query(ctx, selectCountries)
	if err != nil {
		return nil, apperr.DBf("could not select all countries: %v", err)
	}

	countries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Country])
	if err != nil {
		return nil, apperr.DBf("could not scan country rows: %v", err)
	}

	return countries, nil
}

// InsertCountries inserts countries in one batch and returns the full
// table contents on success
func (h *Handler) InsertCountries(ctx context.Context, countries []domain.Country) ([]domain.Country, error) {
	batch := &pgx.Batch{}
	for _, c := range countries {
		batch.Queue(insertCountry, c.ShortName, c.FullName, c.Continent)
	}

	if err := h.conn.SendBatch(ctx, batch).Close(); err != nil {
		return nil, apperr.DBf("could not insert countries: %v", err)
	}

	return h.GetCountries(ctx)
}
