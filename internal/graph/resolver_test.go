package graph

import (
	"context"
	"encoding/json"
	"testing"

	"catalogql/internal/apperr"
	"catalogql/internal/domain"
	"catalogql/internal/repository"

	"go.uber.org/zap"
)

// Mock store for testing resolvers without a database
type mockStore struct {
	products  []domain.Product
	countries []domain.Country
	failing   bool
}

func (m *mockStore) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if m.failing {
		return nil, apperr.DB("store unavailable")
	}
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, apperr.Logic("no product with id " + id + " found")
}

func (m *mockStore) GetProducts(ctx context.Context) ([]domain.Product, error) {
	if m.failing {
		return nil, apperr.DB("store unavailable")
	}
	return m.products, nil
}

func (m *mockStore) InsertProducts(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	if m.failing {
		return nil, apperr.DB("store unavailable")
	}
	m.products = append(m.products, products...)
	return m.GetProducts(ctx)
}

func (m *mockStore) GetCountryByFullName(ctx context.Context, fullName string) (*domain.Country, error) {
	if m.failing {
		return nil, apperr.DB("store unavailable")
	}
	for i := range m.countries {
		if m.countries[i].FullName == fullName {
			return &m.countries[i], nil
		}
	}
	return nil, apperr.Logic("no country named " + fullName + " found")
}

func (m *mockStore) GetCountries(ctx context.Context) ([]domain.Country, error) {
	if m.failing {
		return nil, apperr.DB("store unavailable")
	}
	return m.countries, nil
}

func (m *mockStore) InsertCountries(ctx context.Context, countries []domain.Country) ([]domain.Country, error) {
	if m.failing {
		return nil, apperr.DB("store unavailable")
	}
	m.countries = append(m.countries, countries...)
	return m.GetCountries(ctx)
}

func execute(t *testing.T, store repository.Store, query string) (map[string]any, int) {
	t.Helper()

	engine := NewEngine(zap.NewNop())
	resp := engine.Execute(context.Background(), query, store)

	if len(resp.Errors) > 0 {
		return nil, len(resp.Errors)
	}

	var data map[string]any
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("failed to decode response data: %v", err)
	}
	return data, 0
}

func strPtr(s string) *string {
	return &s
}

func TestAPIVersionField(t *testing.T) {
	data, errCount := execute(t, &mockStore{}, `{ apiVersion }`)

	if errCount != 0 {
		t.Fatalf("expected no errors, got %d", errCount)
	}
	if data["apiVersion"] != "0.1" {
		t.Errorf("apiVersion = %v, want 0.1", data["apiVersion"])
	}
}

func TestProductLookupFound(t *testing.T) {
	store := &mockStore{products: []domain.Product{
		{ID: "p-1", Name: "Widget", Price: 9.99, Description: strPtr("x")},
	}}

	data, errCount := execute(t, store, `{ product(id: "p-1") { id name price description country } }`)

	if errCount != 0 {
		t.Fatalf("expected no errors, got %d", errCount)
	}

	product, ok := data["product"].(map[string]any)
	if !ok {
		t.Fatalf("product field missing or wrong shape: %v", data)
	}
	if product["id"] != "p-1" || product["name"] != "Widget" || product["price"] != 9.99 {
		t.Errorf("unexpected product payload: %v", product)
	}
	if product["description"] != "x" {
		t.Errorf("description = %v, want x", product["description"])
	}
	if product["country"] != nil {
		t.Errorf("country = %v, want null", product["country"])
	}
}

func TestProductLookupNotFoundCollapsesToNull(t *testing.T) {
	data, errCount := execute(t, &mockStore{}, `{ product(id: "nonexistent") { id } }`)

	if errCount != 0 {
		t.Fatalf("expected no errors, got %d", errCount)
	}
	if data["product"] != nil {
		t.Errorf("product = %v, want null", data["product"])
	}
}

func TestProductLookupDatabaseErrorCollapsesToNull(t *testing.T) {
	data, errCount := execute(t, &mockStore{failing: true}, `{ product(id: "p-1") { id } }`)

	if errCount != 0 {
		t.Fatalf("database failure must not surface as execution error, got %d", errCount)
	}
	if data["product"] != nil {
		t.Errorf("product = %v, want null", data["product"])
	}
}

func TestAllProductsSwallowsErrorsIntoEmptyList(t *testing.T) {
	data, errCount := execute(t, &mockStore{failing: true}, `{ allProducts { id } }`)

	if errCount != 0 {
		t.Fatalf("expected no errors, got %d", errCount)
	}

	products, ok := data["allProducts"].([]any)
	if !ok {
		t.Fatalf("allProducts missing or wrong shape: %v", data)
	}
	if len(products) != 0 {
		t.Errorf("allProducts = %v, want empty list", products)
	}
}

func TestCreateProductAssignsIdentitiesAndReturnsSnapshot(t *testing.T) {
	store := &mockStore{products: []domain.Product{
		{ID: "existing", Name: "Old", Price: 1},
	}}

	data, errCount := execute(t, store,
		`mutation { createProduct(products: [{name: "Widget", price: 9.99, description: "x"}]) { id name price } }`)

	if errCount != 0 {
		t.Fatalf("expected no errors, got %d", errCount)
	}

	products, ok := data["createProduct"].([]any)
	if !ok {
		t.Fatalf("createProduct missing or wrong shape: %v", data)
	}

	// Full table snapshot: the pre-existing row plus the inserted one
	if len(products) != 2 {
		t.Fatalf("expected full snapshot of 2 products, got %d", len(products))
	}

	inserted := products[1].(map[string]any)
	if inserted["name"] != "Widget" || inserted["price"] != 9.99 {
		t.Errorf("unexpected inserted product: %v", inserted)
	}
	id, _ := inserted["id"].(string)
	if len(id) != 36 {
		t.Errorf("inserted id %q is not a canonical UUID", id)
	}
}

func TestCreateProductErrorCollapsesToEmptyList(t *testing.T) {
	data, errCount := execute(t, &mockStore{failing: true},
		`mutation { createProduct(products: [{name: "Widget", price: 9.99}]) { id } }`)

	if errCount != 0 {
		t.Fatalf("expected no errors, got %d", errCount)
	}

	products, ok := data["createProduct"].([]any)
	if !ok || len(products) != 0 {
		t.Errorf("createProduct = %v, want empty list", data["createProduct"])
	}
}

func TestCountryLookupAndListing(t *testing.T) {
	store := &mockStore{countries: []domain.Country{
		{ShortName: "de", FullName: "Germany", Continent: "Europe"},
	}}

	data, errCount := execute(t, store, `{ country(fullName: "Germany") { shortName fullName continent } }`)
	if errCount != 0 {
		t.Fatalf("expected no errors, got %d", errCount)
	}

	country, ok := data["country"].(map[string]any)
	if !ok {
		t.Fatalf("country missing or wrong shape: %v", data)
	}
	if country["shortName"] != "de" || country["continent"] != "Europe" {
		t.Errorf("unexpected country payload: %v", country)
	}

	data, errCount = execute(t, store, `{ allCountries { shortName } }`)
	if errCount != 0 {
		t.Fatalf("expected no errors, got %d", errCount)
	}
	if countries, ok := data["allCountries"].([]any); !ok || len(countries) != 1 {
		t.Errorf("allCountries = %v, want one entry", data["allCountries"])
	}
}

func TestCreateCountryIsPureCopy(t *testing.T) {
	data, errCount := execute(t, &mockStore{},
		`mutation { createCountry(countries: [{shortName: "de", fullName: "Germany", continent: "Europe"}]) { shortName fullName continent } }`)

	if errCount != 0 {
		t.Fatalf("expected no errors, got %d", errCount)
	}

	countries, ok := data["createCountry"].([]any)
	if !ok || len(countries) != 1 {
		t.Fatalf("createCountry = %v, want one entry", data["createCountry"])
	}

	country := countries[0].(map[string]any)
	if country["shortName"] != "de" || country["fullName"] != "Germany" || country["continent"] != "Europe" {
		t.Errorf("unexpected country payload: %v", country)
	}
}

func TestInvalidQueryYieldsErrors(t *testing.T) {
	_, errCount := execute(t, &mockStore{}, `{ nope`)

	if errCount == 0 {
		t.Error("expected errors for a syntactically invalid query")
	}
}

func TestEmptyOperationIsRejected(t *testing.T) {
	_, errCount := execute(t, &mockStore{}, "")

	if errCount == 0 {
		t.Error("expected errors for an empty operation")
	}
}

func TestResolverWithoutStoreReturnsEmpty(t *testing.T) {
	r := &Resolver{logger: zap.NewNop()}

	if got := r.AllProducts(context.Background()); len(got) != 0 {
		t.Errorf("AllProducts without store = %v, want empty list", got)
	}
	if got := r.Product(context.Background(), ProductArgs{ID: "p-1"}); got != nil {
		t.Errorf("Product without store = %v, want nil", got)
	}
}
