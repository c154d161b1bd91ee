package domain

import (
	"github.com/google/uuid"
)

// Product represents a persisted product in the catalog
type Product struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Price       float64 `json:"price" db:"price"`
	Description *string `json:"description,omitempty" db:"description"`
	Country     *string `json:"country,omitempty" db:"country"`
}

// ProductInput is the client-supplied payload for product creation. It
// is never persisted directly; the identity is assigned server-side.
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
	Country     *string `json:"country,omitempty"`
}

// ToProduct builds a Product from the input, assigning a fresh UUID.
// The id is generated exactly once here and is immutable thereafter.
func (in ProductInput) ToProduct() Product {
	return Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Country:     in.Country,
	}
}
