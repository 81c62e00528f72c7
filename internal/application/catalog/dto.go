package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput contains input for creating a product
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *uuid.UUID
	ImageURL    string
	Stock       int
}

// UpdateProductInput contains input for updating a product
type UpdateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *uuid.UUID
	ImageURL    string
	Stock       int
	Active      bool
}

// CreateCategoryInput contains input for creating a category
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput contains input for updating a category
type UpdateCategoryInput struct {
	Name        string
	Description string
}
