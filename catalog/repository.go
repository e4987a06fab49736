package catalog

import (
	"context"
	"errors"

	"medivance-backend/models"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrDuplicateID         = errors.New("product id already exists")
	ErrProductNameRequired = errors.New("product name is required")
	ErrInvalidCategory     = errors.New("unknown product category")
	ErrTypeRequired        = errors.New("product type is required")
	ErrInvalidStatus       = errors.New("product status must be active or inactive")
)

// Repository persists the ordered product collection.
type Repository interface {
	// ListAll returns every product in catalog order.
	ListAll(ctx context.Context) ([]models.Product, error)
	Find(ctx context.Context, id int64) (*models.Product, error)
	// Insert appends a new product and fails with ErrDuplicateID if the id is taken.
	Insert(ctx context.Context, p *models.Product) error
	// Replace overwrites an existing product in place.
	Replace(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int64) error
}
