package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/merchhub/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

type ProductCatalog interface {
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
}
