package repository

import (
	"context"

	"oliadmin/internal/domain/entity"
)

type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	SaveAll(ctx context.Context, products []entity.Product) error
}
