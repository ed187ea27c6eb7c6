package repository

import (
	"context"

	"oliadmin/internal/domain/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	SaveAll(ctx context.Context, categories []entity.Category) error
}
