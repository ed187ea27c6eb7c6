package repository

import (
	"context"

	"oliadmin/internal/domain/entity"
	"oliadmin/internal/domain/repository"
	"oliadmin/internal/infrastructure/jsonstore"
	"oliadmin/pkg/errors"
)

type jsonFileProductRepository struct {
	store *jsonstore.Store
}

func NewJSONFileProductRepository(store *jsonstore.Store) repository.ProductRepository {
	return &jsonFileProductRepository{
		store: store,
	}
}

func (r *jsonFileProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	products := []entity.Product{}
	if err := r.store.LoadCollection("products", &products); err != nil {
		return nil, errors.Internal("Failed to load products", err)
	}
	return products, nil
}

func (r *jsonFileProductRepository) SaveAll(ctx context.Context, products []entity.Product) error {
	if products == nil {
		products = []entity.Product{}
	}
	if err := r.store.SaveCollection("products", products); err != nil {
		return errors.Internal("Failed to save products", err)
	}
	return nil
}
