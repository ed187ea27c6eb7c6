package repository

import (
	"context"

	"oliadmin/internal/domain/entity"
	"oliadmin/internal/domain/repository"
	"oliadmin/internal/infrastructure/jsonstore"
	"oliadmin/pkg/errors"
)

type jsonFileCategoryRepository struct {
	store *jsonstore.Store
}

func NewJSONFileCategoryRepository(store *jsonstore.Store) repository.CategoryRepository {
	return &jsonFileCategoryRepository{
		store: store,
	}
}

func (r *jsonFileCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	categories := []entity.Category{}
	if err := r.store.LoadCollection("categories", &categories); err != nil {
		return nil, errors.Internal("Failed to load categories", err)
	}
	return categories, nil
}

func (r *jsonFileCategoryRepository) SaveAll(ctx context.Context, categories []entity.Category) error {
	if categories == nil {
		categories = []entity.Category{}
	}
	if err := r.store.SaveCollection("categories", categories); err != nil {
		return errors.Internal("Failed to save categories", err)
	}
	return nil
}
