package usecase

import (
	"context"
	"sync"

	"oliadmin/internal/domain/entity"
	"oliadmin/internal/domain/repository"
	"oliadmin/pkg/errors"
)

const defaultCategoryIcon = "📦"

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	store        sync.Locker
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository, store sync.Locker) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		store:        store,
	}
}

type CategoryInput struct {
	ID       string
	Name     string
	Icon     string
	Popular  bool
	Seasonal bool
	Hidden   bool
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]entity.Category, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	return uc.categoryRepo.List(ctx)
}

func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	id := normalizeID(input.ID)
	if id == "" {
		return nil, errors.BadRequest("Category id is required", nil)
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID == id {
			return nil, errors.DuplicateID("Category", id)
		}
	}

	category := entity.Category{
		ID:      id,
		Name:    input.Name,
		Icon:    input.Icon,
		Popular: input.Popular,
	}
	applyCategoryFields(&category, input)

	categories = append(categories, category)
	if err := uc.categoryRepo.SaveAll(ctx, categories); err != nil {
		return nil, err
	}
	return &category, nil
}

func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*entity.Category, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range categories {
		if categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.NotFound("Category", nil)
	}

	category := &categories[idx]
	category.Name = input.Name
	category.Icon = input.Icon
	category.Popular = input.Popular
	applyCategoryFields(category, input)

	if err := uc.categoryRepo.SaveAll(ctx, categories); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category by id; the reserved "all" category is
// protected. Products referencing the deleted category keep their dangling
// reference, which the next validation reports.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if id == entity.ReservedCategoryID {
		return errors.Forbidden("La categoría 'all' no se puede eliminar", nil)
	}

	uc.store.Lock()
	defer uc.store.Unlock()

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return uc.categoryRepo.SaveAll(ctx, kept)
}

func applyCategoryFields(category *entity.Category, input CategoryInput) {
	if category.Icon == "" {
		category.Icon = defaultCategoryIcon
	}
	category.Seasonal = input.Seasonal
	category.Hidden = input.Hidden
}
