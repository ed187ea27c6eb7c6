package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"oliadmin/internal/domain/entity"
	"oliadmin/internal/domain/repository"
	"oliadmin/pkg/errors"
)

// DefaultProductImage is used when a product is saved without a main image.
const DefaultProductImage = "resources/LOGO_SIN_FONDO.png"

const defaultMaterial = "PLA"

type ProductUseCase struct {
	productRepo repository.ProductRepository
	store       sync.Locker
}

func NewProductUseCase(productRepo repository.ProductRepository, store sync.Locker) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		store:       store,
	}
}

// ProductInput carries the raw form fields of the product editor. Numeric
// and multi-line fields arrive as text and are parsed here.
type ProductInput struct {
	ID               string
	Name             string
	Description      string
	Price            string
	Image            string
	AdditionalImages string
	Highlighted      bool
	Hidden           bool
	Categories       []string
	Size             string
	Material         string
	WallapopLink     string
	PriceOffers      string
}

func (uc *ProductUseCase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	return uc.productRepo.List(ctx)
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	id := normalizeID(input.ID)
	if id == "" {
		return nil, errors.BadRequest("Product id is required", nil)
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return nil, errors.DuplicateID("Product", id)
		}
	}

	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil {
		return nil, errors.InvalidField("price", err)
	}

	product := entity.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       &price,
		Highlighted: input.Highlighted,
		Categories:  input.Categories,
		Size:        input.Size,
		Material:    input.Material,
		CreatedAt:   time.Now().Format("2006-01-02"),
	}
	applyProductFields(&product, input)

	products = append(products, product)
	if err := uc.productRepo.SaveAll(ctx, products); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct mutates every field of an existing product except its id and
// creation date. Optional fields follow the same presence rules as create:
// clearing them removes the key from the persisted record.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.NotFound("Product", nil)
	}

	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil {
		return nil, errors.InvalidField("price", err)
	}

	product := &products[idx]
	product.Name = input.Name
	product.Description = input.Description
	product.Price = &price
	product.Highlighted = input.Highlighted
	product.Categories = input.Categories
	product.Size = input.Size
	product.Material = input.Material
	applyProductFields(product, input)

	if err := uc.productRepo.SaveAll(ctx, products); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product with the given id. Deleting an id that
// does not exist is a no-op.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) error {
	uc.store.Lock()
	defer uc.store.Unlock()

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return uc.productRepo.SaveAll(ctx, kept)
}

// applyProductFields fills the defaulted and presence-encoded fields shared
// by create and update.
func applyProductFields(product *entity.Product, input ProductInput) {
	if product.Categories == nil {
		product.Categories = []string{}
	}
	if product.Material == "" {
		product.Material = defaultMaterial
	}

	product.Image = input.Image
	if product.Image == "" {
		product.Image = DefaultProductImage
	}

	// The gallery only exists with more than one image, and its first entry
	// is always the main image.
	extras := ParseImageLines(input.AdditionalImages)
	if len(extras) > 0 {
		product.Images = append([]string{product.Image}, extras...)
	} else {
		product.Images = nil
	}

	product.Hidden = input.Hidden
	product.WallapopLink = input.WallapopLink

	offers, _ := ParsePriceOffers(input.PriceOffers)
	if len(offers) > 0 {
		product.PriceOffers = offers
	} else {
		product.PriceOffers = nil
	}
}
