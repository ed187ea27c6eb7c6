package handler

import (
	"oliadmin/internal/usecase"
	"oliadmin/pkg/response"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	ID               string   `json:"id"`
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description"`
	Price            string   `json:"price" validate:"required"`
	Image            string   `json:"image"`
	AdditionalImages string   `json:"additional_images"`
	Highlighted      bool     `json:"highlighted"`
	Hidden           bool     `json:"hidden"`
	Categories       []string `json:"categories"`
	Size             string   `json:"size"`
	Material         string   `json:"material"`
	WallapopLink     string   `json:"wallapopLink" validate:"omitempty,url"`
	PriceOffers      string   `json:"priceOffers"`
}

func (req *productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		ID:               req.ID,
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		Image:            req.Image,
		AdditionalImages: req.AdditionalImages,
		Highlighted:      req.Highlighted,
		Hidden:           req.Hidden,
		Categories:       req.Categories,
		Size:             req.Size,
		Material:         req.Material,
		WallapopLink:     req.WallapopLink,
		PriceOffers:      req.PriceOffers,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUseCase.ListProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	product, err := h.productUseCase.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Product deleted",
	})
}
