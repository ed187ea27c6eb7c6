package service

import (
	"fmt"

	"oliadmin/internal/domain/entity"
)

// ValidationReport is the result of a full catalog consistency check.
// Warnings are advisory; only Errors block a checkpoint.
type ValidationReport struct {
	Valid         bool     `json:"valid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	ProductCount  int      `json:"product_count"`
	CategoryCount int      `json:"category_count"`
}

// ValidateCatalog inspects an in-memory catalog snapshot and collects every
// issue for every record; it never short-circuits. Categories are scanned
// first so the id lookup set exists before product references are checked.
// Message strings are user-facing and stay in Spanish.
func ValidateCatalog(products []entity.Product, categories []entity.Category) *ValidationReport {
	errs := []string{}
	warnings := []string{}

	categoryIDs := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if c.ID != "" {
			categoryIDs[c.ID] = struct{}{}
		}
	}

	productIDs := make(map[string]struct{}, len(products))
	for _, p := range products {
		switch {
		case p.ID == "":
			errs = append(errs, "Producto sin ID encontrado")
		case hasID(productIDs, p.ID):
			errs = append(errs, fmt.Sprintf("ID duplicado: %s", p.ID))
		default:
			productIDs[p.ID] = struct{}{}
		}

		if p.Name == "" {
			errs = append(errs, fmt.Sprintf("Producto '%s' sin nombre", orPlaceholder(p.ID)))
		}

		// Price 0 is a valid price; only a missing price is an error.
		if p.Price == nil {
			errs = append(errs, fmt.Sprintf("Producto '%s' sin precio", orPlaceholder(p.ID)))
		}

		if len(p.Categories) == 0 {
			warnings = append(warnings, fmt.Sprintf("Producto '%s' sin categorías", displayName(p.Name, p.ID)))
		} else {
			for _, cat := range p.Categories {
				if _, ok := categoryIDs[cat]; !ok {
					errs = append(errs, fmt.Sprintf("Producto '%s' tiene categoría inexistente: %s", orPlaceholder(p.Name), cat))
				}
			}
		}

		if p.Image == "" {
			warnings = append(warnings, fmt.Sprintf("Producto '%s' sin imagen", orPlaceholder(p.Name)))
		}
	}

	catIDs := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		switch {
		case c.ID == "":
			errs = append(errs, "Categoría sin ID encontrada")
		case hasID(catIDs, c.ID):
			errs = append(errs, fmt.Sprintf("ID de categoría duplicado: %s", c.ID))
		default:
			catIDs[c.ID] = struct{}{}
		}

		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("Categoría '%s' sin nombre", orPlaceholder(c.ID)))
		}
	}

	return &ValidationReport{
		Valid:         len(errs) == 0,
		Errors:        errs,
		Warnings:      warnings,
		ProductCount:  len(products),
		CategoryCount: len(categories),
	}
}

func hasID(seen map[string]struct{}, id string) bool {
	_, ok := seen[id]
	return ok
}

func orPlaceholder(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

func displayName(name, id string) string {
	if name != "" {
		return name
	}
	return orPlaceholder(id)
}
