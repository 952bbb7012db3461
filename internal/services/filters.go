// internal/services/filters.go
package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError reports a rejected query parameter by name.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ProductFilters is the canonical filter record applied to catalog reads.
// Pointer fields distinguish "unconstrained" from a zero bound.
type ProductFilters struct {
	Category      string   `json:"category,omitempty"`
	Brands        []string `json:"brands,omitempty"`
	MinPrice      *float64 `json:"minPrice,omitempty"`
	MaxPrice      *float64 `json:"maxPrice,omitempty"`
	MinRAMGB      *int     `json:"minRam,omitempty"`
	MinStorageGB  *int     `json:"minStorage,omitempty"`
	Search        string   `json:"search,omitempty"`
	SortBy        string   `json:"sortBy,omitempty"`
	SortDirection string   `json:"sortDirection,omitempty"`
	Page          int      `json:"page"`
	Limit         int      `json:"limit"`
}

var allowedSortKeys = map[string]string{
	"price":      "price",
	"rating":     "rating",
	"ram_gb":     "ram_gb",
	"storage_gb": "storage_gb",
	"name":       "name",
}

// NormalizeProductFilters coerces raw query parameters into a ProductFilters
// record. Category is passed through unvalidated: an unknown category simply
// matches zero rows in the catalog, which is the intended behavior for
// free-form input.
func NormalizeProductFilters(values url.Values) (ProductFilters, error) {
	filters := ProductFilters{
		Page:  1,
		Limit: 20,
	}

	filters.Category = strings.TrimSpace(values.Get("category"))
	filters.Search = strings.TrimSpace(values.Get("search"))
	filters.Brands = splitBrands(values.Get("brands"))

	if raw := strings.TrimSpace(values.Get("minPrice")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return ProductFilters{}, &ValidationError{Field: "minPrice", Message: "must be a non-negative number"}
		}
		filters.MinPrice = &v
	}
	if raw := strings.TrimSpace(values.Get("maxPrice")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return ProductFilters{}, &ValidationError{Field: "maxPrice", Message: "must be a non-negative number"}
		}
		filters.MaxPrice = &v
	}
	if filters.MinPrice != nil && filters.MaxPrice != nil && *filters.MinPrice > *filters.MaxPrice {
		return ProductFilters{}, &ValidationError{Field: "minPrice", Message: "must not exceed maxPrice"}
	}

	if raw := strings.TrimSpace(values.Get("minRam")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return ProductFilters{}, &ValidationError{Field: "minRam", Message: "must be a non-negative integer"}
		}
		filters.MinRAMGB = &v
	}
	if raw := strings.TrimSpace(values.Get("minStorage")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return ProductFilters{}, &ValidationError{Field: "minStorage", Message: "must be a non-negative integer"}
		}
		filters.MinStorageGB = &v
	}

	if raw := strings.TrimSpace(values.Get("sortBy")); raw != "" {
		column, ok := allowedSortKeys[raw]
		if !ok {
			return ProductFilters{}, &ValidationError{Field: "sortBy", Message: "must be one of price, rating, ram_gb, storage_gb, name"}
		}
		filters.SortBy = column
	}
	if raw := strings.TrimSpace(values.Get("sortDirection")); raw != "" {
		if raw != "asc" && raw != "desc" {
			return ProductFilters{}, &ValidationError{Field: "sortDirection", Message: "must be asc or desc"}
		}
		filters.SortDirection = raw
	}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return ProductFilters{}, &ValidationError{Field: "page", Message: "must be an integer >= 1"}
		}
		filters.Page = v
	}
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 100 {
			return ProductFilters{}, &ValidationError{Field: "limit", Message: "must be an integer between 1 and 100"}
		}
		filters.Limit = v
	}

	return filters, nil
}

// splitBrands parses a comma-joined brand list into a deduplicated slice,
// preserving first-seen order. Empty segments are dropped; an empty result
// means the constraint is absent.
func splitBrands(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var brands []string
	for _, part := range strings.Split(raw, ",") {
		brand := strings.TrimSpace(part)
		if brand == "" {
			continue
		}
		if _, dup := seen[brand]; dup {
			continue
		}
		seen[brand] = struct{}{}
		brands = append(brands, brand)
	}
	return brands
}
