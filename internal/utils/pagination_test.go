// internal/utils/pagination_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 20}
	result := CreatePaginationResult([]string{"a", "b"}, 45, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestCreatePaginationResultExactFit(t *testing.T) {
	params := PaginationParams{Page: 1, Limit: 10}
	result := CreatePaginationResult(nil, 30, params)
	assert.Equal(t, 3, result.TotalPages)
}

func TestCreatePaginationResultEmpty(t *testing.T) {
	params := PaginationParams{Page: 1, Limit: 10}
	result := CreatePaginationResult(nil, 0, params)
	assert.Equal(t, 0, result.TotalPages)
}
