package helpers

import (
	"math"

	"github.com/plantilla/apiestudiantes/internal/app/models/dto"
)

const (
	DefaultPage     = 0 // page index is 0-based
	DefaultPageSize = 10
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based
// on a 0-based page index. A size of 0 is legal and yields an empty page.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if page < 0 {
		page = DefaultPage
	}
	if size < 0 {
		size = DefaultPageSize
	}

	return uint64(page) * uint64(size), size
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page is the 0-based page number the caller requested.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if page < 0 {
		page = DefaultPage
	}
	if size < 0 {
		size = DefaultPageSize
	}

	totalPages := 0
	if totalItems > 0 && size > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}
