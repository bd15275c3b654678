package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	meta := NewPagination("/api/v1/comptes", 2, 10, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)

	assert.Equal(t, "/api/v1/comptes?page=1&limit=10", meta.Links["first"])
	assert.Equal(t, "/api/v1/comptes?page=1&limit=10", meta.Links["prev"])
	assert.Equal(t, "/api/v1/comptes?page=3&limit=10", meta.Links["next"])
	assert.Equal(t, "/api/v1/comptes?page=5&limit=10", meta.Links["last"])
}

func TestNewPaginationFirstAndLastPage(t *testing.T) {
	first := NewPagination("/api/v1/comptes", 1, 10, 30)
	assert.NotContains(t, first.Links, "prev")
	assert.Contains(t, first.Links, "next")

	last := NewPagination("/api/v1/comptes", 3, 10, 30)
	assert.Contains(t, last.Links, "prev")
	assert.NotContains(t, last.Links, "next")
}

func TestNewPaginationEmptyResult(t *testing.T) {
	meta := NewPagination("/api/v1/comptes", 1, 10, 0)
	assert.Equal(t, 1, meta.TotalPages)
	assert.NotContains(t, meta.Links, "prev")
	assert.NotContains(t, meta.Links, "next")
}
