package utils

import "fmt"

// Response represents a standardized response structure.
// It includes a status code, a message, and data.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    *Pagination `json:"meta,omitempty"`
}

// Pagination carries paging metadata plus HATEOAS-style navigation links.
type Pagination struct {
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"totalPages"`
	Links      map[string]string `json:"links"`
}

// NewPagination computes paging metadata and first/prev/next/last links for
// the given base path.
func NewPagination(basePath string, page, limit int, total int64) *Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	link := func(p int) string {
		return fmt.Sprintf("%s?page=%d&limit=%d", basePath, p, limit)
	}

	links := map[string]string{
		"first": link(1),
		"last":  link(totalPages),
	}
	if page > 1 {
		links["prev"] = link(page - 1)
	}
	if page < totalPages {
		links["next"] = link(page + 1)
	}

	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		Links:      links,
	}
}

// NewSuccessResponse creates a new success Response instance.
// Defaults status to 200 (OK).
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Status:  200,
		Message: message,
		Data:    data,
	}
}

// NewPagedResponse creates a success Response carrying pagination metadata.
func NewPagedResponse(message string, data interface{}, meta *Pagination) Response {
	return Response{
		Status:  200,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

// NewErrorResponse creates a new error Response instance.
// Data is explicitly set to nil.
func NewErrorResponse(status int, message string) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    nil,
	}
}

// NewErrorResponseWithDetails creates an error Response with a details payload
// (field-level validation errors, echoed identifiers).
func NewErrorResponseWithDetails(status int, message string, details interface{}) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    details,
	}
}
