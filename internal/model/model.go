// Package model holds the inventory entities stored in the database and the
// request payloads bound by the handlers.
package model

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every payload; validator caches struct metadata.
var validate = validator.New()

// Base carries the columns every table has.
type Base struct {
	ID        int       `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IDParam binds the :id path parameter. Ids are SERIAL, so int4.
type IDParam struct {
	ID int `param:"id" validate:"required,min=1,max=2147483647"`
}

func (p *IDParam) Validate() error {
	return validate.Struct(p)
}

// PaginatedResponse wraps a page of results.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginatedResponse computes TotalPages from total and limit.
func NewPaginatedResponse[T any](data []T, page, limit, total int) PaginatedResponse[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Data:       data,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
