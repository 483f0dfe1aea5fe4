package service

import (
	"errors"

	"github.com/deppfellow/inventory-api/internal/errs"
	"github.com/jackc/pgx/v5"
)

var (
	codeCategoryNotFound = "CATEGORY_NOT_FOUND"
	codeAreaNotFound     = "AREA_NOT_FOUND"
	codeProductNotFound  = "PRODUCT_NOT_FOUND"
)

// ErrCategoryNotFound, ErrAreaNotFound and ErrProductNotFound are the 404s
// returned by lookups. Use errs.IsNotFound to test for them.
var (
	ErrCategoryNotFound = errs.NewNotFoundError("Category not found", true, &codeCategoryNotFound)
	ErrAreaNotFound     = errs.NewNotFoundError("Area not found", true, &codeAreaNotFound)
	ErrProductNotFound  = errs.NewNotFoundError("Product not found", true, &codeProductNotFound)
)

// mapNotFound replaces a missing row with notFound and passes every other
// error through.
func mapNotFound(err error, notFound *errs.HTTPError) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return err
}
