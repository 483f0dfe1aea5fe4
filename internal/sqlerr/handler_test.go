package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/inventory-api/internal/errs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name: "product name unique per area",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				TableName:      "products",
				ConstraintName: "products_name_area_id_key",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PRODUCT_ALREADY_EXISTS",
			wantMessage: "A product with that name already exists in this area",
		},
		{
			name: "unique violation with inferable column",
			err: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				TableName:      "areas",
				ConstraintName: "areas_code_key",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "AREA_ALREADY_EXISTS",
			wantMessage: "A Area with this Code already exists",
		},
		{
			name: "foreign key to category",
			err: &pgconn.PgError{
				Code:       pgerrcode.ForeignKeyViolation,
				TableName:  "products",
				ColumnName: "category_id",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PRODUCT_NOT_FOUND",
			wantMessage: "The referenced Category does not exist",
		},
		{
			name: "check violation",
			err: &pgconn.PgError{
				Code:       pgerrcode.CheckViolation,
				TableName:  "products",
				ColumnName: "quantity",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "PRODUCT_INVALID",
			wantMessage: "The Quantity value does not meet required conditions",
		},
		{
			name:        "no rows with table hint",
			err:         fmt.Errorf("table:categories: %w", pgx.ErrNoRows),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Category not found",
		},
		{
			name:        "no rows without hint",
			err:         pgx.ErrNoRows,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Resource not found",
		},
		{
			name:        "unknown error",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(tt.err))

			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMessage, httpErr.Message)
		})
	}
}

func TestHandleErrorKeepsHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Product not found", true, nil)
	assert.Same(t, original, HandleError(original))
}

func TestNotNullViolationHasFieldError(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(&pgconn.PgError{
		Code:       pgerrcode.NotNullViolation,
		TableName:  "products",
		ColumnName: "name",
	}))

	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
	assert.Equal(t, "The Name is required", httpErr.Message)
}

func TestMapCodeAndSeverity(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode(pgerrcode.UniqueViolation))
	assert.Equal(t, ConnectionFailure, MapCode(pgerrcode.CannotConnectNow))
	assert.Equal(t, Other, MapCode("XX000"))

	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("whatever"))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: pgerrcode.CheckViolation})

	assert.Equal(t, CheckViolation, ErrCode(fmt.Errorf("insert: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}
