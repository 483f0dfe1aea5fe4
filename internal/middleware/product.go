package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/deppfellow/inventory-api/internal/errs"
	"github.com/deppfellow/inventory-api/internal/metrics"
	"github.com/deppfellow/inventory-api/internal/model"
	"github.com/deppfellow/inventory-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// Rejection messages of the product request validators.
const (
	MsgInvalidName       = "The name field cannot be empty"
	MsgInvalidID         = "The id field must be an integer"
	MsgInvalidPrice      = "The price field must be a valid number greater than or equal to 0"
	MsgInvalidQuantity   = "The quantity field must be an integer greater than or equal to 0"
	MsgInvalidCategoryID = "The category_id field must be a valid integer"
	MsgInvalidAreaID     = "The area_id field must be a valid integer"
	MsgNameAreaTaken     = "A product with that name already exists in this area"
	MsgInvalidBody       = "The request body must be a JSON object"
)

var codeProductAlreadyExists = "PRODUCT_ALREADY_EXISTS"

type CategoryLookup interface {
	GetByID(ctx context.Context, id int) (*model.Category, error)
}

type AreaLookup interface {
	GetByID(ctx context.Context, id int) (*model.Area, error)
}

type ProductLookup interface {
	GetByID(ctx context.Context, id int) (*model.Product, error)
	GetByNameAndArea(ctx context.Context, name string, areaID int) (*model.Product, error)
}

// ProductValidation holds the request validators of the products routes.
//
// Every validator is an independent echo middleware: it either rejects the
// request with an *errs.HTTPError or calls next. Body fields are read from
// validation.Body, which decodes the JSON body once per request and leaves
// it in place for the handler.
type ProductValidation struct {
	categories CategoryLookup
	areas      AreaLookup
	products   ProductLookup
}

func NewProductValidation(categories CategoryLookup, areas AreaLookup, products ProductLookup) *ProductValidation {
	return &ProductValidation{
		categories: categories,
		areas:      areas,
		products:   products,
	}
}

// CaptureBody decodes the JSON body up front so every validator after it
// reads the same fields. It heads the write chains.
func (v *ProductValidation) CaptureBody(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := requestBody(c, "capture_body"); err != nil {
			return err
		}
		return next(c)
	}
}

// ValidateName requires a non-empty body name. Whitespace is accepted.
func (v *ProductValidation) ValidateName(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := requestBody(c, "validate_name")
		if err != nil {
			return err
		}

		if _, ok := validation.StringField(body["name"]); !ok {
			return reject(c, "validate_name", invalidField("name", MsgInvalidName))
		}

		return next(c)
	}
}

// ValidateID requires an integer :id path parameter.
func (v *ProductValidation) ValidateID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := pathID(c); !ok {
			return reject(c, "validate_id", invalidField("id", MsgInvalidID))
		}

		return next(c)
	}
}

// ValidatePrice requires a body price that is a number >= 0.
func (v *ProductValidation) ValidatePrice(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := requestBody(c, "validate_price")
		if err != nil {
			return err
		}

		price, ok := validation.FloatField(body["price"])
		if !ok || !validation.NonNegative(price) {
			return reject(c, "validate_price", invalidField("price", MsgInvalidPrice))
		}

		return next(c)
	}
}

// ValidateQuantity requires a body quantity that is an integer >= 0.
func (v *ProductValidation) ValidateQuantity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := requestBody(c, "validate_quantity")
		if err != nil {
			return err
		}

		quantity, ok := validation.IntField(body["quantity"])
		if !ok || !validation.NonNegative(quantity) {
			return reject(c, "validate_quantity", invalidField("quantity", MsgInvalidQuantity))
		}

		return next(c)
	}
}

// ValidateCategoryID requires an integer body category_id. Existence is
// checked by CategoryExists.
func (v *ProductValidation) ValidateCategoryID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := requestBody(c, "validate_category_id")
		if err != nil {
			return err
		}

		if _, ok := validation.IntField(body["category_id"]); !ok {
			return reject(c, "validate_category_id", invalidField("category_id", MsgInvalidCategoryID))
		}

		return next(c)
	}
}

// ValidateAreaID requires an integer body area_id. Existence is checked by
// AreaExists.
func (v *ProductValidation) ValidateAreaID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := requestBody(c, "validate_area_id")
		if err != nil {
			return err
		}

		if _, ok := validation.IntField(body["area_id"]); !ok {
			return reject(c, "validate_area_id", invalidField("area_id", MsgInvalidAreaID))
		}

		return next(c)
	}
}

// CategoryExists rejects with the category service's 404 when the body
// category_id matches no category.
func (v *ProductValidation) CategoryExists(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := requestBody(c, "category_exists")
		if err != nil {
			return err
		}

		id, ok := validation.IntField(body["category_id"])
		if !ok {
			return reject(c, "category_exists", invalidField("category_id", MsgInvalidCategoryID))
		}

		if _, err := v.categories.GetByID(c.Request().Context(), id); err != nil {
			return lookupFailed(c, "category_exists", err)
		}

		return next(c)
	}
}

// AreaExists rejects with the area service's 404 when the body area_id
// matches no area.
func (v *ProductValidation) AreaExists(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := requestBody(c, "area_exists")
		if err != nil {
			return err
		}

		id, ok := validation.IntField(body["area_id"])
		if !ok {
			return reject(c, "area_exists", invalidField("area_id", MsgInvalidAreaID))
		}

		if _, err := v.areas.GetByID(c.Request().Context(), id); err != nil {
			return lookupFailed(c, "area_exists", err)
		}

		return next(c)
	}
}

// ProductExists rejects with the product service's 404 when the :id path
// parameter matches no product.
func (v *ProductValidation) ProductExists(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := pathID(c)
		if !ok {
			return reject(c, "product_exists", invalidField("id", MsgInvalidID))
		}

		if _, err := v.products.GetByID(c.Request().Context(), id); err != nil {
			return lookupFailed(c, "product_exists", err)
		}

		return next(c)
	}
}

// NameAreaUnique rejects when another product in the body area_id already
// uses the body name. On routes with an :id parameter the product being
// updated does not count as a conflict.
//
// A missing name or area_id is left to ValidateName and ValidateAreaID.
func (v *ProductValidation) NameAreaUnique(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := requestBody(c, "name_area_unique")
		if err != nil {
			return err
		}

		name, nameOK := validation.StringField(body["name"])
		areaID, areaOK := validation.IntField(body["area_id"])
		if !nameOK || !areaOK {
			return next(c)
		}

		existing, err := v.products.GetByNameAndArea(c.Request().Context(), name, areaID)
		if err != nil {
			if errs.IsNotFound(err) {
				return next(c)
			}
			return err
		}

		if id, ok := pathID(c); ok && id == existing.ID {
			return next(c)
		}

		return reject(c, "name_area_unique", errs.NewBadRequestError(
			MsgNameAreaTaken, true, &codeProductAlreadyExists,
			[]errs.FieldError{{Field: "name", Error: MsgNameAreaTaken}}, nil,
		))
	}
}

func pathID(c echo.Context) (int, bool) {
	return validation.IntField(c.Param("id"))
}

// requestBody returns the decoded body, rejecting bodies that are not a JSON
// object.
func requestBody(c echo.Context, validator string) (map[string]any, error) {
	body, err := validation.Body(c)
	if err != nil {
		if errors.Is(err, validation.ErrInvalidBody) {
			return nil, reject(c, validator, errs.NewBadRequestError(MsgInvalidBody, true, nil, nil, nil))
		}
		return nil, err
	}
	return body, nil
}

func invalidField(field, message string) *errs.HTTPError {
	return errs.NewBadRequestError(message, true, nil, []errs.FieldError{{Field: field, Error: message}}, nil)
}

// lookupFailed turns a not-found lookup into a rejection carrying the
// service's message. Any other failure is returned as is.
func lookupFailed(c echo.Context, validator string, err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound {
		return reject(c, validator, httpErr)
	}

	return err
}

func reject(c echo.Context, validator string, err *errs.HTTPError) error {
	metrics.RecordValidationRejection(validator, err.Status)

	GetLogger(c).Warn().
		Str("validator", validator).
		Int("status", err.Status).
		Str("reason", err.Message).
		Msg("request rejected")

	return err
}
