package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// bodyKey caches the decoded JSON body on the echo context.
const bodyKey = "validation.body"

var validate = validator.New()

// ErrInvalidBody is returned by Body for a body that is not a JSON object.
var ErrInvalidBody = errors.New("request body must be a JSON object")

// Body decodes the JSON request body into a generic object once per request.
//
// The raw bytes are put back on the request so the handler can still bind
// them. An empty body decodes to an empty object. Numbers are kept as
// json.Number so integers and decimals can be told apart.
func Body(c echo.Context) (map[string]any, error) {
	if body, ok := c.Get(bodyKey).(map[string]any); ok {
		return body, nil
	}

	req := c.Request()

	var raw []byte
	if req.Body != nil {
		var err error
		raw, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		req.Body.Close()
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))

	body := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return nil, ErrInvalidBody
		}
	}

	c.Set(bodyKey, body)
	return body, nil
}

// StringField returns v when it is a non-empty JSON string. Numbers are
// rejected since the payload binds name as a string. Whitespace is not
// trimmed.
func StringField(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}

	if validate.Var(s, "required") != nil {
		return "", false
	}

	return s, true
}

// IntField returns v as an int when it is a JSON integer or a string holding
// one. Fractions ("1.5"), exponents and values outside the Postgres INTEGER
// range are rejected.
func IntField(v any) (int, bool) {
	raw, ok := numericText(v)
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}

	return int(n), true
}

// FloatField returns v as a finite float64 when it is a JSON number or a
// string holding one.
func FloatField(v any) (float64, bool) {
	raw, ok := numericText(v)
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// NonNegative reports whether n satisfies the gte=0 rule.
func NonNegative[T int | float64](n T) bool {
	return validate.Var(n, "gte=0") == nil
}

func numericText(v any) (string, bool) {
	switch val := v.(type) {
	case json.Number:
		return val.String(), true
	case string:
		return val, val != ""
	default:
		return "", false
	}
}
