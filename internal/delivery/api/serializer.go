package api

import (
	"fmt"
	"net/http"

	"todolist/internal/errors"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// jsonSerializer is echo's JSON codec backed by goccy/go-json.
type jsonSerializer struct{}

// Serialize encodes i into the response body.
func (jsonSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}

	return errors.WithStack(enc.Encode(i))
}

// Deserialize decodes the request body into i. Malformed input is a 400.
func (jsonSerializer) Deserialize(c echo.Context, i any) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s: expected %v, got %s", typeErr.Field, typeErr.Type, typeErr.Value),
		).SetInternal(err)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset),
		).SetInternal(err)
	}

	return errors.WithStack(err)
}
