package handler

import (
	"net/http"
	"strconv"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/labstack/echo/v4"
)

var bodyBinder = &echo.DefaultBinder{}

// bindBody decodes the request body only, ignoring path and query parameters.
// Malformed JSON becomes a 400 with a stable message.
func bindBody(c echo.Context, dst any) error {
	if err := bodyBinder.BindBody(c, dst); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
			return errors.WithStack(err)
		}

		return domainerrors.Validation("Invalid JSON body")
	}

	return nil
}

// bindFields decodes a JSON object body. An empty body yields empty fields.
func bindFields(c echo.Context) (usecase.Fields, error) {
	fields := usecase.Fields{}
	if err := bindBody(c, &fields); err != nil {
		return nil, err
	}

	return fields, nil
}

// integerParam parses a numeric path parameter such as an ad or notice id.
func integerParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domainerrors.Validation(name + " must be an integer")
	}

	return id, nil
}

// listOrEmpty returns v when it is a JSON array and an empty list otherwise.
func listOrEmpty(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}

	return []any{}
}

// stringList keeps the string form of every non-empty entry of a JSON array.
func stringList(v any) []string {
	list := listOrEmpty(v)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := util.ToStringOrEmpty(item); s != "" {
			out = append(out, s)
		}
	}

	return out
}
