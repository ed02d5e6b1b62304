package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/pavelnovac/rcahub/internal/pkg/constants"
)

type binder struct{}

func NewBinder() echo.Binder {
	return &binder{}
}

// Bind decodes the JSON body into i. Validation is a separate step so
// handlers can bind plain slices too.
func (b *binder) Bind(i interface{}, c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "failed to read request body")
	}
	if len(raw) == 0 {
		return constants.ErrBadRequest
	}

	if err := sonic.Unmarshal(raw, i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest,
			fmt.Sprintf("failed to decode request body: %s", err))
	}

	return nil
}
