package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// strictBinder decodes JSON bodies rejecting unknown fields, so typos in a
// request surface as 400s instead of silently dropped data. Non-JSON
// requests fall through to Echo's default binder.
type strictBinder struct {
	fallback echo.DefaultBinder
}

func (b *strictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	contentType := req.Header.Get(echo.HeaderContentType)

	if req.ContentLength != 0 && strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		decoder := json.NewDecoder(req.Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(i); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
		}

		return b.fallback.BindPathParams(c, i)
	}

	return b.fallback.Bind(i, c)
}
