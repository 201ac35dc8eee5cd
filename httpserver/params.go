package httpserver

import (
	"strconv"
	"strings"
	"time"

	"moviecatalog/errs"
	"moviecatalog/movie"
	"moviecatalog/query"

	"github.com/labstack/echo/v4"
)

// parsePagination reads page and pageSize. Blank values fall back to the
// defaults, and so does a repeated page parameter.
func parsePagination(c echo.Context) (query.Pagination, error) {
	p := query.DefaultPagination()
	values := c.QueryParams()

	if raw := values["pageSize"]; len(raw) > 0 && strings.TrimSpace(raw[0]) != "" {
		size, err := strconv.Atoi(strings.TrimSpace(raw[0]))
		if err != nil || size < 1 {
			return p, errs.Errorf(errs.EINVALID, "pageSize must be a positive integer")
		}
		p.PageSize = size
	}

	if raw := values["page"]; len(raw) == 1 && strings.TrimSpace(raw[0]) != "" {
		page, err := strconv.Atoi(strings.TrimSpace(raw[0]))
		if err != nil {
			return p, errs.Errorf(errs.EINVALID, "page must be an integer")
		}
		p.Page = page
	}

	return p, nil
}

// optionalString returns nil when the parameter is absent, so an empty
// value still reaches the query builder as present.
func optionalString(c echo.Context, name string) *string {
	raw, ok := c.QueryParams()[name]
	if !ok || len(raw) == 0 {
		return nil
	}
	v := raw[0]
	return &v
}

func optionalDate(c echo.Context, name string) (*time.Time, error) {
	raw := optionalString(c, name)
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := movie.ParseDate(*raw)
	if err != nil {
		return nil, errs.Errorf(errs.EINVALID, "%s must be a date (YYYY-MM-DD) or an ISO-8601 timestamp", name)
	}
	return &t, nil
}
