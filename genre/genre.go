package genre

import (
	"strings"

	"moviecatalog/errs"
	"moviecatalog/query"
)

var (
	ErrNotFound      = errs.Errorf(errs.ENOTFOUND, "genre not found")
	ErrInvalidID     = errs.Errorf(errs.EINVALID, "invalid genre id")
	ErrInvalidName   = errs.Errorf(errs.EINVALID, "name is required")
	ErrDuplicateName = errs.Errorf(errs.ECONFLICT, "genre name already exists")
)

const FieldName = "name"

// Genre is a named category. Names are unique across all genres.
type Genre struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func (g Genre) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrInvalidName
	}
	return nil
}

type Patch struct {
	Name *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil
}

func (p Patch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ErrInvalidName
	}
	return nil
}

type SearchParams struct {
	query.Pagination
	Search *string
}

type SearchResult struct {
	Data []Genre `json:"data"`
}

// SearchSpec matches genre names case-insensitively, most recently created first.
func SearchSpec(p SearchParams, maxPageSize int) query.Spec {
	return query.NewBuilder().
		Match(FieldName, p.Search).
		Build(query.Sort{Field: query.Identity, Direction: query.Desc}, p.Pagination, maxPageSize)
}
