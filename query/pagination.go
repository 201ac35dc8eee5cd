package query

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type Pagination struct {
	Page     int
	PageSize int
}

func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Window returns how many records to skip and how many to take. Pages are
// 1-based; page 0 or below reads the first page. A positive maxPageSize caps
// the page size, zero leaves it unbounded.
func (p Pagination) Window(maxPageSize int) (skip, limit int64) {
	size := p.PageSize
	if maxPageSize > 0 && size > maxPageSize {
		size = maxPageSize
	}
	if p.Page > 1 {
		skip = int64(size) * int64(p.Page-1)
	}
	return skip, int64(size)
}
