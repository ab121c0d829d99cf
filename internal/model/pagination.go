package model

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Normalized() Pagination {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > maxPageSize {
		p.Limit = defaultPageSize
	}
	return p
}

func (p Pagination) Skip() int64 {
	n := p.Normalized()
	return int64((n.Page - 1) * n.Limit)
}

// Paged couples one page of records with the total match count.
type Paged[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}
