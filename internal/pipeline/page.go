package pipeline

import "github.com/thehamzasani/primeTube/internal/common"

// FacetResult is what PaginateWithCount produces.
type FacetResult[T any] struct {
	Docs  []T `bson:"docs"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

func (f FacetResult[T]) Count() int64 {
	if len(f.Total) == 0 {
		return 0
	}
	return f.Total[0].Count
}

// Page is the paginated payload returned to clients.
type Page[T any] struct {
	Docs        []T    `json:"docs"`
	TotalDocs   int64  `json:"totalDocs"`
	Limit       int64  `json:"limit"`
	Page        int64  `json:"page"`
	TotalPages  int64  `json:"totalPages"`
	HasPrevPage bool   `json:"hasPrevPage"`
	HasNextPage bool   `json:"hasNextPage"`
	PrevPage    *int64 `json:"prevPage"`
	NextPage    *int64 `json:"nextPage"`
}

func NewPage[T any](docs []T, total int64, p common.Pagination) Page[T] {
	if docs == nil {
		docs = []T{}
	}
	totalPages := (total + p.Limit - 1) / p.Limit
	page := Page[T]{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       p.Limit,
		Page:        p.Page,
		TotalPages:  totalPages,
		HasPrevPage: p.Page > 1,
		HasNextPage: p.Page < totalPages,
	}
	if page.HasPrevPage {
		prev := p.Page - 1
		page.PrevPage = &prev
	}
	if page.HasNextPage {
		next := p.Page + 1
		page.NextPage = &next
	}
	return page
}

// FromFacet converts a decoded facet row into a Page.
func FromFacet[T any](res FacetResult[T], p common.Pagination) Page[T] {
	return NewPage(res.Docs, res.Count(), p)
}
