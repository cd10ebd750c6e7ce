package dto

// PageQuery is the pagination envelope every listing accepts.
type PageQuery struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Normalize applies the listing defaults for absent values.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	Total       int64 `json:"total"`
}

type Paginated[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPageMeta computes the ceiling page count; an empty result still
// reports last_page 1 so clients can render a pager unconditionally.
func NewPageMeta(total int64, page, limit int) PageMeta {
	lastPage := int((total + int64(limit) - 1) / int64(limit))
	if lastPage < 1 {
		lastPage = 1
	}
	return PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		Total:       total,
	}
}
