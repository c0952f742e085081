package dto

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Pagination accepts either page or offset; offset wins when both are sent.
type Pagination struct {
	Page   int  `form:"page" json:"page" binding:"omitempty,min=1"`
	Limit  int  `form:"limit" json:"limit" binding:"omitempty,min=1"`
	Offset *int `form:"offset" json:"-" binding:"omitempty,min=0"`
}

// Normalize clamps the limit and derives the page from the offset.
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset != nil {
		p.Page = *p.Offset/p.Limit + 1
		p.Offset = nil
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	return p
}

func (p Pagination) SQLOffset() int {
	return (p.Page - 1) * p.Limit
}

type Page[T any] struct {
	Data  []T   `json:"data"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
