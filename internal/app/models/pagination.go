package models

type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

func (p Pagination) NextPage() int {
	if !p.HasNext {
		return p.Page
	}
	return p.Page + 1
}

func (p Pagination) PrevPage() int {
	if !p.HasPrev {
		return p.Page
	}
	return p.Page - 1
}
