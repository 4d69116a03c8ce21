package requests

type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

type Search struct {
	Query string `json:"q"`
}

type FormField struct {
	Name  string
	Label string
}
