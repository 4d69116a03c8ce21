package views

import "medora-portal/internal/app/models"

type NavLink struct {
	Page   models.Page `json:"page"`
	Title  string      `json:"title"`
	Active bool        `json:"active"`
}

// Layout is the full view of a portal: chrome, queued notifications and
// whatever the current page loader produced.
type Layout struct {
	Title           string                `json:"title"`
	CurrentPage     models.Page           `json:"current_page"`
	IsAuthenticated bool                  `json:"is_authenticated"`
	User            *models.User          `json:"user,omitempty"`
	NavLinks        []NavLink             `json:"nav_links"`
	Notifications   []models.Notification `json:"notifications"`
	Loaded          bool                  `json:"loaded"`
	Failure         string                `json:"failure,omitempty"`
	Data            interface{}           `json:"data,omitempty"`
	RequestID       string                `json:"-"`
}

// Pagination is the page info of a paged list view, or nil.
func (l *Layout) Pagination() *models.Pagination {
	switch data := l.Data.(type) {
	case *Patients:
		return data.Pagination
	case *Users:
		return data.Pagination
	}
	return nil
}
