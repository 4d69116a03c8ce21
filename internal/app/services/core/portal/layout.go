package portal

import (
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/dto/views"
)

// Layout turns the snapshot into the view every response renders.
func (s Snapshot) Layout() *views.Layout {
	authenticated := s.Session.IsAuthenticated()

	page := s.State.Page
	if !authenticated {
		page = models.PageUnauthenticated
	}

	links := make([]views.NavLink, 0, len(s.NavPages))
	for _, navPage := range s.NavPages {
		links = append(links, views.NavLink{
			Page:   navPage,
			Title:  navPage.Title(),
			Active: navPage == page,
		})
	}

	layout := &views.Layout{
		Title:           page.Title(),
		CurrentPage:     page,
		IsAuthenticated: authenticated,
		User:            s.Session.User,
		NavLinks:        links,
		Notifications:   s.Notifications,
	}
	if authenticated {
		layout.Loaded = s.State.Loaded
		layout.Failure = s.State.Failure
		layout.Data = s.State.Data
	}
	if layout.Notifications == nil {
		layout.Notifications = []models.Notification{}
	}
	return layout
}
