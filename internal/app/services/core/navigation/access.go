package navigation

import (
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
)

// AccessTable lists the roles allowed on each page. A page missing from
// the table admits nobody.
var AccessTable = map[models.Page][]models.Role{
	models.PageDashboard:    models.AllRoles,
	models.PageProfile:      models.AllRoles,
	models.PageAppointments: models.AllRoles,
	models.PagePatients:     {models.RoleAdmin, models.RoleDoctor},
	models.PageAddPatient:   {models.RoleAdmin, models.RoleDoctor},
	models.PageUsers:        {models.RoleAdmin},
	models.PagePatientView:  {models.RolePatient, models.RoleUser},
}

func Allowed(role models.Role, page models.Page) bool {
	for _, permitted := range AccessTable[page] {
		if permitted == role {
			return true
		}
	}
	return false
}

// VisiblePages returns the navigation links shown to role, in bar order.
func VisiblePages(role models.Role) []models.Page {
	var pages []models.Page
	for _, page := range models.AllPages {
		if Allowed(role, page) {
			pages = append(pages, page)
		}
	}
	return pages
}

func DenialMessage(role models.Role, page models.Page) string {
	if role == "" {
		return constvars.MsgPermissionLoginRequired
	}
	switch page {
	case models.PagePatients, models.PageAddPatient:
		return constvars.MsgPermissionPatients
	case models.PageUsers:
		return constvars.MsgPermissionUsers
	}
	return constvars.MsgPermissionGeneric
}
