package navigation

import (
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	expected := map[models.Page][]models.Role{
		models.PageDashboard:    {models.RoleAdmin, models.RoleDoctor, models.RoleUser, models.RolePatient},
		models.PageProfile:      {models.RoleAdmin, models.RoleDoctor, models.RoleUser, models.RolePatient},
		models.PageAppointments: {models.RoleAdmin, models.RoleDoctor, models.RoleUser, models.RolePatient},
		models.PagePatients:     {models.RoleAdmin, models.RoleDoctor},
		models.PageAddPatient:   {models.RoleAdmin, models.RoleDoctor},
		models.PageUsers:        {models.RoleAdmin},
		models.PagePatientView:  {models.RoleUser, models.RolePatient},
	}

	for _, page := range models.AllPages {
		for _, role := range models.AllRoles {
			assert.Equal(t, contains(expected[page], role), Allowed(role, page), "role %s on page %s", role, page)
		}
		assert.False(t, Allowed("", page), "anonymous on page %s", page)
	}
	assert.False(t, Allowed(models.RoleAdmin, models.Page("billing")))
}

func TestVisiblePages(t *testing.T) {
	assert.Equal(t,
		[]models.Page{models.PageDashboard, models.PagePatientView, models.PageAppointments, models.PageProfile},
		VisiblePages(models.RoleUser),
	)
	assert.Equal(t,
		[]models.Page{models.PageDashboard, models.PagePatients, models.PageAddPatient, models.PageUsers, models.PageAppointments, models.PageProfile},
		VisiblePages(models.RoleAdmin),
	)
	assert.Empty(t, VisiblePages(""))
}

func TestDenialMessage(t *testing.T) {
	assert.Equal(t, constvars.MsgPermissionLoginRequired, DenialMessage("", models.PageUsers))
	assert.Equal(t, constvars.MsgPermissionPatients, DenialMessage(models.RoleUser, models.PagePatients))
	assert.Equal(t, constvars.MsgPermissionPatients, DenialMessage(models.RolePatient, models.PageAddPatient))
	assert.Equal(t, constvars.MsgPermissionUsers, DenialMessage(models.RoleDoctor, models.PageUsers))
	assert.Equal(t, constvars.MsgPermissionGeneric, DenialMessage(models.RoleDoctor, models.PagePatientView))
}

func contains(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
