package renderer

import (
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/views"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	rd, err := NewRenderer()
	require.NoError(t, err)

	bmi := 22.5
	age := 34
	admin := &models.User{ID: 1, FirstName: "Ada", LastName: "Lovelace", Role: models.RoleAdmin, IsActive: true}
	patient := models.Patient{ID: 9, PatientID: "MED20260309ABC123", FirstName: "Jane", LastName: "Doe", Age: &age, BMI: &bmi, BMICategory: "Normal weight"}

	tests := []struct {
		name     string
		layout   *views.Layout
		contains []string
	}{
		{
			name:     "Logged Out",
			layout:   &views.Layout{Title: "Welcome"},
			contains: []string{`action="/login"`, `action="/register"`},
		},
		{
			name: "Dashboard",
			layout: &views.Layout{
				IsAuthenticated: true, User: admin, CurrentPage: models.PageDashboard,
				NavLinks: []views.NavLink{{Page: models.PageDashboard, Title: "Dashboard", Active: true}},
				Notifications: []models.Notification{{Level: "success", Message: "Welcome back"}},
				Data: &views.Dashboard{FirstName: "Ada", RecentPatients: []models.Patient{patient}, ShowDoctorActions: true},
			},
			contains: []string{"Welcome, Ada", "Jane Doe", "No upcoming appointments", `aria-current="page"`, "toast-success", "Ada Lovelace"},
		},
		{
			name: "Patients",
			layout: &views.Layout{
				IsAuthenticated: true, User: admin, CurrentPage: models.PagePatients,
				Data: &views.Patients{
					Patients:   []models.Patient{patient},
					Pagination: &models.Pagination{Page: 2, Pages: 3, HasNext: true, HasPrev: true},
					Query:      "jane",
				},
			},
			contains: []string{"MED20260309ABC123", "34", "?page=1", "?page=3", `value="jane"`},
		},
		{
			name: "Add Patient",
			layout: &views.Layout{
				IsAuthenticated: true, User: admin, CurrentPage: models.PageAddPatient,
				Data: &views.PatientForm{
					PatientIDPreview: "MED20260309XYZ789",
					Required:         requests.RequiredPatientFields,
					Optional:         requests.OptionalPatientFields,
					Values:           map[string]string{"first_name": "Jane"},
					BMI:              &bmi,
					BMICategory:      "Normal weight",
				},
			},
			contains: []string{"MED20260309XYZ789", `value="Jane"`, "BMI: 22.5 (Normal weight)"},
		},
		{
			name: "Patient View Without Record",
			layout: &views.Layout{
				IsAuthenticated: true, User: admin, CurrentPage: models.PagePatientView,
				Data: &views.PatientView{},
			},
			contains: []string{"No Patient Record Found"},
		},
		{
			name: "Patient View",
			layout: &views.Layout{
				IsAuthenticated: true, User: admin, CurrentPage: models.PagePatientView,
				Data: &views.PatientView{Patient: &patient},
			},
			contains: []string{"Jane Doe", "22.5 (Normal weight)"},
		},
		{
			name: "Users",
			layout: &views.Layout{
				IsAuthenticated: true, User: admin, CurrentPage: models.PageUsers,
				Data: &views.Users{Users: []models.User{*admin}, Stats: models.ComputeUserStats([]models.User{*admin})},
			},
			contains: []string{"Admin", "/users/1/deactivate"},
		},
		{
			name: "Appointments",
			layout: &views.Layout{
				IsAuthenticated: true, User: admin, CurrentPage: models.PageAppointments,
				Data: &views.Appointments{Appointments: []models.Appointment{{DoctorName: "Dr. House", Status: "scheduled"}}},
			},
			contains: []string{"Dr. House", "Scheduled"},
		},
		{
			name: "Profile",
			layout: &views.Layout{
				IsAuthenticated: true, User: admin, CurrentPage: models.PageProfile,
				Data: &views.Profile{User: admin},
			},
			contains: []string{`action="/profile"`, `value="Lovelace"`},
		},
		{
			name: "Failed Load",
			layout: &views.Layout{
				IsAuthenticated: true, User: admin, CurrentPage: models.PageUsers,
				Failure: "Failed to load users",
			},
			contains: []string{"Failed to load users"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			require.NoError(t, rd.Render(rec, http.StatusOK, tt.layout))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			for _, fragment := range tt.contains {
				assert.Contains(t, rec.Body.String(), fragment)
			}
		})
	}
}

func TestRenderEscapesUserInput(t *testing.T) {
	rd, err := NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, rd.Render(rec, http.StatusOK, &views.Layout{
		Notifications: []models.Notification{{Level: "error", Message: "<script>alert(1)</script>"}},
	}))

	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}
