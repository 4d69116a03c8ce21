package pages

import (
	"context"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/views"
	"medora-portal/internal/pkg/exceptions"
	"strconv"
	"strings"
)

// Loader parameters.
const (
	ParamPage   = "page"
	ParamQuery  = "q"
	ParamFilter = "filter"
)

func (svc *pageService) loadDashboard(ctx context.Context, session models.Session, params map[string]string) (interface{}, error) {
	dashboard, err := svc.MedoraClient.Dashboard(ctx, session.Token)
	if err != nil {
		return nil, failure(err, constvars.MsgNetworkError, constvars.MsgLoadDashboardFailed)
	}

	firstName := session.User.FirstName
	if dashboard.User != nil && dashboard.User.FirstName != "" {
		firstName = dashboard.User.FirstName
	}
	role := session.Role()
	return &views.Dashboard{
		FirstName:            firstName,
		Statistics:           dashboard.Statistics,
		RecentPatients:       dashboard.RecentPatients,
		UpcomingAppointments: dashboard.UpcomingAppointments,
		ShowDoctorActions:    role == models.RoleDoctor || role == models.RoleAdmin,
	}, nil
}

// loadPatients lists patients, or runs a backend search when q is set.
// filter narrows whatever came back without another round trip.
func (svc *pageService) loadPatients(ctx context.Context, session models.Session, params map[string]string) (interface{}, error) {
	view := &views.Patients{
		Query:  strings.TrimSpace(params[ParamQuery]),
		Filter: strings.TrimSpace(params[ParamFilter]),
	}

	if view.Query != "" {
		patients, err := svc.MedoraClient.SearchPatients(ctx, session.Token, view.Query)
		if err != nil {
			return nil, failure(err, constvars.MsgNetworkError, constvars.MsgSearchFailed)
		}
		view.Patients = patients
	} else {
		result, err := svc.MedoraClient.ListPatients(ctx, session.Token, &requests.Pagination{
			Page:    pageParam(params),
			PerPage: constvars.DefaultPatientsPerPage,
		})
		if err != nil {
			return nil, failure(err, constvars.MsgNetworkError, constvars.MsgLoadPatientsFailed)
		}
		view.Patients = result.Patients
		view.Pagination = result.Pagination
	}

	view.Patients = models.FilterPatients(view.Patients, view.Filter)
	return view, nil
}

func (svc *pageService) loadAddPatient(ctx context.Context, session models.Session, params map[string]string) (interface{}, error) {
	return svc.PatientForm(nil), nil
}

// loadPatientView shows the caller's own record. A 404 means no record was
// ever linked to the account and is reported as a warning.
func (svc *pageService) loadPatientView(ctx context.Context, session models.Session, params map[string]string) (interface{}, error) {
	patient, err := svc.MedoraClient.MyPatient(ctx, session.Token)
	if err != nil {
		if exceptions.IsRemoteNotFound(err) {
			return &views.PatientView{}, exceptions.ErrMedoraRequest(err, constvars.MsgNoPatientRecord)
		}
		return nil, failure(err, constvars.MsgNetworkErrorHealthData, constvars.MsgLoadHealthDataFailed)
	}
	if patient != nil {
		patient.CompleteBMI()
	}
	return &views.PatientView{Patient: patient}, nil
}

func (svc *pageService) loadUsers(ctx context.Context, session models.Session, params map[string]string) (interface{}, error) {
	page := pageParam(params)
	result, err := svc.MedoraClient.ListUsers(ctx, session.Token, &requests.Pagination{
		Page:    page,
		PerPage: constvars.DefaultUsersPerPage,
	})
	if err != nil {
		if page > 1 {
			return nil, failure(err, constvars.MsgNetworkError, constvars.MsgLoadUsersPageFailed)
		}
		return nil, reported(err, constvars.MsgNetworkErrorUsers, constvars.MsgLoadUsersFailed)
	}
	return &views.Users{
		Users:      result.Users,
		Stats:      models.ComputeUserStats(result.Users),
		Pagination: result.Pagination,
	}, nil
}

func (svc *pageService) loadAppointments(ctx context.Context, session models.Session, params map[string]string) (interface{}, error) {
	appointments, err := svc.MedoraClient.ListAppointments(ctx, session.Token)
	if err != nil {
		return nil, reported(err, constvars.MsgLoadAppointmentsFailed, constvars.MsgLoadAppointmentsFailed)
	}
	return &views.Appointments{Appointments: appointments}, nil
}

// loadProfile needs no backend call; the session already holds the user.
func (svc *pageService) loadProfile(ctx context.Context, session models.Session, params map[string]string) (interface{}, error) {
	return &views.Profile{User: session.User.Clone()}, nil
}

func pageParam(params map[string]string) int {
	page, err := strconv.Atoi(params[ParamPage])
	if err != nil || page < 1 {
		return 1
	}
	return page
}
