package pages

import (
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type pageService struct {
	MedoraClient contracts.MedoraClient
	Log          *zap.Logger
	now          func() time.Time
}

func NewPageService(medoraClient contracts.MedoraClient, logger *zap.Logger) contracts.PageService {
	return &pageService{
		MedoraClient: medoraClient,
		Log:          logger,
		now:          time.Now,
	}
}

func (svc *pageService) Loaders() map[models.Page]contracts.PageLoader {
	return map[models.Page]contracts.PageLoader{
		models.PageDashboard:    contracts.PageLoaderFunc(svc.loadDashboard),
		models.PagePatients:     contracts.PageLoaderFunc(svc.loadPatients),
		models.PageAddPatient:   contracts.PageLoaderFunc(svc.loadAddPatient),
		models.PagePatientView:  contracts.PageLoaderFunc(svc.loadPatientView),
		models.PageUsers:        contracts.PageLoaderFunc(svc.loadUsers),
		models.PageAppointments: contracts.PageLoaderFunc(svc.loadAppointments),
		models.PageProfile:      contracts.PageLoaderFunc(svc.loadProfile),
	}
}

// failure wraps a backend error with a fixed message that ignores the
// backend's own text.
func failure(err error, networkMessage, message string) error {
	if exceptions.IsNetworkFailure(err) {
		return exceptions.ErrMedoraRequest(err, networkMessage)
	}
	return exceptions.ErrMedoraRequest(err, message)
}

// reported wraps a backend error preferring the backend's own text.
func reported(err error, networkMessage, fallback string) error {
	return exceptions.ErrMedoraRequest(err, exceptions.UserMessage(err, networkMessage, fallback))
}
