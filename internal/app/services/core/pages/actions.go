package pages

import (
	"context"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/views"
	"medora-portal/internal/pkg/exceptions"
	"medora-portal/internal/pkg/utils"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// PatientForm builds the add patient form state for the values typed so
// far. The id preview is regenerated on every call.
func (svc *pageService) PatientForm(values map[string]string) *views.PatientForm {
	form := &views.PatientForm{
		PatientIDPreview: utils.GeneratePatientIDPreview(svc.now()),
		Progress:         utils.FormProgress(values, requests.RequiredPatientFields, requests.OptionalPatientFields),
		Required:         requests.RequiredPatientFields,
		Optional:         requests.OptionalPatientFields,
		Values:           values,
	}

	height, heightErr := strconv.ParseFloat(strings.TrimSpace(values["height"]), 64)
	weight, weightErr := strconv.ParseFloat(strings.TrimSpace(values["weight"]), 64)
	if heightErr == nil && weightErr == nil {
		if bmi, ok := models.CalculateBMI(height, weight); ok {
			form.BMI = &bmi
			form.BMICategory = models.BMICategory(bmi)
		}
	}
	return form
}

func (svc *pageService) CreatePatient(ctx context.Context, token string, values map[string]string, form *requests.PatientForm) (*models.Patient, error) {
	if err := checkPatientForm(values, form); err != nil {
		return nil, err
	}

	result, err := svc.MedoraClient.CreatePatient(ctx, token, form)
	if err != nil {
		return nil, reported(err, constvars.MsgNetworkErrorOccurred, constvars.MsgCreatePatientFailed)
	}

	svc.Log.Info("pageService.CreatePatient succeeded", utils.RequestFields(ctx)...)
	return result.Patient, nil
}

func (svc *pageService) UpdatePatient(ctx context.Context, token string, patientID int, values map[string]string, form *requests.PatientForm) (*models.Patient, error) {
	if err := checkPatientForm(values, form); err != nil {
		return nil, err
	}

	result, err := svc.MedoraClient.UpdatePatient(ctx, token, patientID, form)
	if err != nil {
		return nil, reported(err, constvars.MsgNetworkError, constvars.MsgOperationFailed)
	}

	svc.Log.Info("pageService.UpdatePatient succeeded",
		append(utils.RequestFields(ctx), zap.Int("patient_id", patientID))...,
	)
	return result.Patient, nil
}

func (svc *pageService) DeletePatient(ctx context.Context, token string, patientID int) error {
	if err := svc.MedoraClient.DeletePatient(ctx, token, patientID); err != nil {
		return reported(err, constvars.MsgNetworkError, constvars.MsgDeleteFailed)
	}
	svc.Log.Info("pageService.DeletePatient succeeded",
		append(utils.RequestFields(ctx), zap.Int("patient_id", patientID))...,
	)
	return nil
}

func (svc *pageService) DeactivateUser(ctx context.Context, token string, userID int) error {
	if err := svc.MedoraClient.DeactivateUser(ctx, token, userID); err != nil {
		return reported(err, constvars.MsgNetworkError, constvars.MsgDeactivateUserFailed)
	}
	svc.Log.Info("pageService.DeactivateUser succeeded",
		append(utils.RequestFields(ctx), zap.Int(constvars.LoggingUserIDKey, userID))...,
	)
	return nil
}

// checkPatientForm reports every blank required field at once, before the
// stricter per-field rules run.
func checkPatientForm(values map[string]string, form *requests.PatientForm) error {
	if missing := utils.MissingFields(values, requests.RequiredPatientFields); len(missing) > 0 {
		return exceptions.ErrMissingRequiredFields(utils.MissingFieldsMessage(missing))
	}
	utils.SanitizePatientForm(form)
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
