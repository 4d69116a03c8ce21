package controllers

import (
	"medora-portal/internal/app/config"
	"medora-portal/internal/app/delivery/http/renderer"
	"medora-portal/internal/app/models"
	"medora-portal/internal/app/services/core/pages"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type PatientController struct {
	portalBase
}

func NewPatientController(logger *zap.Logger, portals PortalSource, rd *renderer.Renderer, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{portalBase{
		Log:            logger,
		Portals:        portals,
		Renderer:       rd,
		InternalConfig: internalConfig,
	}}
}

// Search shows the patients page for ?q=, narrowed further by ?filter=.
func (ctrl *PatientController) Search(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "PatientController.Search")
	if !ok {
		return
	}
	defer cancel()

	request := &requests.Search{Query: r.URL.Query().Get(pages.ParamQuery)}
	utils.SanitizeSearchRequest(request)

	filter := strings.TrimSpace(r.URL.Query().Get(pages.ParamFilter))
	if _, err := p.SearchPatients(ctx, request.Query, filter); err != nil {
		ctrl.fail(w, r, p, "PatientController.Search", err)
		return
	}
	ctrl.respond(w, r, p, constvars.PatientSearchSuccess)
}

// Form recomputes the add patient form for the values typed so far.
func (ctrl *PatientController) Form(w http.ResponseWriter, r *http.Request) {
	p, _, cancel, ok := ctrl.begin(w, r, "PatientController.Form")
	if !ok {
		return
	}
	defer cancel()

	raw, err := utils.DecodeValues(r)
	if err != nil {
		ctrl.reject(w, r, p, "PatientController.Form", err)
		return
	}
	form, err := p.PatientForm(utils.FormStrings(raw))
	if err != nil {
		ctrl.fail(w, r, p, "PatientController.Form", err)
		return
	}

	if utils.WantsJSON(r) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, form)
		return
	}
	// Rendered in place rather than redirected, or the typed values are lost.
	layout := p.Snapshot().Layout()
	layout.RequestID = utils.GetRequestID(r.Context())
	if layout.CurrentPage == models.PageAddPatient {
		layout.Data = form
	}
	if err := ctrl.Renderer.Render(w, constvars.StatusOK, layout); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
	}
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "PatientController.Create")
	if !ok {
		return
	}
	defer cancel()

	values, form, err := decodePatientForm(r)
	if err != nil {
		ctrl.reject(w, r, p, "PatientController.Create", err)
		return
	}

	if _, err := p.CreatePatient(ctx, values, form); err != nil {
		ctrl.fail(w, r, p, "PatientController.Create", err)
		return
	}
	ctrl.respondWith(w, r, p, constvars.StatusCreated, constvars.PatientCreatedSuccess, nil)
}

func (ctrl *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "PatientController.Update")
	if !ok {
		return
	}
	defer cancel()

	patientID, err := urlParamID(r, "id")
	if err != nil {
		ctrl.reject(w, r, p, "PatientController.Update", err)
		return
	}
	values, form, err := decodePatientForm(r)
	if err != nil {
		ctrl.reject(w, r, p, "PatientController.Update", err)
		return
	}

	if _, err := p.UpdatePatient(ctx, patientID, values, form); err != nil {
		ctrl.fail(w, r, p, "PatientController.Update", err)
		return
	}
	ctrl.respond(w, r, p, constvars.PatientUpdatedSuccess)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "PatientController.Delete")
	if !ok {
		return
	}
	defer cancel()

	patientID, err := urlParamID(r, "id")
	if err != nil {
		ctrl.reject(w, r, p, "PatientController.Delete", err)
		return
	}

	if err := p.DeletePatient(ctx, patientID); err != nil {
		ctrl.fail(w, r, p, "PatientController.Delete", err)
		return
	}
	ctrl.respond(w, r, p, constvars.PatientDeletedSuccess)
}

func decodePatientForm(r *http.Request) (map[string]string, *requests.PatientForm, error) {
	raw, err := utils.DecodeValues(r)
	if err != nil {
		return nil, nil, err
	}
	form := new(requests.PatientForm)
	if err := utils.DecodeMap(raw, form); err != nil {
		return nil, nil, err
	}
	return utils.FormStrings(raw), form, nil
}
