package controllers

import (
	"medora-portal/internal/app/config"
	"medora-portal/internal/app/delivery/http/renderer"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/exceptions"
	"medora-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type ProfileController struct {
	portalBase
}

func NewProfileController(logger *zap.Logger, portals PortalSource, rd *renderer.Renderer, internalConfig *config.InternalConfig) *ProfileController {
	return &ProfileController{portalBase{
		Log:            logger,
		Portals:        portals,
		Renderer:       rd,
		InternalConfig: internalConfig,
	}}
}

func (ctrl *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "ProfileController.Update")
	if !ok {
		return
	}
	defer cancel()

	request := new(requests.UpdateProfile)
	if err := utils.DecodeRequest(r, request); err != nil {
		ctrl.reject(w, r, p, "ProfileController.Update", err)
		return
	}

	utils.SanitizeUpdateProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.reject(w, r, p, "ProfileController.Update", exceptions.ErrInputValidation(err))
		return
	}

	_, err := p.UpdateProfile(ctx, models.ProfileFields{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
	})
	if err != nil {
		ctrl.fail(w, r, p, "ProfileController.Update", err)
		return
	}
	ctrl.respond(w, r, p, constvars.ProfileUpdatedSuccess)
}

func (ctrl *ProfileController) Refresh(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "ProfileController.Refresh")
	if !ok {
		return
	}
	defer cancel()

	if err := p.RefreshProfile(ctx); err != nil {
		ctrl.fail(w, r, p, "ProfileController.Refresh", err)
		return
	}
	ctrl.respond(w, r, p, constvars.ProfileRefreshedSuccess)
}
