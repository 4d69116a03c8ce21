package controllers

import (
	"medora-portal/internal/app/config"
	"medora-portal/internal/app/delivery/http/renderer"
	"medora-portal/internal/app/models"
	"medora-portal/internal/app/services/core/pages"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/utils"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type UserController struct {
	portalBase
}

func NewUserController(logger *zap.Logger, portals PortalSource, rd *renderer.Renderer, internalConfig *config.InternalConfig) *UserController {
	return &UserController{portalBase{
		Log:            logger,
		Portals:        portals,
		Renderer:       rd,
		InternalConfig: internalConfig,
	}}
}

// List shows page ?page= of the user list.
func (ctrl *UserController) List(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "UserController.List")
	if !ok {
		return
	}
	defer cancel()

	pagination := utils.BuildPaginationRequest(r, constvars.DefaultUsersPerPage)
	params := map[string]string{pages.ParamPage: strconv.Itoa(pagination.Page)}

	if _, err := p.Navigate(ctx, models.PageUsers, params); err != nil {
		ctrl.fail(w, r, p, "UserController.List", err)
		return
	}
	ctrl.respond(w, r, p, constvars.PageLoadedSuccess)
}

func (ctrl *UserController) Deactivate(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "UserController.Deactivate")
	if !ok {
		return
	}
	defer cancel()

	userID, err := urlParamID(r, "id")
	if err != nil {
		ctrl.reject(w, r, p, "UserController.Deactivate", err)
		return
	}

	if err := p.DeactivateUser(ctx, userID); err != nil {
		ctrl.fail(w, r, p, "UserController.Deactivate", err)
		return
	}
	ctrl.Log.Info("UserController.Deactivate succeeded",
		append(utils.RequestFields(r.Context()), zap.Int(constvars.LoggingUserIDKey, userID))...,
	)
	ctrl.respond(w, r, p, constvars.UserDeactivatedSuccess)
}
