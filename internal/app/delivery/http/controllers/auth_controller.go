package controllers

import (
	"medora-portal/internal/app/config"
	"medora-portal/internal/app/delivery/http/renderer"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/exceptions"
	"medora-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	portalBase
}

func NewAuthController(logger *zap.Logger, portals PortalSource, rd *renderer.Renderer, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{portalBase{
		Log:            logger,
		Portals:        portals,
		Renderer:       rd,
		InternalConfig: internalConfig,
	}}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "AuthController.Login")
	if !ok {
		return
	}
	defer cancel()

	// Bind body to request
	request := new(requests.Login)
	if err := utils.DecodeRequest(r, request); err != nil {
		ctrl.reject(w, r, p, "AuthController.Login", err)
		return
	}

	// Sanitize request
	utils.SanitizeLoginRequest(request)

	// Validate request
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.reject(w, r, p, "AuthController.Login", exceptions.ErrInputValidation(err))
		return
	}

	if err := p.Login(ctx, request); err != nil {
		ctrl.fail(w, r, p, "AuthController.Login", err)
		return
	}
	ctrl.respond(w, r, p, constvars.ResponseSuccess)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "AuthController.Register")
	if !ok {
		return
	}
	defer cancel()

	request := new(requests.Register)
	if err := utils.DecodeRequest(r, request); err != nil {
		ctrl.reject(w, r, p, "AuthController.Register", err)
		return
	}

	utils.SanitizeRegisterRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.reject(w, r, p, "AuthController.Register", exceptions.ErrInputValidation(err))
		return
	}

	if err := p.Register(ctx, request); err != nil {
		ctrl.fail(w, r, p, "AuthController.Register", err)
		return
	}
	ctrl.respond(w, r, p, constvars.ResponseSuccess)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "AuthController.Logout")
	if !ok {
		return
	}
	defer cancel()

	if err := p.Logout(ctx); err != nil {
		ctrl.fail(w, r, p, "AuthController.Logout", err)
		return
	}
	ctrl.respond(w, r, p, constvars.LogoutSuccess)
}
