package controllers

import (
	"medora-portal/internal/app/config"
	"medora-portal/internal/app/delivery/http/renderer"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PageController struct {
	portalBase
}

func NewPageController(logger *zap.Logger, portals PortalSource, rd *renderer.Renderer, internalConfig *config.InternalConfig) *PageController {
	return &PageController{portalBase{
		Log:            logger,
		Portals:        portals,
		Renderer:       rd,
		InternalConfig: internalConfig,
	}}
}

// Home shows whatever the portal is currently on.
func (ctrl *PageController) Home(w http.ResponseWriter, r *http.Request) {
	p, _, cancel, ok := ctrl.begin(w, r, "PageController.Home")
	if !ok {
		return
	}
	defer cancel()

	ctrl.respond(w, r, p, constvars.PageLoadedSuccess)
}

func (ctrl *PageController) Page(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "PageController.Page")
	if !ok {
		return
	}
	defer cancel()

	page := models.Page(chi.URLParam(r, "page"))
	state, err := p.Navigate(ctx, page, utils.QueryParams(r))
	if err != nil {
		ctrl.fail(w, r, p, "PageController.Page", err)
		return
	}

	ctrl.Log.Info("PageController.Page succeeded",
		append(utils.RequestFields(r.Context()),
			zap.String(constvars.LoggingPageKey, page.String()),
			zap.Uint64(constvars.LoggingGenerationKey, state.Generation),
		)...,
	)
	ctrl.respond(w, r, p, constvars.PageLoadedSuccess)
}

func (ctrl *PageController) Refresh(w http.ResponseWriter, r *http.Request) {
	p, ctx, cancel, ok := ctrl.begin(w, r, "PageController.Refresh")
	if !ok {
		return
	}
	defer cancel()

	if _, err := p.Refresh(ctx); err != nil {
		ctrl.fail(w, r, p, "PageController.Refresh", err)
		return
	}
	ctrl.respond(w, r, p, constvars.PageLoadedSuccess)
}
