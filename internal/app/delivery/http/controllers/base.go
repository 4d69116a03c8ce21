package controllers

import (
	"context"
	"errors"
	"medora-portal/internal/app/config"
	"medora-portal/internal/app/delivery/http/renderer"
	"medora-portal/internal/app/services/core/portal"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/views"
	"medora-portal/internal/pkg/exceptions"
	"medora-portal/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PortalSource hands out the portal of a client id.
type PortalSource interface {
	Acquire(ctx context.Context, clientID string) (*portal.Portal, error)
}

// portalBase carries what every portal controller needs to turn a portal
// into a response. HTML clients get a rendered page on GET and a redirect
// back to the current view after POST; JSON clients get the layout in the
// response envelope.
type portalBase struct {
	Log            *zap.Logger
	Portals        PortalSource
	Renderer       *renderer.Renderer
	InternalConfig *config.InternalConfig
}

// begin resolves the caller's portal and a request scoped deadline. On
// failure the response has already been written.
func (b *portalBase) begin(w http.ResponseWriter, r *http.Request, operation string) (*portal.Portal, context.Context, context.CancelFunc, bool) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		b.Log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(b.Log, w, exceptions.ErrServerProcess(errors.New("missing request id")))
		return nil, nil, nil, false
	}

	b.Log.Info(operation+" called", utils.RequestFields(r.Context())...)

	timeout := time.Duration(b.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)

	p, err := b.Portals.Acquire(ctx, utils.GetClientID(r.Context()))
	if err != nil {
		cancel()
		b.Log.Error(operation+" error acquiring portal", append(utils.RequestFields(r.Context()), zap.Error(err))...)
		utils.BuildErrorResponse(b.Log, w, deadline(err))
		return nil, nil, nil, false
	}
	return p, ctx, cancel, true
}

func (b *portalBase) respond(w http.ResponseWriter, r *http.Request, p *portal.Portal, message string) {
	b.respondWith(w, r, p, constvars.StatusOK, message, nil)
}

// respondWith lets a caller replace the page data before rendering.
func (b *portalBase) respondWith(w http.ResponseWriter, r *http.Request, p *portal.Portal, status int, message string, override func(*views.Layout)) {
	if r.Method != http.MethodGet && !utils.WantsJSON(r) {
		http.Redirect(w, r, "/", constvars.StatusSeeOther)
		return
	}

	layout := p.Snapshot().Layout()
	layout.RequestID = utils.GetRequestID(r.Context())
	if override != nil {
		override(layout)
	}

	if utils.WantsJSON(r) {
		if pagination := layout.Pagination(); pagination != nil {
			utils.BuildSuccessResponseWithPagination(w, status, message, pagination, layout)
			return
		}
		utils.BuildSuccessResponse(w, status, message, layout)
		return
	}

	if err := b.Renderer.Render(w, status, layout); err != nil {
		utils.BuildErrorResponse(b.Log, w, err)
	}
}

// fail answers a failed portal operation. The portal has already queued a
// notification for it, so HTML clients just see the current view again.
func (b *portalBase) fail(w http.ResponseWriter, r *http.Request, p *portal.Portal, operation string, err error) {
	err = deadline(err)
	utils.LogError(b.Log, err, append(utils.RequestFields(r.Context()), zap.String("operation", operation))...)

	if utils.WantsJSON(r) {
		utils.BuildErrorResponse(b.Log, w, err)
		return
	}
	if r.Method != http.MethodGet {
		http.Redirect(w, r, "/", constvars.StatusSeeOther)
		return
	}
	status, _ := utils.ErrorStatus(err)
	layout := p.Snapshot().Layout()
	layout.RequestID = utils.GetRequestID(r.Context())
	if renderErr := b.Renderer.Render(w, status, layout); renderErr != nil {
		utils.BuildErrorResponse(b.Log, w, renderErr)
	}
}

// reject is fail for errors caught before the portal saw the request, so
// the user still gets told.
func (b *portalBase) reject(w http.ResponseWriter, r *http.Request, p *portal.Portal, operation string, err error) {
	_, message := utils.ErrorStatus(err)
	p.Notify(constvars.NotificationError, message)
	b.fail(w, r, p, operation, err)
}

func deadline(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}

func urlParamID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, exceptions.ErrURLParamIDValidation(err, name)
	}
	return id, nil
}
