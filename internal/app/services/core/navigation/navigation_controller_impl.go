package navigation

import (
	"context"
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/exceptions"
	"medora-portal/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

// navigationController is the page state machine of one portal. It starts
// on the unauthenticated view and only leaves it through a session event.
type navigationController struct {
	Session  contracts.SessionReader
	Loaders  map[models.Page]contracts.PageLoader
	Notifier contracts.Notifier
	Log      *zap.Logger

	mu    sync.Mutex
	state models.NavigationState
}

func NewNavigationController(
	session contracts.SessionReader,
	loaders map[models.Page]contracts.PageLoader,
	notifier contracts.Notifier,
	logger *zap.Logger,
) contracts.Navigator {
	return &navigationController{
		Session:  session,
		Loaders:  loaders,
		Notifier: notifier,
		Log:      logger,
		state:    models.NavigationState{Page: models.PageUnauthenticated},
	}
}

func (nc *navigationController) State() models.NavigationState {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return copyState(nc.state)
}

// Navigate switches to page if the session role may see it, then runs the
// page loader. A denied navigation changes nothing but queues a notification.
func (nc *navigationController) Navigate(ctx context.Context, page models.Page, params map[string]string) (models.NavigationState, error) {
	if _, ok := models.ParsePage(string(page)); !ok {
		return nc.State(), exceptions.ErrUnknownPage(string(page))
	}

	session := nc.Session.Current()
	if !session.IsAuthenticated() {
		nc.Notifier.Notify(constvars.NotificationWarning, constvars.MsgPermissionLoginRequired)
		return nc.State(), exceptions.ErrNotAuthenticated()
	}
	if !Allowed(session.Role(), page) {
		message := DenialMessage(session.Role(), page)
		nc.Notifier.Notify(constvars.NotificationError, message)
		nc.Log.Info("navigationController.Navigate denied",
			append(utils.RequestFields(ctx),
				zap.String(constvars.LoggingPageKey, page.String()),
				zap.String(constvars.LoggingRoleKey, session.Role().String()),
			)...,
		)
		return nc.State(), exceptions.ErrNavigationDenied(page.String(), session.Role().String(), message)
	}

	nc.mu.Lock()
	nc.state = models.NavigationState{
		Page:       page,
		Generation: nc.state.Generation + 1,
		Params:     copyParams(params),
	}
	generation := nc.state.Generation
	nc.mu.Unlock()

	return nc.load(ctx, session, page, generation, params)
}

// Refresh reruns the current page loader with the current parameters.
func (nc *navigationController) Refresh(ctx context.Context) (models.NavigationState, error) {
	current := nc.State()
	if !current.IsAuthenticatedView() {
		return current, nil
	}
	return nc.Navigate(ctx, current.Page, current.Params)
}

// HandleSessionEvent is subscribed to the session manager. Logging in
// always lands on the dashboard; logging out drops whatever page was shown
// along with any load still in flight.
func (nc *navigationController) HandleSessionEvent(ctx context.Context, event models.SessionEvent, session models.Session) {
	nc.Log.Debug("navigationController.HandleSessionEvent",
		append(utils.RequestFields(ctx), zap.Stringer(constvars.LoggingSessionEvent, event))...,
	)

	switch event {
	case models.SessionAuthenticated:
		if _, err := nc.Navigate(ctx, models.PageDashboard, nil); err != nil {
			utils.LogError(nc.Log, err, utils.RequestFields(ctx)...)
		}
	case models.SessionUnauthenticated:
		nc.mu.Lock()
		nc.state = models.NavigationState{
			Page:       models.PageUnauthenticated,
			Generation: nc.state.Generation + 1,
		}
		nc.mu.Unlock()
	}
}

func (nc *navigationController) load(ctx context.Context, session models.Session, page models.Page, generation uint64, params map[string]string) (models.NavigationState, error) {
	loader, ok := nc.Loaders[page]
	if !ok {
		return nc.apply(ctx, generation, nil, nil)
	}

	data, err := loader.Load(ctx, session, copyParams(params))
	if err != nil && exceptions.IsAuthExpired(err) {
		// Expire fires the unauthenticated event, which bumps the
		// generation and so discards this load below.
		nc.Session.Expire(ctx, session.Token)
	}
	return nc.apply(ctx, generation, data, err)
}

func (nc *navigationController) apply(ctx context.Context, generation uint64, data interface{}, loadErr error) (models.NavigationState, error) {
	nc.mu.Lock()
	if nc.state.Generation != generation {
		current := copyState(nc.state)
		nc.mu.Unlock()
		nc.Log.Info("navigationController discarded stale page load",
			append(utils.RequestFields(ctx),
				zap.Uint64(constvars.LoggingGenerationKey, generation),
				zap.String(constvars.LoggingPageKey, current.Page.String()),
			)...,
		)
		return current, loadErr
	}

	nc.state.Loaded = true
	nc.state.Data = data
	if loadErr != nil {
		_, nc.state.Failure = utils.ErrorStatus(loadErr)
	}
	current := copyState(nc.state)
	nc.mu.Unlock()

	if loadErr != nil && !exceptions.IsAuthExpired(loadErr) {
		nc.Notifier.Notify(notificationLevel(loadErr), current.Failure)
		utils.LogError(nc.Log, loadErr, append(utils.RequestFields(ctx), zap.String(constvars.LoggingPageKey, current.Page.String()))...)
	}
	return current, loadErr
}

// notificationLevel downgrades a missing record to a warning; everything
// else a loader reports is an error.
func notificationLevel(err error) string {
	if exceptions.IsRemoteNotFound(err) {
		return constvars.NotificationWarning
	}
	return constvars.NotificationError
}

func copyState(state models.NavigationState) models.NavigationState {
	state.Params = copyParams(state.Params)
	return state
}

func copyParams(params map[string]string) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}
