package portal

import (
	"context"
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/app/models"
	"medora-portal/internal/app/services/core/navigation"
	"medora-portal/internal/app/services/core/pages"
	"medora-portal/internal/app/services/core/session"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/views"
	"medora-portal/internal/pkg/exceptions"
	"medora-portal/internal/pkg/utils"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Portal is everything one browser sees: its session, the page it is on
// and the notifications waiting to be shown. A disposed portal refuses
// every operation.
type Portal struct {
	ClientID string

	session   contracts.SessionManager
	navigator contracts.Navigator
	pages     contracts.PageService
	queue     *notificationQueue
	log       *zap.Logger

	restoreOnce sync.Once
	disposed    atomic.Bool
	lastSeen    atomic.Int64
}

// Snapshot is a consistent read of a portal for rendering.
type Snapshot struct {
	Session       models.Session
	State         models.NavigationState
	NavPages      []models.Page
	Notifications []models.Notification
}

type Dependencies struct {
	MedoraClient contracts.MedoraClient
	Storage      contracts.ClientStorage
	Pages        contracts.PageService
	Log          *zap.Logger
}

func New(clientID string, deps Dependencies) *Portal {
	queue := new(notificationQueue)
	logger := deps.Log.With(zap.String(constvars.LoggingClientIDKey, clientID))

	sessionManager := session.NewSessionManager(clientID, deps.MedoraClient, deps.Storage, queue, deps.Log)
	navigator := navigation.NewNavigationController(sessionManager, deps.Pages.Loaders(), queue, logger)
	sessionManager.Subscribe(navigator.HandleSessionEvent)

	p := &Portal{
		ClientID:  clientID,
		session:   sessionManager,
		navigator: navigator,
		pages:     deps.Pages,
		queue:     queue,
		log:       logger,
	}
	p.touch()
	return p
}

// Restore revives the persisted session. Only the first call does any work.
func (p *Portal) Restore(ctx context.Context) error {
	if err := p.guard(); err != nil {
		return err
	}
	p.restoreOnce.Do(func() {
		p.session.Restore(ctx)
	})
	return nil
}

func (p *Portal) Dispose() {
	if p.disposed.Swap(true) {
		return
	}
	p.log.Info("portal disposed")
}

func (p *Portal) Disposed() bool {
	return p.disposed.Load()
}

// IdleFor reports how long ago the portal last served a request.
func (p *Portal) IdleFor(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, p.lastSeen.Load()))
}

func (p *Portal) Snapshot() Snapshot {
	current := p.session.Current()
	return Snapshot{
		Session:       current,
		State:         p.navigator.State(),
		NavPages:      navigation.VisiblePages(current.Role()),
		Notifications: p.queue.Drain(),
	}
}

func (p *Portal) Login(ctx context.Context, request *requests.Login) error {
	if err := p.guard(); err != nil {
		return err
	}
	return p.session.Login(ctx, request)
}

func (p *Portal) Register(ctx context.Context, request *requests.Register) error {
	if err := p.guard(); err != nil {
		return err
	}
	return p.session.Register(ctx, request)
}

func (p *Portal) Logout(ctx context.Context) error {
	if err := p.guard(); err != nil {
		return err
	}
	p.session.Logout(ctx)
	return nil
}

func (p *Portal) UpdateProfile(ctx context.Context, fields models.ProfileFields) (*models.User, error) {
	if err := p.guard(); err != nil {
		return nil, err
	}
	user, err := p.session.UpdateProfile(ctx, fields)
	if err != nil {
		return nil, err
	}
	if p.navigator.State().Page == models.PageProfile {
		p.navigator.Refresh(ctx)
	}
	return user, nil
}

// RefreshProfile re-reads the user from the backend and redraws the
// profile page when it is showing.
func (p *Portal) RefreshProfile(ctx context.Context) error {
	if err := p.guard(); err != nil {
		return err
	}
	if err := p.session.RefreshProfile(ctx); err != nil {
		return err
	}
	if p.navigator.State().Page == models.PageProfile {
		p.navigator.Refresh(ctx)
	}
	return nil
}

func (p *Portal) Navigate(ctx context.Context, page models.Page, params map[string]string) (models.NavigationState, error) {
	if err := p.guard(); err != nil {
		return models.NavigationState{}, err
	}
	return p.navigator.Navigate(ctx, page, params)
}

func (p *Portal) Refresh(ctx context.Context) (models.NavigationState, error) {
	if err := p.guard(); err != nil {
		return models.NavigationState{}, err
	}
	return p.navigator.Refresh(ctx)
}

// Notify queues a message for the next render, for failures caught before
// they reach the portal.
func (p *Portal) Notify(level, message string) {
	p.queue.Notify(level, message)
}

// SearchPatients shows the patients page for a backend search on query,
// narrowed further by filter when set.
func (p *Portal) SearchPatients(ctx context.Context, query, filter string) (models.NavigationState, error) {
	params := map[string]string{pages.ParamQuery: query}
	if filter != "" {
		params[pages.ParamFilter] = filter
	}
	return p.Navigate(ctx, models.PagePatients, params)
}

// PatientForm is the add patient form for partially typed values. It is
// pure computation and does not need a session.
func (p *Portal) PatientForm(values map[string]string) (*views.PatientForm, error) {
	if err := p.guard(); err != nil {
		return nil, err
	}
	return p.pages.PatientForm(values), nil
}

// CreatePatient sends the form and moves on to the patient list.
func (p *Portal) CreatePatient(ctx context.Context, values map[string]string, form *requests.PatientForm) (*models.Patient, error) {
	token, err := p.authorize(ctx, models.PageAddPatient)
	if err != nil {
		return nil, err
	}
	patient, err := p.pages.CreatePatient(ctx, token, values, form)
	if err != nil {
		return nil, p.actionFailed(ctx, token, err)
	}
	p.queue.Notify(constvars.NotificationSuccess, constvars.PatientCreatedSuccess)
	p.navigator.Navigate(ctx, models.PagePatients, nil)
	return patient, nil
}

func (p *Portal) UpdatePatient(ctx context.Context, patientID int, values map[string]string, form *requests.PatientForm) (*models.Patient, error) {
	token, err := p.authorize(ctx, models.PagePatients)
	if err != nil {
		return nil, err
	}
	patient, err := p.pages.UpdatePatient(ctx, token, patientID, values, form)
	if err != nil {
		return nil, p.actionFailed(ctx, token, err)
	}
	p.queue.Notify(constvars.NotificationSuccess, constvars.PatientUpdatedSuccess)
	p.navigator.Refresh(ctx)
	return patient, nil
}

func (p *Portal) DeletePatient(ctx context.Context, patientID int) error {
	token, err := p.authorize(ctx, models.PagePatients)
	if err != nil {
		return err
	}
	if err := p.pages.DeletePatient(ctx, token, patientID); err != nil {
		return p.actionFailed(ctx, token, err)
	}
	p.queue.Notify(constvars.NotificationSuccess, constvars.PatientDeletedSuccess)
	p.navigator.Refresh(ctx)
	return nil
}

func (p *Portal) DeactivateUser(ctx context.Context, userID int) error {
	token, err := p.authorize(ctx, models.PageUsers)
	if err != nil {
		return err
	}
	if err := p.pages.DeactivateUser(ctx, token, userID); err != nil {
		return p.actionFailed(ctx, token, err)
	}
	p.queue.Notify(constvars.NotificationSuccess, constvars.UserDeactivatedSuccess)
	p.navigator.Refresh(ctx)
	return nil
}

// authorize applies the page guard to an action launched from that page.
func (p *Portal) authorize(ctx context.Context, page models.Page) (string, error) {
	if err := p.guard(); err != nil {
		return "", err
	}
	current := p.session.Current()
	if !current.IsAuthenticated() {
		p.queue.Notify(constvars.NotificationWarning, constvars.MsgPermissionLoginRequired)
		return "", exceptions.ErrNotAuthenticated()
	}
	if !navigation.Allowed(current.Role(), page) {
		message := navigation.DenialMessage(current.Role(), page)
		p.queue.Notify(constvars.NotificationError, message)
		return "", exceptions.ErrNavigationDenied(page.String(), current.Role().String(), message)
	}
	return current.Token, nil
}

// actionFailed reports a failed record action made with token. A 401 logs
// that session out instead of showing the error.
func (p *Portal) actionFailed(ctx context.Context, token string, err error) error {
	if exceptions.IsAuthExpired(err) {
		p.session.Expire(ctx, token)
		return err
	}
	_, message := utils.ErrorStatus(err)
	p.queue.Notify(constvars.NotificationError, message)
	return err
}

func (p *Portal) guard() error {
	if p.disposed.Load() {
		return exceptions.ErrPortalClosed()
	}
	p.touch()
	return nil
}

func (p *Portal) touch() {
	p.lastSeen.Store(time.Now().UnixNano())
}
