package session

import (
	"context"
	"fmt"
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/exceptions"
	"medora-portal/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// sessionManager owns one browser's token and user. The lock only guards
// the in-memory state; backend and storage calls run without it, so
// concurrent operations settle in the order their responses arrive.
type sessionManager struct {
	ClientID     string
	MedoraClient contracts.MedoraClient
	Storage      contracts.ClientStorage
	Notifier     contracts.Notifier
	Log          *zap.Logger
	now          func() time.Time

	mu        sync.RWMutex
	state     models.Session
	listeners []contracts.SessionListener
}

func NewSessionManager(
	clientID string,
	medoraClient contracts.MedoraClient,
	storage contracts.ClientStorage,
	notifier contracts.Notifier,
	logger *zap.Logger,
) contracts.SessionManager {
	return &sessionManager{
		ClientID:     clientID,
		MedoraClient: medoraClient,
		Storage:      storage,
		Notifier:     notifier,
		Log:          logger.With(zap.String(constvars.LoggingClientIDKey, clientID)),
		now:          time.Now,
	}
}

func (sm *sessionManager) Subscribe(listener contracts.SessionListener) {
	sm.mu.Lock()
	sm.listeners = append(sm.listeners, listener)
	sm.mu.Unlock()
}

func (sm *sessionManager) Current() models.Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.state.Snapshot()
}

// Restore makes a single attempt to revive the persisted session. Anything
// short of a fresh profile from the backend clears storage.
func (sm *sessionManager) Restore(ctx context.Context) models.Session {
	sm.Log.Info("sessionManager.Restore called", utils.RequestFields(ctx)...)

	token, user, err := sm.Storage.Load(ctx, sm.ClientID)
	if err != nil {
		sm.Log.Warn("sessionManager.Restore error loading client storage",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
		sm.reset(ctx)
		return models.Session{}
	}
	if token == "" || user == nil {
		sm.reset(ctx)
		return models.Session{}
	}
	if utils.TokenExpired(token, sm.now()) {
		sm.Log.Info("sessionManager.Restore persisted token already expired", utils.RequestFields(ctx)...)
		sm.reset(ctx)
		return models.Session{}
	}

	profile, err := sm.MedoraClient.FetchProfile(ctx, token)
	if err != nil {
		sm.Log.Info("sessionManager.Restore profile fetch failed",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
		sm.reset(ctx)
		return models.Session{}
	}

	if err := sm.Storage.Save(ctx, sm.ClientID, token, profile); err != nil {
		sm.Log.Error("sessionManager.Restore error persisting session",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
	}
	session := sm.set(models.Session{Token: token, User: profile})
	sm.emit(ctx, models.SessionAuthenticated, session)

	sm.Log.Info("sessionManager.Restore succeeded",
		append(utils.RequestFields(ctx), zap.Int(constvars.LoggingUserIDKey, profile.ID))...,
	)
	return session
}

// Login leaves the current session untouched on failure. The returned error
// carries the message already queued as a notification.
func (sm *sessionManager) Login(ctx context.Context, request *requests.Login) error {
	sm.Log.Info("sessionManager.Login called", utils.RequestFields(ctx)...)

	auth, err := sm.MedoraClient.Login(ctx, request)
	if err != nil {
		message := exceptions.UserMessage(err, constvars.MsgNetworkErrorCheckConnection, constvars.MsgLoginFailed)
		sm.Notifier.Notify(constvars.NotificationError, message)
		sm.Log.Info("sessionManager.Login rejected",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
		return exceptions.ErrMedoraRequest(err, message)
	}

	session := sm.establish(ctx, auth.AccessToken, auth.User)
	sm.Notifier.Notify(constvars.NotificationSuccess, fmt.Sprintf(constvars.LoginSuccessFormat, session.User.FirstName))
	sm.emit(ctx, models.SessionAuthenticated, session)

	sm.Log.Info("sessionManager.Login succeeded",
		append(utils.RequestFields(ctx),
			zap.Int(constvars.LoggingUserIDKey, session.User.ID),
			zap.String(constvars.LoggingRoleKey, session.Role().String()),
		)...,
	)
	return nil
}

// Register authenticates like Login. Accounts that own a patient record
// get one created right away; that call is best effort and its failure
// only shows up in the logs.
func (sm *sessionManager) Register(ctx context.Context, request *requests.Register) error {
	sm.Log.Info("sessionManager.Register called", utils.RequestFields(ctx)...)

	auth, err := sm.MedoraClient.Register(ctx, request)
	if err != nil {
		message := exceptions.UserMessage(err, constvars.MsgNetworkErrorCheckConnection, constvars.MsgRegistrationFailed)
		sm.Notifier.Notify(constvars.NotificationError, message)
		sm.Log.Info("sessionManager.Register rejected",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
		return exceptions.ErrMedoraRequest(err, message)
	}

	session := sm.establish(ctx, auth.AccessToken, auth.User)
	sm.Notifier.Notify(constvars.NotificationSuccess, fmt.Sprintf(constvars.RegistrationSuccessFormat, session.User.FirstName))

	if session.Role().OwnsPatientRecord() {
		sm.createPatientRecord(ctx, session)
	}

	sm.emit(ctx, models.SessionAuthenticated, session)

	sm.Log.Info("sessionManager.Register succeeded",
		append(utils.RequestFields(ctx),
			zap.Int(constvars.LoggingUserIDKey, session.User.ID),
			zap.String(constvars.LoggingRoleKey, session.Role().String()),
		)...,
	)
	return nil
}

func (sm *sessionManager) createPatientRecord(ctx context.Context, session models.Session) {
	payload := &requests.NewPatientFromRegistration{
		FirstName:   session.User.FirstName,
		LastName:    session.User.LastName,
		Phone:       session.User.Phone,
		DateOfBirth: constvars.DefaultPatientDateOfBirth,
		Gender:      constvars.DefaultPatientGender,
	}
	if _, err := sm.MedoraClient.CreatePatient(ctx, session.Token, payload); err != nil {
		sm.Log.Warn("sessionManager.Register linked patient record was not created",
			append(utils.RequestFields(ctx),
				zap.Int(constvars.LoggingUserIDKey, session.User.ID),
				zap.Error(err),
			)...,
		)
		return
	}
	sm.Notifier.Notify(constvars.NotificationSuccess, constvars.PatientRecordCreated)
}

// Logout is unconditional and idempotent.
func (sm *sessionManager) Logout(ctx context.Context) {
	sm.Log.Info("sessionManager.Logout called", utils.RequestFields(ctx)...)
	sm.reset(ctx)
	sm.Notifier.Notify(constvars.NotificationSuccess, constvars.LogoutSuccess)
}

// Expire is Logout triggered by the backend refusing token. It does
// nothing once token is no longer the active one, so a 401 that lands
// after a re-login cannot end the newer session.
func (sm *sessionManager) Expire(ctx context.Context, token string) {
	sm.mu.Lock()
	if token == "" || sm.state.Token != token {
		sm.mu.Unlock()
		sm.Log.Info("sessionManager.Expire ignored rejection of a replaced token", utils.RequestFields(ctx)...)
		return
	}
	sm.state = models.Session{}
	sm.mu.Unlock()

	sm.Log.Info("sessionManager.Expire bearer token rejected by backend", utils.RequestFields(ctx)...)
	sm.cleared(ctx)
	sm.Notifier.Notify(constvars.NotificationWarning, constvars.ErrClientNotLoggedIn)
}

func (sm *sessionManager) UpdateProfile(ctx context.Context, fields models.ProfileFields) (*models.User, error) {
	sm.Log.Info("sessionManager.UpdateProfile called", utils.RequestFields(ctx)...)

	current := sm.Current()
	if !current.IsAuthenticated() {
		return nil, exceptions.ErrNotAuthenticated()
	}

	user, err := sm.MedoraClient.UpdateProfile(ctx, current.Token, fields)
	if err != nil {
		message := exceptions.UserMessage(err, constvars.MsgNetworkError, constvars.MsgUpdateFailed)
		if exceptions.IsAuthExpired(err) {
			sm.Expire(ctx, current.Token)
		} else {
			sm.Notifier.Notify(constvars.NotificationError, message)
		}
		sm.Log.Info("sessionManager.UpdateProfile rejected",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
		return nil, exceptions.ErrMedoraRequest(err, message)
	}

	// The submitted fields win over a backend echo that still carries the
	// old values.
	user = fields.MergeInto(user)
	if !sm.replaceUser(ctx, current.Token, user) {
		return nil, exceptions.ErrNotAuthenticated()
	}
	sm.Notifier.Notify(constvars.NotificationSuccess, constvars.ProfileUpdatedSuccess)

	sm.Log.Info("sessionManager.UpdateProfile succeeded", utils.RequestFields(ctx)...)
	return user.Clone(), nil
}

// RefreshProfile re-reads the user from the backend, picking up changes
// made from another device or by an administrator.
func (sm *sessionManager) RefreshProfile(ctx context.Context) error {
	sm.Log.Info("sessionManager.RefreshProfile called", utils.RequestFields(ctx)...)

	current := sm.Current()
	if !current.IsAuthenticated() {
		return exceptions.ErrNotAuthenticated()
	}

	user, err := sm.MedoraClient.FetchProfile(ctx, current.Token)
	if err != nil {
		message := exceptions.UserMessage(err, constvars.MsgNetworkError, constvars.MsgOperationFailed)
		if exceptions.IsAuthExpired(err) {
			sm.Expire(ctx, current.Token)
		} else {
			sm.Notifier.Notify(constvars.NotificationError, message)
		}
		sm.Log.Info("sessionManager.RefreshProfile rejected",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
		return exceptions.ErrMedoraRequest(err, message)
	}
	if !sm.replaceUser(ctx, current.Token, user) {
		return exceptions.ErrNotAuthenticated()
	}
	sm.Notifier.Notify(constvars.NotificationSuccess, constvars.ProfileRefreshedSuccess)

	sm.Log.Info("sessionManager.RefreshProfile succeeded", utils.RequestFields(ctx)...)
	return nil
}

// establish installs a fresh token and user, persisting both together.
func (sm *sessionManager) establish(ctx context.Context, token string, user *models.User) models.Session {
	if err := sm.Storage.Save(ctx, sm.ClientID, token, user); err != nil {
		sm.Log.Error("sessionManager error persisting session",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
	}
	return sm.set(models.Session{Token: token, User: user})
}

// replaceUser swaps the user only while token is still the active one, so
// a response that lands after a logout or a re-login is dropped.
func (sm *sessionManager) replaceUser(ctx context.Context, token string, user *models.User) bool {
	sm.mu.Lock()
	if sm.state.Token != token {
		sm.mu.Unlock()
		sm.Log.Info("sessionManager dropped profile for a replaced session", utils.RequestFields(ctx)...)
		return false
	}
	sm.state.User = user.Clone()
	sm.mu.Unlock()

	if err := sm.Storage.SaveUser(ctx, sm.ClientID, user); err != nil {
		sm.Log.Error("sessionManager error persisting user",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
	}
	return true
}

func (sm *sessionManager) set(session models.Session) models.Session {
	sm.mu.Lock()
	sm.state = session.Snapshot()
	sm.mu.Unlock()
	return session.Snapshot()
}

// reset clears memory and storage and signals unauthenticated.
func (sm *sessionManager) reset(ctx context.Context) {
	sm.set(models.Session{})
	sm.cleared(ctx)
}

// cleared finishes a logout once the in-memory state is already empty.
func (sm *sessionManager) cleared(ctx context.Context) {
	if err := sm.Storage.Clear(ctx, sm.ClientID); err != nil {
		sm.Log.Error("sessionManager error clearing client storage",
			append(utils.RequestFields(ctx), zap.Error(err))...,
		)
	}
	sm.emit(ctx, models.SessionUnauthenticated, models.Session{})
}

func (sm *sessionManager) emit(ctx context.Context, event models.SessionEvent, session models.Session) {
	sm.mu.RLock()
	listeners := make([]contracts.SessionListener, len(sm.listeners))
	copy(listeners, sm.listeners)
	sm.mu.RUnlock()

	sm.Log.Debug("sessionManager transition",
		append(utils.RequestFields(ctx), zap.Stringer(constvars.LoggingSessionEvent, event))...,
	)
	for _, listener := range listeners {
		listener(ctx, event, session)
	}
}
