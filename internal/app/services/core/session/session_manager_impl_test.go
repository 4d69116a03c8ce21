package session

import (
	"context"
	"errors"
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/app/contracts/mocks"
	"medora-portal/internal/app/models"
	"medora-portal/internal/app/services/shared/storage"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/responses"
	"medora-portal/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testClientID = "client-a"

type fixture struct {
	manager  *sessionManager
	medora   *mocks.MockMedoraClient
	storage  contracts.ClientStorage
	notifier *mocks.RecordingNotifier
	events   []models.SessionEvent
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		medora:   new(mocks.MockMedoraClient),
		storage:  storage.NewMemoryStorage(),
		notifier: new(mocks.RecordingNotifier),
	}
	f.manager = NewSessionManager(testClientID, f.medora, f.storage, f.notifier, zap.NewNop()).(*sessionManager)
	f.manager.Subscribe(func(ctx context.Context, event models.SessionEvent, session models.Session) {
		f.events = append(f.events, event)
	})
	return f
}

func doctor() *models.User {
	return &models.User{ID: 2, Username: "doc1", FirstName: "Dana", LastName: "Reyes", Role: models.RoleDoctor, IsActive: true}
}

func patientUser() *models.User {
	return &models.User{ID: 5, Username: "pat1", FirstName: "Ana", LastName: "Li", Phone: "+15550100", Role: models.RoleUser, IsActive: true}
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": expiresAt.Unix()}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Credentials Set Token And User", func(t *testing.T) {
		f := newFixture(t)
		request := &requests.Login{Username: "doc1", Password: "pw"}
		f.medora.On("Login", mock.Anything, request).Return(&responses.Auth{AccessToken: "tok", User: doctor()}, nil)

		require.NoError(t, f.manager.Login(ctx, request))

		current := f.manager.Current()
		assert.Equal(t, "tok", current.Token)
		assert.Equal(t, models.RoleDoctor, current.Role())
		token, user, err := f.storage.Load(ctx, testClientID)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.Equal(t, "Dana", user.FirstName)
		assert.Equal(t, []models.SessionEvent{models.SessionAuthenticated}, f.events)
		assert.Equal(t, "Welcome back, Dana! Login successful!", f.notifier.Last().Message)
	})

	t.Run("Invalid Credentials Leave Session Absent", func(t *testing.T) {
		f := newFixture(t)
		rejected := &exceptions.RequestRejected{Status: 401, Message: "Invalid credentials"}
		f.medora.On("Login", mock.Anything, mock.Anything).Return(nil, rejected)

		err := f.manager.Login(ctx, &requests.Login{Username: "doc1", Password: "bad"})
		require.Error(t, err)

		current := f.manager.Current()
		assert.Empty(t, current.Token)
		assert.Nil(t, current.User)
		token, user, _ := f.storage.Load(ctx, testClientID)
		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.Empty(t, f.events)
		assert.Equal(t, models.Notification{Level: constvars.NotificationError, Message: "Invalid credentials"}, f.notifier.Last())
	})

	t.Run("Network Failure Keeps Existing Session", func(t *testing.T) {
		f := newFixture(t)
		f.medora.On("Login", mock.Anything, &requests.Login{Username: "doc1", Password: "pw"}).Return(&responses.Auth{AccessToken: "tok", User: doctor()}, nil)
		f.medora.On("Login", mock.Anything, &requests.Login{Username: "other", Password: "pw"}).Return(nil, &exceptions.NetworkFailure{Err: errors.New("timeout")})
		require.NoError(t, f.manager.Login(ctx, &requests.Login{Username: "doc1", Password: "pw"}))

		err := f.manager.Login(ctx, &requests.Login{Username: "other", Password: "pw"})
		require.Error(t, err)

		assert.Equal(t, "tok", f.manager.Current().Token)
		assert.Equal(t, constvars.MsgNetworkErrorCheckConnection, f.notifier.Last().Message)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Record Failure Still Authenticates", func(t *testing.T) {
		f := newFixture(t)
		request := &requests.Register{Username: "pat1", Email: "a@b.co", Password: "secret", FirstName: "Ana", LastName: "Li"}
		f.medora.On("Register", mock.Anything, request).Return(&responses.Auth{AccessToken: "tok", User: patientUser()}, nil)
		f.medora.On("CreatePatient", mock.Anything, "tok", mock.AnythingOfType("*requests.NewPatientFromRegistration")).
			Return(nil, &exceptions.RequestRejected{Status: 500, Message: "db down"})

		require.NoError(t, f.manager.Register(ctx, request))

		assert.True(t, f.manager.Current().IsAuthenticated())
		assert.Equal(t, []models.SessionEvent{models.SessionAuthenticated}, f.events)
		for _, n := range f.notifier.All() {
			assert.NotEqual(t, constvars.NotificationError, n.Level)
		}
		f.medora.AssertExpectations(t)
	})

	t.Run("Patient Record Uses Registration Defaults", func(t *testing.T) {
		f := newFixture(t)
		f.medora.On("Register", mock.Anything, mock.Anything).Return(&responses.Auth{AccessToken: "tok", User: patientUser()}, nil)
		f.medora.On("CreatePatient", mock.Anything, "tok", &requests.NewPatientFromRegistration{
			FirstName:   "Ana",
			LastName:    "Li",
			Phone:       "+15550100",
			DateOfBirth: "1990-01-01",
			Gender:      "Not specified",
		}).Return(&responses.Patient{}, nil)

		require.NoError(t, f.manager.Register(ctx, &requests.Register{Username: "pat1"}))

		assert.Equal(t, constvars.PatientRecordCreated, f.notifier.Last().Message)
		f.medora.AssertExpectations(t)
	})

	t.Run("Doctor Gets No Patient Record", func(t *testing.T) {
		f := newFixture(t)
		f.medora.On("Register", mock.Anything, mock.Anything).Return(&responses.Auth{AccessToken: "tok", User: doctor()}, nil)

		require.NoError(t, f.manager.Register(ctx, &requests.Register{Username: "doc1"}))

		f.medora.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejected Registration", func(t *testing.T) {
		f := newFixture(t)
		f.medora.On("Register", mock.Anything, mock.Anything).Return(nil, &exceptions.RequestRejected{Status: 400})

		err := f.manager.Register(ctx, &requests.Register{Username: "pat1"})
		require.Error(t, err)
		assert.False(t, f.manager.Current().IsAuthenticated())
		assert.Equal(t, constvars.MsgRegistrationFailed, f.notifier.Last().Message)
	})
}

func TestLogoutAndRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("Logout Then Restore Is Unauthenticated", func(t *testing.T) {
		f := newFixture(t)
		f.medora.On("Login", mock.Anything, mock.Anything).Return(&responses.Auth{AccessToken: "tok", User: doctor()}, nil)
		require.NoError(t, f.manager.Login(ctx, &requests.Login{Username: "doc1", Password: "pw"}))

		f.manager.Logout(ctx)
		f.manager.Logout(ctx)
		session := f.manager.Restore(ctx)

		assert.False(t, session.IsAuthenticated())
		assert.False(t, f.manager.Current().IsAuthenticated())
		assert.Equal(t, models.SessionUnauthenticated, f.events[len(f.events)-1])
		f.medora.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything)
	})

	t.Run("Restore Fetches Profile", func(t *testing.T) {
		f := newFixture(t)
		token := signedToken(t, time.Now().Add(time.Hour))
		require.NoError(t, f.storage.Save(ctx, testClientID, token, doctor()))
		fresh := doctor()
		fresh.Phone = "+15550199"
		f.medora.On("FetchProfile", mock.Anything, token).Return(fresh, nil)

		session := f.manager.Restore(ctx)

		assert.True(t, session.IsAuthenticated())
		assert.Equal(t, "+15550199", f.manager.Current().User.Phone)
		assert.Equal(t, []models.SessionEvent{models.SessionAuthenticated}, f.events)
	})

	t.Run("Restore Failure Clears Storage", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.storage.Save(ctx, testClientID, "tok", doctor()))
		f.medora.On("FetchProfile", mock.Anything, "tok").Return(nil, &exceptions.NetworkFailure{Err: errors.New("refused")})

		session := f.manager.Restore(ctx)

		assert.False(t, session.IsAuthenticated())
		token, user, _ := f.storage.Load(ctx, testClientID)
		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.Equal(t, []models.SessionEvent{models.SessionUnauthenticated}, f.events)
		f.medora.AssertNumberOfCalls(t, "FetchProfile", 1)
	})

	t.Run("Expired Token Skips Backend", func(t *testing.T) {
		f := newFixture(t)
		token := signedToken(t, time.Now().Add(-time.Minute))
		require.NoError(t, f.storage.Save(ctx, testClientID, token, doctor()))

		session := f.manager.Restore(ctx)

		assert.False(t, session.IsAuthenticated())
		f.medora.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	login := func(t *testing.T, f *fixture) {
		f.medora.On("Login", mock.Anything, mock.Anything).Return(&responses.Auth{AccessToken: "tok", User: doctor()}, nil)
		require.NoError(t, f.manager.Login(ctx, &requests.Login{Username: "doc1", Password: "pw"}))
	}

	t.Run("Merges Fields And Keeps Token", func(t *testing.T) {
		f := newFixture(t)
		login(t, f)
		phone := "+15550123"
		fields := models.ProfileFields{Phone: &phone}
		merged := fields.MergeInto(doctor())
		f.medora.On("UpdateProfile", mock.Anything, "tok", fields).Return(merged, nil)

		user, err := f.manager.UpdateProfile(ctx, fields)
		require.NoError(t, err)

		assert.Equal(t, merged, user)
		token, stored, _ := f.storage.Load(ctx, testClientID)
		assert.Equal(t, "tok", token)
		assert.Equal(t, merged, stored)
		assert.Equal(t, "Dana", stored.FirstName)
	})

	t.Run("Stale Echo Keeps Submitted Fields", func(t *testing.T) {
		f := newFixture(t)
		login(t, f)
		phone := "+15550123"
		f.medora.On("UpdateProfile", mock.Anything, "tok", mock.Anything).Return(doctor(), nil)

		user, err := f.manager.UpdateProfile(ctx, models.ProfileFields{Phone: &phone})
		require.NoError(t, err)

		assert.Equal(t, phone, user.Phone)
		_, stored, _ := f.storage.Load(ctx, testClientID)
		assert.Equal(t, phone, stored.Phone)
		assert.Equal(t, "Reyes", stored.LastName)
	})

	t.Run("Unauthorized Logs Out", func(t *testing.T) {
		f := newFixture(t)
		login(t, f)
		f.medora.On("UpdateProfile", mock.Anything, "tok", mock.Anything).Return(nil, &exceptions.RequestRejected{Status: 401, Message: "Token has expired"})

		_, err := f.manager.UpdateProfile(ctx, models.ProfileFields{})
		require.Error(t, err)

		assert.False(t, f.manager.Current().IsAuthenticated())
		assert.Equal(t, models.SessionUnauthenticated, f.events[len(f.events)-1])
		token, _, _ := f.storage.Load(ctx, testClientID)
		assert.Empty(t, token)
	})

	t.Run("Late Response After Logout Is Dropped", func(t *testing.T) {
		f := newFixture(t)
		login(t, f)
		f.medora.On("UpdateProfile", mock.Anything, "tok", mock.Anything).
			Run(func(args mock.Arguments) { f.manager.Logout(ctx) }).
			Return(doctor(), nil)

		_, err := f.manager.UpdateProfile(ctx, models.ProfileFields{})

		assert.ErrorIs(t, err, exceptions.ErrUnauthenticated)
		assert.False(t, f.manager.Current().IsAuthenticated())
		_, user, _ := f.storage.Load(ctx, testClientID)
		assert.Nil(t, user)
	})

	t.Run("Not Logged In", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.manager.UpdateProfile(ctx, models.ProfileFields{})
		assert.ErrorIs(t, err, exceptions.ErrUnauthenticated)
	})
}

func TestExpire(t *testing.T) {
	ctx := context.Background()

	t.Run("Active Token Logs Out", func(t *testing.T) {
		f := newFixture(t)
		f.medora.On("Login", mock.Anything, mock.Anything).Return(&responses.Auth{AccessToken: "tok", User: doctor()}, nil)
		require.NoError(t, f.manager.Login(ctx, &requests.Login{Username: "doc1", Password: "pw"}))

		f.manager.Expire(ctx, "tok")

		assert.False(t, f.manager.Current().IsAuthenticated())
		assert.Equal(t, models.SessionUnauthenticated, f.events[len(f.events)-1])
		token, user, _ := f.storage.Load(ctx, testClientID)
		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.Equal(t, constvars.ErrClientNotLoggedIn, f.notifier.Last().Message)
	})

	t.Run("Replaced Token Is Ignored", func(t *testing.T) {
		f := newFixture(t)
		f.medora.On("Login", mock.Anything, mock.Anything).Return(&responses.Auth{AccessToken: "new", User: doctor()}, nil)
		require.NoError(t, f.manager.Login(ctx, &requests.Login{Username: "doc1", Password: "pw"}))

		f.manager.Expire(ctx, "old")
		f.manager.Expire(ctx, "")

		assert.Equal(t, "new", f.manager.Current().Token)
		assert.Equal(t, []models.SessionEvent{models.SessionAuthenticated}, f.events)
		token, _, _ := f.storage.Load(ctx, testClientID)
		assert.Equal(t, "new", token)
	})
}

func TestRefreshProfile(t *testing.T) {
	ctx := context.Background()
	login := func(t *testing.T, f *fixture) {
		f.medora.On("Login", mock.Anything, mock.Anything).Return(&responses.Auth{AccessToken: "tok", User: doctor()}, nil)
		require.NoError(t, f.manager.Login(ctx, &requests.Login{Username: "doc1", Password: "pw"}))
	}

	t.Run("Replaces User", func(t *testing.T) {
		f := newFixture(t)
		login(t, f)
		fresh := doctor()
		fresh.Phone = "+15550199"
		f.medora.On("FetchProfile", mock.Anything, "tok").Return(fresh, nil)

		require.NoError(t, f.manager.RefreshProfile(ctx))

		assert.Equal(t, "+15550199", f.manager.Current().User.Phone)
		token, stored, _ := f.storage.Load(ctx, testClientID)
		assert.Equal(t, "tok", token)
		assert.Equal(t, fresh, stored)
		assert.Equal(t, constvars.ProfileRefreshedSuccess, f.notifier.Last().Message)
	})

	t.Run("Network Failure Keeps Session", func(t *testing.T) {
		f := newFixture(t)
		login(t, f)
		f.medora.On("FetchProfile", mock.Anything, "tok").Return(nil, &exceptions.NetworkFailure{Err: errors.New("dial tcp: refused")})

		require.Error(t, f.manager.RefreshProfile(ctx))

		assert.True(t, f.manager.Current().IsAuthenticated())
		assert.Equal(t, constvars.NotificationError, f.notifier.Last().Level)
	})

	t.Run("Unauthorized Logs Out", func(t *testing.T) {
		f := newFixture(t)
		login(t, f)
		f.medora.On("FetchProfile", mock.Anything, "tok").Return(nil, &exceptions.RequestRejected{Status: 401})

		require.Error(t, f.manager.RefreshProfile(ctx))

		assert.False(t, f.manager.Current().IsAuthenticated())
	})

	t.Run("Not Logged In", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.manager.RefreshProfile(ctx), exceptions.ErrUnauthenticated)
	})
}
