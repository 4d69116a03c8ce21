package medoraapi

import (
	"context"
	"io"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *medoraClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return newMedoraClient(server.URL+"/api", 2*time.Second, rate.NewLimiter(rate.Inf, 1), zap.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/login", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"username":"doc1","password":"pw"}`, string(body))
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"message":      "Login successful",
				"access_token": "tok",
				"user":         map[string]interface{}{"id": 7, "username": "doc1", "role": "doctor", "first_name": "Dana"},
			})
		})

		auth, err := client.Login(ctx, &requests.Login{Username: "doc1", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "tok", auth.AccessToken)
		assert.Equal(t, models.RoleDoctor, auth.User.Role)
		assert.Equal(t, 7, auth.User.ID)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		})

		_, err := client.Login(ctx, &requests.Login{Username: "doc1", Password: "bad"})
		rejected, ok := exceptions.AsRequestRejected(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rejected.Status)
		assert.Equal(t, "Invalid credentials", rejected.Message)
	})

	t.Run("Missing Token In Success Body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
		})

		_, err := client.Login(ctx, &requests.Login{Username: "doc1", Password: "pw"})
		rejected, ok := exceptions.AsRequestRejected(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, rejected.Status)
	})
}

func TestFetchProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends Bearer Token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"user": map[string]interface{}{"id": 1, "username": "admin", "role": "admin"},
			})
		})

		user, err := client.FetchProfile(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("Expired Token Uses Msg Key", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token has expired"})
		})

		_, err := client.FetchProfile(ctx, "tok")
		assert.True(t, exceptions.IsAuthExpired(err))
		assert.Equal(t, "Token has expired", exceptions.UserMessage(err, "net", "fallback"))
	})

	t.Run("Unreachable Backend", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()
		client := newMedoraClient(url, time.Second, rate.NewLimiter(rate.Inf, 1), zap.NewNop())

		_, err := client.FetchProfile(ctx, "tok")
		assert.True(t, exceptions.IsNetworkFailure(err))
		_, rejected := exceptions.AsRequestRejected(err)
		assert.False(t, rejected)
	})
}

func TestPatients(t *testing.T) {
	ctx := context.Background()

	t.Run("List Sends Pagination", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "50", r.URL.Query().Get("per_page"))
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"patients":   []map[string]interface{}{{"id": 3, "first_name": "Ana", "last_name": "Li"}},
				"pagination": map[string]interface{}{"page": 2, "pages": 3, "total": 120, "has_next": true},
			})
		})

		result, err := client.ListPatients(ctx, "tok", &requests.Pagination{Page: 2, PerPage: 50})
		require.NoError(t, err)
		require.Len(t, result.Patients, 1)
		assert.Equal(t, "Ana", result.Patients[0].FirstName)
		assert.True(t, result.Pagination.HasNext)
	})

	t.Run("Search Sends Query", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients/search", r.URL.Path)
			assert.Equal(t, "ana li", r.URL.Query().Get("q"))
			writeJSON(w, http.StatusOK, map[string]interface{}{"patients": []interface{}{}})
		})

		patients, err := client.SearchPatients(ctx, "tok", "ana li")
		require.NoError(t, err)
		assert.Empty(t, patients)
	})

	t.Run("My Patient Not Found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Patient record not found"})
		})

		_, err := client.MyPatient(ctx, "tok")
		assert.True(t, exceptions.IsRemoteNotFound(err))
	})

	t.Run("Delete Uses Id Path", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/patients/42", r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Patient deleted"})
		})

		assert.NoError(t, client.DeletePatient(ctx, "tok", 42))
	})
}

func TestDeactivateUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/users/9", r.URL.Path)
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "Admin access required"})
	})

	err := client.DeactivateUser(context.Background(), "tok", 9)
	rejected, ok := exceptions.AsRequestRejected(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, rejected.Status)
	assert.Equal(t, "Admin access required", rejected.Message)
}

func TestExtractErrorMessage(t *testing.T) {
	assert.Equal(t, "a", extractErrorMessage([]byte(`{"error":"a","msg":"b"}`)))
	assert.Equal(t, "b", extractErrorMessage([]byte(`{"msg":"b","message":"c"}`)))
	assert.Equal(t, "c", extractErrorMessage([]byte(`{"message":"c"}`)))
	assert.Equal(t, "", extractErrorMessage([]byte(`<html>bad gateway</html>`)))
	assert.Equal(t, "", extractErrorMessage([]byte(`{"error":{"code":1}}`)))
}
