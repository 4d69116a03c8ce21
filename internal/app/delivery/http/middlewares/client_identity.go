package middlewares

import (
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// ClientIdentity gives every browser a stable client id, carried in a
// signed cookie. A missing or tampered cookie gets a fresh id, which means
// a fresh portal and a logged out session.
func (m *Middlewares) ClientIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieName := m.InternalConfig.Portal.ClientCookieName

		clientID := ""
		if cookie, err := r.Cookie(cookieName); err == nil {
			if err := m.Cookies.Decode(cookieName, cookie.Value, &clientID); err != nil {
				m.Log.Warn("Middlewares.ClientIdentity rejected client cookie",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Error(err),
				)
				clientID = ""
			}
		}

		if clientID == "" {
			clientID = utils.GenerateClientID()
		}

		// Reissued on every request so the expiry slides.
		encoded, err := m.Cookies.Encode(cookieName, clientID)
		if err != nil {
			m.Log.Error("Middlewares.ClientIdentity failed to encode client cookie", zap.Error(err))
		} else {
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    encoded,
				Path:     "/",
				MaxAge:   int(cookieMaxAge(m.InternalConfig.Portal).Seconds()),
				HttpOnly: true,
				Secure:   m.InternalConfig.Portal.ClientCookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClientID(r.Context(), clientID)))
	})
}
