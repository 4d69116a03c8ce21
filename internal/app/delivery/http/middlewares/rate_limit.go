package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the limiter applied to every request and the
// stricter one for login and registration attempts.
func (m *Middlewares) CreateRateLimiters() (generalLimiter, authLimiter func(next http.Handler) http.Handler) {
	generalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
	authLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxAuthRequestsPerMinute, time.Minute)
	return generalLimiter, authLimiter
}
