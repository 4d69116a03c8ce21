package middlewares

import (
	"medora-portal/internal/app/config"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Cookies        *securecookie.SecureCookie
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		Cookies:        newCookieCodec(internalConfig.Portal),
	}
}

// newCookieCodec signs the client cookie, and encrypts it too when a block
// key is configured.
func newCookieCodec(portalConfig config.Portal) *securecookie.SecureCookie {
	var blockKey []byte
	if portalConfig.ClientCookieBlockKey != "" {
		blockKey = []byte(portalConfig.ClientCookieBlockKey)
	}
	codec := securecookie.New([]byte(portalConfig.ClientCookieHashKey), blockKey)
	codec.MaxAge(int(cookieMaxAge(portalConfig) / time.Second))
	return codec
}

func cookieMaxAge(portalConfig config.Portal) time.Duration {
	return time.Duration(portalConfig.ClientCookieMaxAgeDays) * 24 * time.Hour
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}
