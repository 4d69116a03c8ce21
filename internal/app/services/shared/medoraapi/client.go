package medoraapi

import (
	"context"
	"medora-portal/internal/app/config"
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	pathLogin           = "/login"
	pathRegister        = "/register"
	pathProfile         = "/profile"
	pathDashboard       = "/dashboard"
	pathAppointments    = "/appointments"
	pathPatients        = "/patients"
	pathPatientsSearch  = "/patients/search"
	pathMyPatient       = "/patients/my-patient"
	pathPatientByID     = "/patients/{id}"
	pathUsers           = "/users"
	pathUserByID        = "/users/{id}"
	userAgentMedoraPrtl = "medora-portal"
)

// Keys the backend uses for error text, in the order they are tried.
// "msg" is what the JWT layer answers with on expired tokens.
var errorMessageKeys = []string{"error", "msg", "message"}

type medoraClient struct {
	client  *resty.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

type call struct {
	method     string
	path       string
	token      string
	pathParams map[string]string
	query      map[string]string
	body       interface{}
}

func NewMedoraClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.MedoraClient {
	limit := rate.Inf
	if internalConfig.Medora.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(internalConfig.Medora.MaxRequestsPerSecond)
	}
	burst := internalConfig.Medora.MaxBurst
	if burst < 1 {
		burst = 1
	}
	return newMedoraClient(
		internalConfig.Medora.BaseUrl,
		time.Duration(internalConfig.Medora.RequestTimeoutInSeconds)*time.Second,
		rate.NewLimiter(limit, burst),
		logger,
	)
}

func newMedoraClient(baseURL string, timeout time.Duration, limiter *rate.Limiter, logger *zap.Logger) *medoraClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader(constvars.HeaderAccept, constvars.MIMEApplicationJSON).
		SetHeader(constvars.HeaderUserAgent, userAgentMedoraPrtl)

	return &medoraClient{
		client:  client,
		limiter: limiter,
		log:     logger,
	}
}

// do sends one request. It never retries: the user retries by repeating the
// action. result may be nil when the body is not needed.
func (c *medoraClient) do(ctx context.Context, in call, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &exceptions.NetworkFailure{Method: in.method, Path: in.path, Err: err}
	}

	request := c.client.R().SetContext(ctx)
	if in.token != "" {
		request.SetAuthToken(in.token)
	}
	if len(in.pathParams) > 0 {
		request.SetPathParams(in.pathParams)
	}
	if len(in.query) > 0 {
		request.SetQueryParams(in.query)
	}
	if in.body != nil {
		request.SetHeader(constvars.HeaderContentType, constvars.MIMEApplicationJSON).SetBody(in.body)
	}

	start := time.Now()
	response, err := request.Execute(in.method, in.path)
	if err != nil {
		c.log.Warn("Medora request failed",
			zap.String(constvars.LoggingMethodKey, in.method),
			zap.String(constvars.LoggingRemotePathKey, in.path),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		return &exceptions.NetworkFailure{Method: in.method, Path: in.path, Err: err}
	}

	c.log.Debug("Medora request completed",
		zap.String(constvars.LoggingMethodKey, in.method),
		zap.String(constvars.LoggingRemotePathKey, in.path),
		zap.Int(constvars.LoggingRemoteStatus, response.StatusCode()),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	status := response.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &exceptions.RequestRejected{
			Method:  in.method,
			Path:    in.path,
			Status:  status,
			Message: extractErrorMessage(response.Body()),
		}
	}

	if result == nil || len(response.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(response.Body(), result); err != nil {
		c.log.Error("Medora response undecodable",
			zap.Error(exceptions.ErrMedoraDecodeResponse(err, in.path)),
		)
		// An unreadable 2xx body is reported as a rejection so callers keep
		// dealing with exactly two failure kinds.
		return &exceptions.RequestRejected{Method: in.method, Path: in.path, Status: http.StatusBadGateway}
	}
	return nil
}

func extractErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, key := range errorMessageKeys {
		value := gjson.GetBytes(body, key)
		if value.Exists() && value.Type == gjson.String && value.String() != "" {
			return value.String()
		}
	}
	return ""
}
