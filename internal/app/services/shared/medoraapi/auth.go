package medoraapi

import (
	"context"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/responses"
	"medora-portal/internal/pkg/exceptions"
)

func (c *medoraClient) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	result := new(responses.Auth)
	err := c.do(ctx, call{method: constvars.MethodPost, path: pathLogin, body: request}, result)
	if err != nil {
		return nil, err
	}
	if err := requireCredentials(constvars.MethodPost, pathLogin, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *medoraClient) Register(ctx context.Context, request *requests.Register) (*responses.Auth, error) {
	result := new(responses.Auth)
	err := c.do(ctx, call{method: constvars.MethodPost, path: pathRegister, body: request}, result)
	if err != nil {
		return nil, err
	}
	if err := requireCredentials(constvars.MethodPost, pathRegister, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *medoraClient) FetchProfile(ctx context.Context, token string) (*models.User, error) {
	result := new(responses.Profile)
	err := c.do(ctx, call{method: constvars.MethodGet, path: pathProfile, token: token}, result)
	if err != nil {
		return nil, err
	}
	if result.User == nil {
		return nil, &exceptions.RequestRejected{Method: constvars.MethodGet, Path: pathProfile, Status: constvars.StatusBadGateway}
	}
	return result.User, nil
}

func (c *medoraClient) UpdateProfile(ctx context.Context, token string, fields models.ProfileFields) (*models.User, error) {
	result := new(responses.Profile)
	err := c.do(ctx, call{method: constvars.MethodPut, path: pathProfile, token: token, body: fields}, result)
	if err != nil {
		return nil, err
	}
	if result.User == nil {
		return nil, &exceptions.RequestRejected{Method: constvars.MethodPut, Path: pathProfile, Status: constvars.StatusBadGateway}
	}
	return result.User, nil
}

// requireCredentials rejects a 2xx auth answer that lacks the token or the
// user, since a session needs both.
func requireCredentials(method, path string, result *responses.Auth) error {
	if result.AccessToken == "" || result.User == nil {
		return &exceptions.RequestRejected{Method: method, Path: path, Status: constvars.StatusBadGateway}
	}
	return nil
}
