package exceptions

import (
	"errors"
	"fmt"
	"medora-portal/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidation, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrMissingRequiredFields = func(clientMessage string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, clientMessage, constvars.ErrDevMissingRequiredFields)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}
	ErrTemplateRender = func(err error, templateName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRenderTemplate, templateName))
	}
	ErrTemplateParse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevParseTemplate)
	}

	// Portal
	ErrUnknownPage = func(page string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientPageNotFound, fmt.Sprintf(constvars.ErrDevUnknownPage, page))
	}
	ErrNavigationDenied = func(page, role, clientMessage string) *CustomError {
		return BuildNewCustomError(ErrPermissionDenied, constvars.StatusForbidden, clientMessage, fmt.Sprintf(constvars.ErrDevNavigationDenied, page, role))
	}
	ErrNotAuthenticated = func() *CustomError {
		return BuildNewCustomError(ErrUnauthenticated, constvars.StatusUnauthorized, constvars.MsgPermissionLoginRequired, constvars.ErrDevNotAuthenticated)
	}
	ErrPortalClosed = func() *CustomError {
		return BuildNewCustomError(ErrPortalDisposed, constvars.StatusGone, constvars.ErrClientPortalClosed, constvars.ErrDevPortalDisposed)
	}
	ErrPortalCreate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPortalCreate)
	}
	ErrClientIDMissing = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevClientIDMissing)
	}
	ErrUnknownStorageDriver = func(driver string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUnknownStorageDriver, driver))
	}
	ErrStorageHalfWritten = func(clientID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageHalfWritten, clientID))
	}

	// Medora backend
	ErrMedoraDecodeResponse = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMedoraDecodeResponse, path))
	}
	// ErrMedoraRequest wraps a NetworkFailure or RequestRejected for the
	// portal's own HTTP response. Backend 4xx statuses pass through.
	ErrMedoraRequest = func(err error, clientMessage string) *CustomError {
		if rejected, ok := AsRequestRejected(err); ok {
			status := rejected.Status
			if status < constvars.StatusBadRequest || status >= constvars.StatusInternalServerError {
				status = constvars.StatusBadGateway
			}
			return BuildNewCustomError(err, status, clientMessage, fmt.Sprintf(constvars.ErrDevMedoraRequestRejected, rejected.Method, rejected.Path, rejected.Status))
		}
		var netErr *NetworkFailure
		if errors.As(err, &netErr) {
			return BuildNewCustomError(err, constvars.StatusServiceUnavailable, clientMessage, fmt.Sprintf(constvars.ErrDevMedoraNetworkFailure, netErr.Method, netErr.Path))
		}
		return BuildNewCustomError(err, constvars.StatusInternalServerError, clientMessage, constvars.ErrDevServerProcess)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
)
