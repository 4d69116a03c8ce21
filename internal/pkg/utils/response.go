package utils

import (
	"errors"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/responses"
	"medora-portal/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *models.Pagination, data interface{}) {
	response := responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ErrorStatus extracts the HTTP status and client-facing message of err.
func ErrorStatus(err error) (int, string) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode, customErr.ClientMessage
	}
	return constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication
}

func LogError(log *zap.Logger, err error, fields ...zap.Field) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		location := map[string]interface{}{
			"file":          customErr.Location.File,
			"line":          customErr.Location.Line,
			"function_name": customErr.Location.FunctionName,
		}
		fields = append(fields, zap.Any("location", location))
		if customErr.StatusCode < constvars.StatusInternalServerError {
			log.Warn(customErr.DevMessage, fields...)
			return
		}
		log.Error(customErr.DevMessage, fields...)
		return
	}
	log.Error(err.Error(), fields...)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	LogError(log, err)
	code, clientMessage := ErrorStatus(err)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	var customErr *exceptions.CustomError
	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
	if errors.As(err, &customErr) && appEnvironment != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Location = customErr.Location
	}
	json.NewEncoder(w).Encode(response)
}
