// Package response пишет JSON ответы и переводит ошибки сервисов в HTTP статусы.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/handlers/rest/dto"
	"freight/internal/handlers/rest/request"
	loadservice "freight/internal/service/load"
	"freight/internal/service/policy"
	truckservice "freight/internal/service/truck"
	userservice "freight/internal/service/user"
	"freight/pkg/logger"
	"freight/pkg/tx"
)

const (
	MsgSuccess      = "Success"
	MsgUnauthorized = "Unauthorized"
	MsgInternal     = "Something went wrong. Try restarting"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type errorStatus struct {
	target  error
	code    int
	message string
}

// Порядок важен: запреты машины оборачивают ErrForbidden, а тот ErrInvalidState.
var errorStatuses = []errorStatus{
	{policy.ErrUnauthorized, http.StatusUnauthorized, MsgUnauthorized},
	{userservice.ErrUserNotFound, http.StatusNotFound, "User is not found."},
	{loadservice.ErrLoadNotFound, http.StatusNotFound, "This load does not exist"},
	{truckservice.ErrTruckNotFound, http.StatusNotFound, "This truck does not exist"},
	{policy.ErrAccessDenied, http.StatusForbidden, "Access denied"},
	{truckservice.ErrForbiddenUpdate, http.StatusBadRequest, "Forbidden to update information."},
	{truckservice.ErrForbiddenDelete, http.StatusBadRequest, "Forbidden to delete truck."},
	{truckservice.ErrForbiddenAssign, http.StatusBadRequest, "Forbidden to change truck assignment while on load."},
	{policy.ErrForbidden, http.StatusBadRequest, "Forbidden to change state"},
	{policy.ErrInvalidState, http.StatusBadRequest, "Load status is not new"},
	{request.ErrInvalidID, http.StatusBadRequest, "Invalid id"},
	{request.ErrInvalidBody, http.StatusBadRequest, "Invalid request body"},
	{request.ErrInvalidQuery, http.StatusBadRequest, "Invalid query parameter"},
	{loadservice.ErrInvalidDimensions, http.StatusBadRequest, "Dimensions must be between 0 and 1000"},
	{loadservice.ErrInvalidPayload, http.StatusBadRequest, "Payload must be between 0 and 5000"},
	{loadservice.ErrInvalidPagination, http.StatusBadRequest, "Limit must not exceed 50"},
	{loadservice.ErrInvalidLoadStatus, http.StatusBadRequest, "Unknown load status"},
	{loadservice.ErrEmptyModify, http.StatusBadRequest, "Nothing to update"},
	{truckservice.ErrInvalidTruckType, http.StatusBadRequest, "Unknown truck type"},
	{truckservice.ErrInvalidTruckName, http.StatusBadRequest, "Truck name must be 1 to 64 characters"},
	{truckservice.ErrTruckLimitExceeded, http.StatusBadRequest, "Truck limit exceeded"},
	{truckservice.ErrConflict, http.StatusConflict, "Driver already has an assigned truck"},
	{truckservice.ErrTruckStateChanged, http.StatusConflict, "Truck was changed concurrently. Try again"},
	{tx.ErrConcurrentUpdate, http.StatusConflict, "Concurrent update. Try again"},
}

// Error пишет статус и сообщение для ошибки сервиса. Неизвестные ошибки
// логируются и уходят клиенту как 500 без подробностей.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			Status(w, log, es.code, es.message)
			return
		}
	}

	log.With(
		logger.NewField("error", err),
	).Error("request failed")
	Status(w, log, http.StatusInternalServerError, MsgInternal)
}

func Status(w http.ResponseWriter, log errorLogger, code int, message string) {
	JSON(w, log, code, dto.StatusResponse{Status: message})
}

func JSON(w http.ResponseWriter, log errorLogger, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
