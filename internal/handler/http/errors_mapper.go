package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-char-keeper/internal/app"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/service"
	"github.com/MKhiriev/go-char-keeper/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins. Wrapped errors
// can match several targets, so specific errors go before generic ones.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidUserID, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrCharacterSelectionBusy, http.StatusConflict, app.MsgCharacterSelectionBusy},
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},

	{store.ErrNameAlreadyExists, http.StatusConflict, app.MsgNameAlreadyExists},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrUserCharacterNotFound, http.StatusConflict, app.MsgCharactersChanged},
	{store.ErrTransientDB, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(message)

	http.Error(w, message, status)
}
