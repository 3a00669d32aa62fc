package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-char-keeper/internal/app"
	"github.com/MKhiriev/go-char-keeper/internal/service"
	"github.com/MKhiriev/go-char-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"busy", service.ErrCharacterSelectionBusy, http.StatusConflict, app.MsgCharacterSelectionBusy},
		{"name taken", store.ErrNameAlreadyExists, http.StatusConflict, app.MsgNameAlreadyExists},
		{"not found", fmt.Errorf("error finding user: %w", store.ErrNoUserWasFound), http.StatusNotFound, app.MsgUserNotFound},
		{"transient", fmt.Errorf("%w: %w", store.ErrExecutingStatement, store.ErrTransientDB), http.StatusServiceUnavailable, app.MsgStorageUnavailable},
		{"low level", store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

// TestResponseFromError_FirstMatchWins verifies that a busy error wrapping a
// lock backend failure still maps to the busy response.
func TestResponseFromError_FirstMatchWins(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrCharacterSelectionBusy, store.ErrTransientDB)

	status, message := responseFromError(err)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, app.MsgCharacterSelectionBusy, message)
}
