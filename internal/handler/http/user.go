// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-char-keeper/internal/app"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/utils"
	"github.com/MKhiriev/go-char-keeper/models"
)

func (h *Handler) getData(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	sessionCharacterID := utils.GetSessionCharacterIDFromContext(r.Context())
	data, err := h.services.UserService.GetData(r.Context(), userID, sessionCharacterID)
	if err != nil {
		writeError(w, r, "*Handler.getData", err)
		return
	}

	writeJSON(w, r, data, http.StatusOK)
}

func (h *Handler) updateEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.EmailUpdateRequest
	if err := utils.ReadJSON(r, &request); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateEmail").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.UpdateEmail(r.Context(), userID, request.Email); err != nil {
		writeError(w, r, "*Handler.updateEmail", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getAPIs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	apis, err := h.services.UserService.GetAPIs(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getAPIs", err)
		return
	}

	writeJSON(w, r, apis, http.StatusOK)
}

func (h *Handler) getMaps(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	maps, err := h.services.UserService.GetMaps(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getMaps", err)
		return
	}

	writeJSON(w, r, maps, http.StatusOK)
}

// userIDFromRequest returns the id stored by the auth middleware. On a miss
// it answers 401 itself and reports false.
func (h *Handler) userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
