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

func (h *Handler) getCharacters(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	characters, err := h.services.CharacterService.GetUserCharacters(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getCharacters", err)
		return
	}

	writeJSON(w, r, characters, http.StatusOK)
}

// getMainCharacter answers 204 No Content when the user has no main character.
func (h *Handler) getMainCharacter(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	character, err := h.services.CharacterService.GetMainCharacter(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getMainCharacter", err)
		return
	}

	writeCharacter(w, r, character)
}

func (h *Handler) setMainCharacter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.MainCharacterRequest
	if err := utils.ReadJSON(r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.setMainCharacter").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), request); err != nil {
		log.Err(err).Str("func", "*Handler.setMainCharacter").Int64("character_id", request.CharacterID).Msg("invalid character id")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.CharacterService.SetMainCharacter(r.Context(), userID, request.CharacterID); err != nil {
		writeError(w, r, "*Handler.setMainCharacter", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getActiveCharacter honours the session character header and answers 204
// No Content when nothing can be resolved.
func (h *Handler) getActiveCharacter(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	sessionCharacterID := utils.GetSessionCharacterIDFromContext(r.Context())
	character, err := h.services.CharacterService.GetActiveCharacter(r.Context(), userID, sessionCharacterID)
	if err != nil {
		writeError(w, r, "*Handler.getActiveCharacter", err)
		return
	}

	writeCharacter(w, r, character)
}

func (h *Handler) getLoggedCharacters(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	characters, err := h.services.CharacterService.GetActiveCharacters(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getLoggedCharacters", err)
		return
	}

	writeJSON(w, r, characters, http.StatusOK)
}

func writeCharacter(w http.ResponseWriter, r *http.Request, character *models.UserCharacter) {
	if character == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, r, character, http.StatusOK)
}
