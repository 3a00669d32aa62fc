// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-char-keeper/internal/app"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/utils"
	"github.com/MKhiriev/go-char-keeper/models"
)

// sessionCharacterHeader carries the external id of the character the client
// currently plays. The server keeps no session state of its own.
const sessionCharacterHeader = models.HeaderSessionCharacterID

// withSessionCharacter copies the session character id from the request
// header into the context. An absent or empty header means no session
// character. A value that is not a non-negative integer answers 400.
func (h *Handler) withSessionCharacter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(sessionCharacterHeader))
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		characterID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || characterID < 0 {
			logger.FromRequest(r).Err(ErrInvalidSessionCharacter).Str("value", raw).Send()
			http.Error(w, app.MsgInvalidSessionCharacter, http.StatusBadRequest)
			return
		}

		ctx := utils.WithSessionCharacterID(r.Context(), characterID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
