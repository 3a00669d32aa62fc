package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-char-keeper/internal/app"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/store"
	"github.com/MKhiriev/go-char-keeper/internal/utils"
	"github.com/MKhiriev/go-char-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	h.writeToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		// an unknown name must look exactly like a wrong password
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("func", "*Handler.login").Msg("no user was found")
			http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
			return
		}
		writeError(w, r, "*Handler.login", err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeToken(w, r, foundUser)
}

// writeToken issues a token for user, puts it into the Authorization header
// and writes the public user fields as the body.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeToken").Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	user.Password = ""
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeToken").Msg("error writing response")
	}
}
