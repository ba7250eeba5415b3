package user_delete

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"courier-rating/internal/generated/dto"
	"courier-rating/internal/pkg/auth"
	"courier-rating/internal/service/user"
)

type Handler struct {
	log       handlerLogger
	service   Service
	passwords PasswordConfirmer
}

func New(log handlerLogger, service Service, passwords PasswordConfirmer) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		passwords: passwords,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	var confirmDTO dto.PasswordConfirm
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.passwords.ConfirmPassword(r.Context(), principal.UserID, confirmDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	err = h.service.DeleteUser(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, user.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrCourierHasOrders):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
