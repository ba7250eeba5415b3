package user_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"

	"courier-rating/internal/entities"
	"courier-rating/internal/generated/dto"
	"courier-rating/internal/pkg/auth"
	"courier-rating/internal/service/user"
	"courier-rating/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]

	// Профиль правит либо сам пользователь, либо админ.
	if principal.Role != entities.RoleAdmin && principal.UserID != id {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var userUpdateDTO dto.UserUpdate
	err := json.NewDecoder(r.Body).Decode(&userUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userModifyEntity := entities.UserModify{
		ID:       pointer.To(id),
		Username: userUpdateDTO.Username,
		Password: userUpdateDTO.Password,
		Name:     userUpdateDTO.Name,
	}

	userEntity, err := h.service.UpdateUser(r.Context(), userModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, user.ErrInvalidUserID),
			errors.Is(err, user.ErrInvalidUsername),
			errors.Is(err, user.ErrInvalidPassword),
			errors.Is(err, user.ErrInvalidName),
			errors.Is(err, user.ErrInvalidRole),
			errors.Is(err, user.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.User{
		ID:        userEntity.ID,
		Username:  userEntity.Username,
		Role:      userEntity.Role.String(),
		Name:      userEntity.Name,
		CreatedAt: userEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
