package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"

	"courier-rating/internal/entities"
	"courier-rating/internal/generated/dto"
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
	var userCreateDTO dto.UserCreate
	err := json.NewDecoder(r.Body).Decode(&userCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userModifyEntity := entities.UserModify{
		Username: &userCreateDTO.Username,
		Password: &userCreateDTO.Password,
		Name:     &userCreateDTO.Name,
		Role:     pointer.To(entities.RoleCourier),
	}

	userEntity, err := h.service.CreateUser(r.Context(), userModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidUsername),
			errors.Is(err, user.ErrInvalidPassword),
			errors.Is(err, user.ErrInvalidName),
			errors.Is(err, user.ErrInvalidRole):
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
