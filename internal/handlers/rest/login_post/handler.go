package login_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"courier-rating/internal/generated/dto"
	"courier-rating/internal/pkg/auth"
	"courier-rating/internal/service/user"
	"courier-rating/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	jwtSecret string
	tokenTTL  time.Duration
}

func New(log handlerLogger, service Service, jwtSecret string, tokenTTL time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var credentialsDTO dto.Credentials
	err := json.NewDecoder(r.Body).Decode(&credentialsDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userEntity, err := h.service.Authenticate(r.Context(), credentialsDTO.Username, credentialsDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	token, err := auth.IssueToken(h.jwtSecret, h.tokenTTL, *userEntity)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("issue token")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.LoginResponse{
		Token: token,
		User: dto.User{
			ID:        userEntity.ID,
			Username:  userEntity.Username,
			Role:      userEntity.Role.String(),
			Name:      userEntity.Name,
			CreatedAt: userEntity.CreatedAt,
		},
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
