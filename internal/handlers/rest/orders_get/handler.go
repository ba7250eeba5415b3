package orders_get

import (
	"encoding/json"
	"net/http"

	"courier-rating/internal/entities"
	"courier-rating/internal/generated/dto"
	"courier-rating/internal/pkg/auth"
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

	// Админ видит все заказы, курьер только свои.
	var (
		orderEntities []entities.Order
		err           error
	)
	if principal.Role == entities.RoleCourier {
		orderEntities, err = h.service.ListOrdersByCourier(r.Context(), principal.UserID)
	} else {
		orderEntities, err = h.service.ListOrders(r.Context())
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i] = toOrderDTO(orderEntity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
