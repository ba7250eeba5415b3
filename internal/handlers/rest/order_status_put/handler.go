package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"courier-rating/internal/entities"
	"courier-rating/internal/generated/dto"
	"courier-rating/internal/pkg/auth"
	"courier-rating/internal/service/order"
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

	var statusDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	current, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// Курьер двигает только назначенные ему заказы.
	if principal.Role == entities.RoleCourier {
		if current.CourierID == nil || *current.CourierID != principal.UserID {
			w.WriteHeader(http.StatusForbidden)
			return
		}
	}

	orderEntity, err := h.service.AdvanceStatus(r.Context(), id, entities.OrderStatusType(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := dto.Order{
		ID:           orderEntity.ID,
		Address:      orderEntity.Address,
		PhoneNumber:  orderEntity.PhoneNumber,
		DeliveryTime: orderEntity.DeliveryTime,
		Comments:     orderEntity.Comments,
		CourierID:    orderEntity.CourierID,
		CourierName:  orderEntity.CourierName,
		Status:       orderEntity.Status.String(),
		Code:         orderEntity.Code,
		CreatedAt:    orderEntity.CreatedAt,
		CompletedAt:  orderEntity.CompletedAt,
		Rating:       orderEntity.Rating,
		IsPositive:   orderEntity.IsPositive,
		Feedback:     orderEntity.Feedback,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
