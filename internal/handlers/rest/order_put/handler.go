package order_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"

	"courier-rating/internal/entities"
	"courier-rating/internal/generated/dto"
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
	id := mux.Vars(r)["id"]

	var orderUpdateDTO dto.OrderUpdate
	err := json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		ID:           pointer.To(id),
		Address:      orderUpdateDTO.Address,
		PhoneNumber:  orderUpdateDTO.PhoneNumber,
		DeliveryTime: orderUpdateDTO.DeliveryTime,
		Comments:     orderUpdateDTO.Comments,
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidAddress),
			errors.Is(err, order.ErrInvalidPhone),
			errors.Is(err, order.ErrInvalidDeliveryTime),
			errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderImmutable):
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
