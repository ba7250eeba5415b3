package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModifyEntity := entities.OrderModify{
		Address:      &orderCreateDTO.Address,
		PhoneNumber:  &orderCreateDTO.PhoneNumber,
		DeliveryTime: &orderCreateDTO.DeliveryTime,
		Comments:     orderCreateDTO.Comments,
		Code:         orderCreateDTO.Code,
	}
	if orderCreateDTO.Status != nil {
		statusType := entities.OrderStatusType(*orderCreateDTO.Status)
		orderModifyEntity.Status = &statusType
	}

	created, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidAddress),
			errors.Is(err, order.ErrInvalidPhone),
			errors.Is(err, order.ErrInvalidDeliveryTime),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderCreateResponse{
		ID: created.ID,
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
