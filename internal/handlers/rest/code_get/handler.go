package code_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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

// ServeHTTP отдает клиенту оценки ровно столько, сколько нужно для экрана:
// сам код и адрес доставки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	orderEntity, err := h.service.GetOrderByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidCode),
			errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RatingCheckResponse{
		Address: orderEntity.Address,
	}
	if orderEntity.Code != nil {
		response.Code = *orderEntity.Code
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
