package rating_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var ratingDTO dto.RatingSubmit
	err := json.NewDecoder(r.Body).Decode(&ratingDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.SubmitRating(r.Context(), ratingDTO.Code, ratingDTO.Rating, ratingDTO.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrInvalidCode):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrNotRatable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	sentiment := "negative"
	if orderEntity.IsPositive != nil && *orderEntity.IsPositive {
		sentiment = "positive"
	}
	RatingSubmittedTotal.WithLabelValues(sentiment).Inc()

	orderDTO := dto.Order{
		ID:           orderEntity.ID,
		Address:      orderEntity.Address,
		PhoneNumber:  orderEntity.PhoneNumber,
		DeliveryTime: orderEntity.DeliveryTime,
		Comments:     orderEntity.Comments,
		CourierID:    orderEntity.CourierID,
		CourierName:  orderEntity.CourierName,
		Status:       orderEntity.Status.String(),
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
