package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	orderservice "courier-rating/internal/service/order"
	"courier-rating/pkg/logger"
)

type statusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	HasCode    bool      `json:"has_code"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Handler struct {
	refresher                Refresher
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, refresher Refresher, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		refresher:                refresher,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) - выходим
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("new_status", event.NewStatus),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.changed processing")

	refreshed, err := h.refresher.GetByID(ctx, event.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			// Заказ уже удален: снимку нечего обновлять.
			msgLog.Warn("order.status.changed handler order no longer exists")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to refresh order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("order", refreshed.ID),
		logger.NewField("event_status", event.NewStatus),
		logger.NewField("current_status", refreshed.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("order.status.changed: mirror refreshed")

	sess.MarkMessage(message, "")
	return false
}
