package orderevents

import (
	"context"
	"encoding/json"
	"time"

	"courier-rating/internal/entities"
	"courier-rating/pkg/logger"
)

// Gateway публикует события аудита смены статуса. Публикация best-effort:
// отказ брокера логируется и не влияет на исход доменной операции.
type Gateway struct {
	log      handlerLogger
	producer producer
	topic    string
}

func New(log handlerLogger, producer producer, topic string) *Gateway {
	return &Gateway{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) OrderStatusChanged(_ context.Context, orderEntity entities.Order, oldStatus entities.OrderStatusType) {
	event := toEvent(orderEntity, oldStatus, time.Now().UTC())

	payload, err := json.Marshal(event)
	if err != nil {
		EventPublishTotal.WithLabelValues("error").Inc()
		g.log.With(
			logger.NewField("order_id", orderEntity.ID),
			logger.NewField("error", err),
		).Error("marshal status change event")
		return
	}

	// Ключ - идентификатор заказа, чтобы события одного заказа попадали
	// в одну партицию и сохраняли порядок.
	if err := g.producer.Publish(g.topic, orderEntity.ID, payload); err != nil {
		EventPublishTotal.WithLabelValues("error").Inc()
		g.log.With(
			logger.NewField("order_id", orderEntity.ID),
			logger.NewField("old_status", oldStatus.String()),
			logger.NewField("new_status", orderEntity.Status.String()),
			logger.NewField("error", err),
		).Warn("publish status change event")
		return
	}

	EventPublishTotal.WithLabelValues("ok").Inc()
}
