package orderevents

import (
	"time"

	"courier-rating/internal/entities"
)

// StatusChangedEvent - запись аудита смены статуса заказа.
type StatusChangedEvent struct {
	OrderID    string    `json:"order_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	HasCode    bool      `json:"has_code"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toEvent(orderEntity entities.Order, oldStatus entities.OrderStatusType, occurredAt time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:    orderEntity.ID,
		OldStatus:  oldStatus.String(),
		NewStatus:  orderEntity.Status.String(),
		HasCode:    orderEntity.Code != nil && *orderEntity.Code != "",
		OccurredAt: occurredAt,
	}
}
