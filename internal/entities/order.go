package entities

import "time"

type Order struct {
	ID           string
	Address      string
	PhoneNumber  string
	DeliveryTime string
	Comments     *string
	CourierID    *string
	CourierName  *string
	Status       OrderStatusType
	Code         *string
	CreatedAt    time.Time
	CompletedAt  *time.Time
	Rating       *int
	IsPositive   *bool
	Feedback     *string
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderAssigned   OrderStatusType = "assigned"
	OrderInProgress OrderStatusType = "in-progress"
	OrderCompleted  OrderStatusType = "completed"
	OrderCancelled  OrderStatusType = "cancelled"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderAssigned, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal сообщает, что заказ больше не меняет статус.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// HasCourierActivity — статусы, при которых заказ находится у курьера
// и его код оценки ещё действителен.
func (s OrderStatusType) HasCourierActivity() bool {
	return s == OrderAssigned || s == OrderInProgress
}

// ReconcileStatus возвращает статус, согласованный с наличием кода:
// заказ с кодом не может оставаться в ожидании.
func ReconcileStatus(status OrderStatusType, code *string) OrderStatusType {
	if code != nil && *code != "" && status == OrderPending {
		return OrderAssigned
	}
	return status
}

type OrderModify struct {
	ID           *string
	Address      *string
	PhoneNumber  *string
	DeliveryTime *string
	Comments     *string
	CourierID    *string
	CourierName  *string
	Status       *OrderStatusType
	Code         *string
	CompletedAt  *time.Time
	Rating       *int
	IsPositive   *bool
	Feedback     *string
}

const (
	RatingMin = 1
	RatingMax = 5

	// Оценки от четырёх и выше считаются положительными.
	RatingPositiveThreshold = 4
)

func IsPositiveRating(rating int) bool {
	return rating >= RatingPositiveThreshold
}
