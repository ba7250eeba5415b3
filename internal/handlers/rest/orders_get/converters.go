package orders_get

import (
	"courier-rating/internal/entities"
	"courier-rating/internal/generated/dto"
)

func toOrderDTO(orderEntity entities.Order) dto.Order {
	return dto.Order{
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
}
