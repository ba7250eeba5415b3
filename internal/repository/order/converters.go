package order

import (
	"courier-rating/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:           o.ID,
		Address:      o.Address,
		PhoneNumber:  o.PhoneNumber,
		DeliveryTime: o.DeliveryTime,
		Comments:     o.Comments,
		CourierID:    o.CourierID,
		CourierName:  o.CourierName,
		Status:       entities.OrderStatusType(o.Status),
		Code:         o.Code,
		CreatedAt:    o.CreatedAt,
		CompletedAt:  o.CompletedAt,
		Rating:       o.Rating,
		IsPositive:   o.IsPositive,
		Feedback:     o.Feedback,
	}
}

func FromDomain(orderEntity *entities.Order) *OrderDB {
	if orderEntity == nil {
		return nil
	}

	return &OrderDB{
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

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{
		ID:           orderModify.ID,
		Address:      orderModify.Address,
		PhoneNumber:  orderModify.PhoneNumber,
		DeliveryTime: orderModify.DeliveryTime,
		Comments:     orderModify.Comments,
		CourierID:    orderModify.CourierID,
		CourierName:  orderModify.CourierName,
		Code:         orderModify.Code,
		CompletedAt:  orderModify.CompletedAt,
		Rating:       orderModify.Rating,
		IsPositive:   orderModify.IsPositive,
		Feedback:     orderModify.Feedback,
	}

	if orderModify.Status != nil {
		statusType := orderModify.Status.String()
		orderDB.Status = &statusType
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
