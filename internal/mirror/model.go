package mirror

import (
	"time"

	"courier-rating/internal/entities"
)

// Формат снимков повторяет формат, в котором данные исторически жили в
// локальном хранилище веб-клиента, чтобы старые снимки читались без
// миграции.
type OrderJSON struct {
	ID           string     `json:"id"`
	Address      string     `json:"address"`
	PhoneNumber  string     `json:"phoneNumber"`
	DeliveryTime string     `json:"deliveryTime"`
	Comments     *string    `json:"comments,omitempty"`
	CourierID    *string    `json:"courierId,omitempty"`
	CourierName  *string    `json:"courierName,omitempty"`
	Status       string     `json:"status"`
	Code         *string    `json:"code,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	Rating       *int       `json:"rating,omitempty"`
	IsPositive   *bool      `json:"isPositive,omitempty"`
	Feedback     *string    `json:"feedback,omitempty"`
}

type UserJSON struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func orderToJSON(o entities.Order) OrderJSON {
	return OrderJSON{
		ID:           o.ID,
		Address:      o.Address,
		PhoneNumber:  o.PhoneNumber,
		DeliveryTime: o.DeliveryTime,
		Comments:     o.Comments,
		CourierID:    o.CourierID,
		CourierName:  o.CourierName,
		Status:       o.Status.String(),
		Code:         o.Code,
		CreatedAt:    o.CreatedAt,
		CompletedAt:  o.CompletedAt,
		Rating:       o.Rating,
		IsPositive:   o.IsPositive,
		Feedback:     o.Feedback,
	}
}

func orderFromJSON(o OrderJSON) entities.Order {
	return entities.Order{
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

func userToJSON(u entities.User) UserJSON {
	return UserJSON{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Role:      u.Role.String(),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func userFromJSON(u UserJSON) entities.User {
	return entities.User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Role:      entities.RoleType(u.Role),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
