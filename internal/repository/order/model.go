package order

import "time"

type OrderDB struct {
	ID           string
	Address      string
	PhoneNumber  string
	DeliveryTime string
	Comments     *string
	CourierID    *string
	CourierName  *string
	Status       string
	Code         *string
	CreatedAt    time.Time
	CompletedAt  *time.Time
	Rating       *int
	IsPositive   *bool
	Feedback     *string
}

type OrderModifyDB struct {
	ID           *string
	Address      *string
	PhoneNumber  *string
	DeliveryTime *string
	Comments     *string
	CourierID    *string
	CourierName  *string
	Status       *string
	Code         *string
	CompletedAt  *time.Time
	Rating       *int
	IsPositive   *bool
	Feedback     *string
}
