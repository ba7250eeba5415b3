//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"courier-rating/internal/entities"
	"courier-rating/pkg/logger"
)

type RemoteRepository interface {
	Create(ctx context.Context, orderEntity entities.Order) error
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	GetByCourierID(ctx context.Context, courierID string) ([]entities.Order, error)
	GetByActiveCode(ctx context.Context, code string) (*entities.Order, error)
	ExistsByActiveCode(ctx context.Context, code string) (bool, error)
	HasActiveByCourierID(ctx context.Context, courierID string) (bool, error)
}

type Mirror interface {
	Upsert(orderEntity entities.Order) error
	Delete(id string) error
	ReplaceAll(list []entities.Order) error

	GetByID(id string) (*entities.Order, error)
	GetAll() []entities.Order
	GetByCourierID(courierID string) []entities.Order
	GetByActiveCode(code string) (*entities.Order, error)
	ExistsByActiveCode(code string) bool
	HasActiveByCourierID(courierID string) bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
