//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"courier-rating/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.Order) error
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	GetByCourierID(ctx context.Context, courierID string) ([]entities.Order, error)
	GetByActiveCode(ctx context.Context, code string) (*entities.Order, error)
	ExistsByActiveCode(ctx context.Context, code string) (bool, error)
}

type CodeRegistry interface {
	Issue() (string, error)
	IsValid(ctx context.Context, code string) (bool, error)
	Invalidate(code string)
}

type CourierProvider interface {
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

// EventPublisher отправляет события аудита о смене статуса заказа.
// Доставка best-effort: реализация сама логирует сбои и не влияет
// на исход операции.
type EventPublisher interface {
	OrderStatusChanged(ctx context.Context, orderEntity entities.Order, oldStatus entities.OrderStatusType)
}
