//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_changed_test
package order_status_changed

import (
	"context"

	"courier-rating/internal/entities"
	"courier-rating/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Refresher перечитывает заказ из удаленной базы и обновляет локальный
// снимок. Этим контрактом владеет двухуровневое хранилище заказов.
type Refresher interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
}
