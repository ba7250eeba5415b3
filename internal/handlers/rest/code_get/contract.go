//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=code_get_test
package code_get

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

type Service interface {
	GetOrderByCode(ctx context.Context, code string) (*entities.Order, error)
}
