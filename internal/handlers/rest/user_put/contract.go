//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_put_test
package user_put

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
	UpdateUser(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
}
