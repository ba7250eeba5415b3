//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_delete_test
package user_delete

import (
	"context"

	"courier-rating/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteUser(ctx context.Context, id string) error
}

// PasswordConfirmer сверяет пароль действующего администратора перед
// необратимым удалением.
type PasswordConfirmer interface {
	ConfirmPassword(ctx context.Context, userID, password string) error
}
