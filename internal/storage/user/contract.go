//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"courier-rating/internal/entities"
	"courier-rating/pkg/logger"
)

type RemoteRepository interface {
	Create(ctx context.Context, userEntity entities.User) error
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByRole(ctx context.Context, role entities.RoleType) ([]entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
}

type Mirror interface {
	Upsert(userEntity entities.User) error
	Delete(id string) error
	ReplaceAll(list []entities.User) error

	GetByID(id string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	GetByRole(role entities.RoleType) []entities.User
	GetAll() []entities.User
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
