//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"courier-rating/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userEntity entities.User) error
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByRole(ctx context.Context, role entities.RoleType) ([]entities.User, error)
}

// AssignmentChecker сообщает, есть ли у курьера заказы в работе.
type AssignmentChecker interface {
	HasActiveOrders(ctx context.Context, courierID string) (bool, error)
}
