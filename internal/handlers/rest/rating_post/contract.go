//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_post_test
package rating_post

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
	SubmitRating(ctx context.Context, code string, rating int, feedback *string) (*entities.Order, error)
}
