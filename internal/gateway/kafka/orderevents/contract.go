//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
package orderevents

import (
	"courier-rating/pkg/logger"
)

type producer interface {
	Publish(topic, key string, message []byte) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
