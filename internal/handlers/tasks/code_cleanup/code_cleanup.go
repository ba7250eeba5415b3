package code_cleanup

import (
	"context"
	"time"

	"courier-rating/pkg/logger"
)

type Registry interface {
	PurgeExpired() int
}

// CodeCleanup выметает просроченные коды из реестра, чтобы карта не росла
// бесконечно на давно закрытых заказах.
type CodeCleanup struct {
	log      logger.Logger
	registry Registry
	interval time.Duration
}

func NewCodeCleanup(log logger.Logger, registry Registry, interval time.Duration) *CodeCleanup {
	return &CodeCleanup{
		log:      log,
		registry: registry,
		interval: interval,
	}
}

func (c *CodeCleanup) TTL() time.Duration {
	return c.interval
}

func (c *CodeCleanup) Do(_ context.Context) error {
	purged := c.registry.PurgeExpired()

	if purged > 0 {
		c.log.With(
			logger.NewField("expired_codes", purged),
		).Info("code cleanup")
	}

	return nil
}

func (c *CodeCleanup) Info() string {
	return "code cleanup"
}
