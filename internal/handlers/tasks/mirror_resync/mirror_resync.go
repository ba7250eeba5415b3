package mirror_resync

import (
	"context"
	"fmt"
	"time"

	"courier-rating/internal/entities"
	"courier-rating/pkg/logger"
)

type OrderSource interface {
	GetAll(ctx context.Context) ([]entities.Order, error)
}

type UserSource interface {
	GetAll(ctx context.Context) ([]entities.User, error)
}

type OrderMirror interface {
	ReplaceAll(list []entities.Order) error
}

type UserMirror interface {
	ReplaceAll(list []entities.User) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MirrorResync периодически перечитывает обе коллекции из удаленной базы
// и целиком замещает локальные снимки. Чтения выполняются в одной
// сериализуемой транзакции, чтобы снимок был согласованным.
type MirrorResync struct {
	log         logger.Logger
	txManager   TxManager
	orders      OrderSource
	users       UserSource
	orderMirror OrderMirror
	userMirror  UserMirror
	interval    time.Duration
}

func NewMirrorResync(
	log logger.Logger,
	txManager TxManager,
	orders OrderSource,
	users UserSource,
	orderMirror OrderMirror,
	userMirror UserMirror,
	interval time.Duration,
) *MirrorResync {
	return &MirrorResync{
		log:         log,
		txManager:   txManager,
		orders:      orders,
		users:       users,
		orderMirror: orderMirror,
		userMirror:  userMirror,
		interval:    interval,
	}
}

func (m *MirrorResync) TTL() time.Duration {
	return m.interval
}

func (m *MirrorResync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	var (
		orderList []entities.Order
		userList  []entities.User
	)
	err := m.txManager.Do(ctxWithTimeout, func(ctx context.Context) error {
		var txErr error
		orderList, txErr = m.orders.GetAll(ctx)
		if txErr != nil {
			return fmt.Errorf("fetch orders: %w", txErr)
		}
		userList, txErr = m.users.GetAll(ctx)
		if txErr != nil {
			return fmt.Errorf("fetch users: %w", txErr)
		}
		return nil
	})
	if err != nil {
		// База недоступна: зеркало остается источником правды до
		// следующего запуска.
		m.log.With(
			logger.NewField("error", err),
		).Warn("mirror resync skipped")
		return nil
	}

	if err := m.orderMirror.ReplaceAll(orderList); err != nil {
		return fmt.Errorf("replace orders snapshot: %w", err)
	}
	if err := m.userMirror.ReplaceAll(userList); err != nil {
		return fmt.Errorf("replace users snapshot: %w", err)
	}

	m.log.With(
		logger.NewField("orders", len(orderList)),
		logger.NewField("users", len(userList)),
	).Info("mirror resync")
	return nil
}

func (m *MirrorResync) Info() string {
	return "mirror resync"
}
