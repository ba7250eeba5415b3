package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-rating/internal/entities"
	"courier-rating/internal/service/order"
	"courier-rating/internal/storage"
	"courier-rating/pkg/logger"
)

const (
	collection = "orders"

	// Асинхронная запись в удаленную базу не ретраится и не ждет дольше.
	remoteWriteTimeout = 5 * time.Second
)

// Store — двухуровневое хранилище заказов. Чтения идут в удаленную базу
// и при любом ее сбое обслуживаются зеркалом; записи сначала синхронно
// попадают в зеркало, затем асинхронно и best-effort — в удаленную базу.
type Store struct {
	remote RemoteRepository
	mirror Mirror
	log    handlerLogger
}

func New(remote RemoteRepository, mirror Mirror, log handlerLogger) *Store {
	return &Store{
		remote: remote,
		mirror: mirror,
		log:    log,
	}
}

func (s *Store) Create(ctx context.Context, orderEntity entities.Order) error {
	if _, err := s.mirror.GetByID(orderEntity.ID); err == nil {
		return order.ErrConflict
	}

	if err := s.mirror.Upsert(orderEntity); err != nil {
		return fmt.Errorf("mirror create: %w", err)
	}

	s.applyRemote("create", func(ctx context.Context) error {
		return s.remote.Create(ctx, orderEntity)
	})

	return nil
}

func (s *Store) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	if orderModifyEntity.ID == nil {
		return nil, order.ErrInvalidOrderID
	}

	current, err := s.mirror.GetByID(*orderModifyEntity.ID)
	if err != nil {
		if !errors.Is(err, order.ErrOrderNotFound) {
			return nil, fmt.Errorf("mirror update: %w", err)
		}
		// Зеркало отстало от удаленной базы: правим удаленно и догоняем.
		updated, rerr := s.remote.Update(ctx, orderModifyEntity)
		if rerr != nil {
			return nil, rerr
		}
		s.backfill(*updated)
		return updated, nil
	}

	updated := applyModify(*current, orderModifyEntity)
	if err := s.mirror.Upsert(updated); err != nil {
		return nil, fmt.Errorf("mirror update: %w", err)
	}

	s.applyRemote("update", func(ctx context.Context) error {
		_, err := s.remote.Update(ctx, orderModifyEntity)
		if errors.Is(err, order.ErrOrderNotFound) {
			// Удаленная база еще не видела заказ: доставляем целиком.
			return s.remote.Create(ctx, updated)
		}
		return err
	})

	return &updated, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.mirror.Delete(id); err != nil {
		if !errors.Is(err, order.ErrOrderNotFound) {
			return fmt.Errorf("mirror delete: %w", err)
		}
		return s.remote.Delete(ctx, id)
	}

	s.applyRemote("delete", func(ctx context.Context) error {
		err := s.remote.Delete(ctx, id)
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil
		}
		return err
	})

	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	orderEntity, err := s.remote.GetByID(ctx, id)
	if err == nil {
		s.backfill(*orderEntity)
		return orderEntity, nil
	}

	// Удаленный промах не повод терять локально созданный заказ,
	// еще не доехавший до базы.
	if !errors.Is(err, order.ErrOrderNotFound) {
		s.fallback("get_by_id", err)
	}
	return s.mirror.GetByID(id)
}

func (s *Store) GetAll(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.remote.GetAll(ctx)
	if err != nil {
		s.fallback("get_all", err)
		return s.mirror.GetAll(), nil
	}

	if merr := s.mirror.ReplaceAll(orders); merr != nil {
		s.log.Warn("orders mirror backfill failed", logger.NewField("error", merr))
	}
	return orders, nil
}

func (s *Store) GetByCourierID(ctx context.Context, courierID string) ([]entities.Order, error) {
	orders, err := s.remote.GetByCourierID(ctx, courierID)
	if err != nil {
		s.fallback("get_by_courier", err)
		return s.mirror.GetByCourierID(courierID), nil
	}

	for _, o := range orders {
		s.backfill(o)
	}
	return orders, nil
}

func (s *Store) GetByActiveCode(ctx context.Context, code string) (*entities.Order, error) {
	orderEntity, err := s.remote.GetByActiveCode(ctx, code)
	if err == nil {
		s.backfill(*orderEntity)
		return orderEntity, nil
	}

	if !errors.Is(err, order.ErrOrderNotFound) {
		s.fallback("get_by_code", err)
	}
	return s.mirror.GetByActiveCode(code)
}

func (s *Store) ExistsByActiveCode(ctx context.Context, code string) (bool, error) {
	exists, err := s.remote.ExistsByActiveCode(ctx, code)
	if err != nil {
		s.fallback("exists_by_code", err)
		return s.mirror.ExistsByActiveCode(code), nil
	}
	if !exists {
		// локальный заказ мог еще не доехать до базы
		return s.mirror.ExistsByActiveCode(code), nil
	}
	return true, nil
}

// HasActiveOrders реализует проверку занятости курьера для пользовательского
// сервиса.
func (s *Store) HasActiveOrders(ctx context.Context, courierID string) (bool, error) {
	active, err := s.remote.HasActiveByCourierID(ctx, courierID)
	if err != nil {
		s.fallback("has_active", err)
		return s.mirror.HasActiveByCourierID(courierID), nil
	}
	if !active {
		return s.mirror.HasActiveByCourierID(courierID), nil
	}
	return true, nil
}

func (s *Store) applyRemote(op string, fn func(context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			storage.RemoteWriteFailureTotal.WithLabelValues(collection, op).Inc()
			s.log.Warn("remote write failed",
				logger.NewField("collection", collection),
				logger.NewField("op", op),
				logger.NewField("error", err),
			)
		}
	}()
}

func (s *Store) fallback(op string, err error) {
	storage.MirrorFallbackTotal.WithLabelValues(collection, op).Inc()
	s.log.Warn("remote read failed, serving from mirror",
		logger.NewField("collection", collection),
		logger.NewField("op", op),
		logger.NewField("error", err),
	)
}

func (s *Store) backfill(orderEntity entities.Order) {
	if err := s.mirror.Upsert(orderEntity); err != nil {
		s.log.Warn("orders mirror backfill failed",
			logger.NewField("order_id", orderEntity.ID),
			logger.NewField("error", err),
		)
	}
}

func applyModify(orderEntity entities.Order, modify entities.OrderModify) entities.Order {
	if modify.Address != nil {
		orderEntity.Address = *modify.Address
	}
	if modify.PhoneNumber != nil {
		orderEntity.PhoneNumber = *modify.PhoneNumber
	}
	if modify.DeliveryTime != nil {
		orderEntity.DeliveryTime = *modify.DeliveryTime
	}
	if modify.Comments != nil {
		orderEntity.Comments = modify.Comments
	}
	if modify.CourierID != nil {
		orderEntity.CourierID = modify.CourierID
	}
	if modify.CourierName != nil {
		orderEntity.CourierName = modify.CourierName
	}
	if modify.Status != nil {
		orderEntity.Status = *modify.Status
	}
	if modify.Code != nil {
		orderEntity.Code = modify.Code
	}
	if modify.CompletedAt != nil {
		orderEntity.CompletedAt = modify.CompletedAt
	}
	if modify.Rating != nil {
		orderEntity.Rating = modify.Rating
	}
	if modify.IsPositive != nil {
		orderEntity.IsPositive = modify.IsPositive
	}
	if modify.Feedback != nil {
		orderEntity.Feedback = modify.Feedback
	}
	return orderEntity
}
