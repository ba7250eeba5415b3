package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-rating/internal/entities"
	"courier-rating/internal/service/user"
	"courier-rating/internal/storage"
	"courier-rating/pkg/logger"
)

const (
	collection = "users"

	remoteWriteTimeout = 5 * time.Second
)

// Store — двухуровневое хранилище пользователей, зеркальная копия схемы
// хранилища заказов.
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

func (s *Store) Create(ctx context.Context, userEntity entities.User) error {
	if _, err := s.mirror.GetByID(userEntity.ID); err == nil {
		return user.ErrConflict
	}

	if err := s.mirror.Upsert(userEntity); err != nil {
		return fmt.Errorf("mirror create: %w", err)
	}

	s.applyRemote("create", func(ctx context.Context) error {
		return s.remote.Create(ctx, userEntity)
	})

	return nil
}

func (s *Store) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	if userModifyEntity.ID == nil {
		return nil, user.ErrInvalidUserID
	}

	current, err := s.mirror.GetByID(*userModifyEntity.ID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return nil, fmt.Errorf("mirror update: %w", err)
		}
		updated, rerr := s.remote.Update(ctx, userModifyEntity)
		if rerr != nil {
			return nil, rerr
		}
		s.backfill(*updated)
		return updated, nil
	}

	updated := applyModify(*current, userModifyEntity)
	if err := s.mirror.Upsert(updated); err != nil {
		return nil, fmt.Errorf("mirror update: %w", err)
	}

	s.applyRemote("update", func(ctx context.Context) error {
		_, err := s.remote.Update(ctx, userModifyEntity)
		if errors.Is(err, user.ErrUserNotFound) {
			return s.remote.Create(ctx, updated)
		}
		return err
	})

	return &updated, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.mirror.Delete(id); err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("mirror delete: %w", err)
		}
		return s.remote.Delete(ctx, id)
	}

	s.applyRemote("delete", func(ctx context.Context) error {
		err := s.remote.Delete(ctx, id)
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return err
	})

	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*entities.User, error) {
	userEntity, err := s.remote.GetByID(ctx, id)
	if err == nil {
		s.backfill(*userEntity)
		return userEntity, nil
	}

	if !errors.Is(err, user.ErrUserNotFound) {
		s.fallback("get_by_id", err)
	}
	return s.mirror.GetByID(id)
}

func (s *Store) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	userEntity, err := s.remote.GetByUsername(ctx, username)
	if err == nil {
		s.backfill(*userEntity)
		return userEntity, nil
	}

	if !errors.Is(err, user.ErrUserNotFound) {
		s.fallback("get_by_username", err)
	}
	return s.mirror.GetByUsername(username)
}

func (s *Store) GetByRole(ctx context.Context, role entities.RoleType) ([]entities.User, error) {
	users, err := s.remote.GetByRole(ctx, role)
	if err != nil {
		s.fallback("get_by_role", err)
		return s.mirror.GetByRole(role), nil
	}

	for _, u := range users {
		s.backfill(u)
	}
	return users, nil
}

func (s *Store) GetAll(ctx context.Context) ([]entities.User, error) {
	users, err := s.remote.GetAll(ctx)
	if err != nil {
		s.fallback("get_all", err)
		return s.mirror.GetAll(), nil
	}

	if merr := s.mirror.ReplaceAll(users); merr != nil {
		s.log.Warn("users mirror backfill failed", logger.NewField("error", merr))
	}
	return users, nil
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

func (s *Store) backfill(userEntity entities.User) {
	if err := s.mirror.Upsert(userEntity); err != nil {
		s.log.Warn("users mirror backfill failed",
			logger.NewField("user_id", userEntity.ID),
			logger.NewField("error", err),
		)
	}
}

func applyModify(userEntity entities.User, modify entities.UserModify) entities.User {
	if modify.Username != nil {
		userEntity.Username = *modify.Username
	}
	if modify.Password != nil {
		userEntity.Password = *modify.Password
	}
	if modify.Role != nil {
		userEntity.Role = *modify.Role
	}
	if modify.Name != nil {
		userEntity.Name = *modify.Name
	}
	return userEntity
}
