package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"courier-rating/internal/entities"
)

const maxCreateAttempts = 5

type User struct {
	repository  Repository
	assignments AssignmentChecker
}

func New(repository Repository, assignments AssignmentChecker) *User {
	return &User{
		repository:  repository,
		assignments: assignments,
	}
}

// Authenticate сверяет учетные данные. Имя пользователя сравнивается без
// учета регистра, пароли хранятся открытым текстом.
func (s *User) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	userEntity, err := s.repository.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if userEntity.Password != password {
		return nil, ErrInvalidCredentials
	}

	return userEntity, nil
}

// ConfirmPassword проверяет повторно введенный пароль действующего
// пользователя перед разрушительными операциями.
func (s *User) ConfirmPassword(ctx context.Context, userID, password string) error {
	if !isValidID(userID) {
		return ErrInvalidUserID
	}

	userEntity, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if userEntity.Password != password {
		return ErrInvalidCredentials
	}

	return nil
}

func (s *User) CreateUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.Username == nil ||
		userModify.Password == nil ||
		userModify.Name == nil ||
		userModify.Role == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidUsername(*userModify.Username) {
		return nil, ErrInvalidUsername
	}
	if !isValidPassword(*userModify.Password) {
		return nil, ErrInvalidPassword
	}
	if !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}
	if !userModify.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	username := strings.TrimSpace(*userModify.Username)

	_, err := s.repository.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	newUser := entities.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  *userModify.Password,
		Role:      *userModify.Role,
		Name:      *userModify.Name,
		CreatedAt: time.Now().UTC(),
	}

	for attempt := 0; ; attempt++ {
		err := s.repository.Create(ctx, newUser)
		if err == nil {
			break
		}
		if errors.Is(err, ErrConflict) && attempt+1 < maxCreateAttempts {
			newUser.ID = uuid.NewString()
			continue
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &newUser, nil
}

func (s *User) UpdateUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil || !isValidID(*userModify.ID) {
		return nil, ErrInvalidUserID
	}

	if userModify.Username == nil &&
		userModify.Password == nil &&
		userModify.Name == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	// Роль фиксируется при создании.
	if userModify.Role != nil {
		return nil, ErrInvalidRole
	}

	if userModify.Username != nil && !isValidUsername(*userModify.Username) {
		return nil, ErrInvalidUsername
	}
	if userModify.Password != nil && !isValidPassword(*userModify.Password) {
		return nil, ErrInvalidPassword
	}
	if userModify.Name != nil && !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}

	if userModify.Username != nil {
		username := strings.TrimSpace(*userModify.Username)
		existing, err := s.repository.GetByUsername(ctx, username)
		if err == nil && existing.ID != *userModify.ID {
			return nil, ErrConflict
		}
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("check username: %w", err)
		}
		userModify.Username = &username
	}

	updated, err := s.repository.Update(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return updated, nil
}

// DeleteUser удаляет пользователя. Курьер с заказами в работе не удаляется.
func (s *User) DeleteUser(ctx context.Context, id string) error {
	if !isValidID(id) {
		return ErrInvalidUserID
	}

	userEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if userEntity.Role == entities.RoleCourier {
		active, err := s.assignments.HasActiveOrders(ctx, id)
		if err != nil {
			return fmt.Errorf("check courier orders: %w", err)
		}
		if active {
			return ErrCourierHasOrders
		}
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (s *User) GetUser(ctx context.Context, id string) (*entities.User, error) {
	if !isValidID(id) {
		return nil, ErrInvalidUserID
	}

	userEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return userEntity, nil
}

func (s *User) ListCouriers(ctx context.Context) ([]entities.User, error) {
	couriers, err := s.repository.GetByRole(ctx, entities.RoleCourier)
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}

	return couriers, nil
}

// EnsureAdmin создает стартового администратора, если его еще нет.
func (s *User) EnsureAdmin(ctx context.Context, username, password, name string) error {
	if !isValidUsername(username) || !isValidPassword(password) {
		return ErrMissingRequiredFields
	}

	_, err := s.repository.GetByUsername(ctx, strings.TrimSpace(username))
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("check admin: %w", err)
	}

	if name == "" {
		name = "Administrator"
	}

	admin := entities.User{
		ID:        uuid.NewString(),
		Username:  strings.TrimSpace(username),
		Password:  password,
		Role:      entities.RoleAdmin,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}
