package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"courier-rating/internal/entities"
	"courier-rating/internal/service/ratingcode"
	"courier-rating/internal/service/user"
)

const (
	// Повторные попытки при коллизии идентификатора заказа.
	maxCreateAttempts = 5

	// Реестр регистрирует каждый выданный код, поэтому подбор кода,
	// не занятого живым заказом, сходится за размер пространства кодов.
	maxMintAttempts = 260
)

type Order struct {
	repository Repository
	couriers   CourierProvider
	codes      CodeRegistry
	events     EventPublisher
}

func New(
	repository Repository,
	couriers CourierProvider,
	codes CodeRegistry,
	events EventPublisher,
) *Order {
	return &Order{
		repository: repository,
		couriers:   couriers,
		codes:      codes,
		events:     events,
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.Address == nil ||
		orderModify.PhoneNumber == nil ||
		orderModify.DeliveryTime == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isPresent(*orderModify.Address) {
		return nil, ErrInvalidAddress
	}
	if !isPresent(*orderModify.PhoneNumber) {
		return nil, ErrInvalidPhone
	}
	if !isPresent(*orderModify.DeliveryTime) {
		return nil, ErrInvalidDeliveryTime
	}

	status := entities.DefaultOrderStatus
	if orderModify.Status != nil {
		if !orderModify.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		status = *orderModify.Status
	}
	status = entities.ReconcileStatus(status, orderModify.Code)

	newOrder := entities.Order{
		ID:           uuid.NewString(),
		Address:      *orderModify.Address,
		PhoneNumber:  *orderModify.PhoneNumber,
		DeliveryTime: *orderModify.DeliveryTime,
		Comments:     orderModify.Comments,
		Status:       status,
		Code:         orderModify.Code,
		CreatedAt:    time.Now().UTC(),
	}

	for attempt := 0; ; attempt++ {
		err := s.repository.Create(ctx, newOrder)
		if err == nil {
			break
		}
		if errors.Is(err, ErrConflict) && attempt+1 < maxCreateAttempts {
			newOrder.ID = uuid.NewString()
			continue
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	return &newOrder, nil
}

func (s *Order) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || !isValidID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}

	if orderModify.Address == nil &&
		orderModify.PhoneNumber == nil &&
		orderModify.DeliveryTime == nil &&
		orderModify.Comments == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if orderModify.Address != nil && !isPresent(*orderModify.Address) {
		return nil, ErrInvalidAddress
	}
	if orderModify.PhoneNumber != nil && !isPresent(*orderModify.PhoneNumber) {
		return nil, ErrInvalidPhone
	}
	if orderModify.DeliveryTime != nil && !isPresent(*orderModify.DeliveryTime) {
		return nil, ErrInvalidDeliveryTime
	}

	current, err := s.repository.GetByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if current.Status.IsTerminal() {
		return nil, ErrOrderImmutable
	}

	// Статусом и кодом управляют назначение, смена статуса и оценка,
	// правка заказа меняет только описательные поля.
	modify := entities.OrderModify{
		ID:           orderModify.ID,
		Address:      orderModify.Address,
		PhoneNumber:  orderModify.PhoneNumber,
		DeliveryTime: orderModify.DeliveryTime,
		Comments:     orderModify.Comments,
	}
	if reconciled := entities.ReconcileStatus(current.Status, current.Code); reconciled != current.Status {
		modify.Status = &reconciled
	}

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	if modify.Status != nil {
		s.events.OrderStatusChanged(ctx, *updated, current.Status)
	}

	return updated, nil
}

func (s *Order) AssignCourier(ctx context.Context, orderID, courierID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if current.Status != entities.OrderPending && current.Status != entities.OrderAssigned {
		return nil, ErrInvalidTransition
	}

	courier, err := s.couriers.GetUser(ctx, courierID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, ErrCourierNotFound
		}
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if courier.Role != entities.RoleCourier {
		return nil, ErrCourierNotFound
	}

	// При переназначении заказ сохраняет уже выданный код.
	code := current.Code
	if code == nil || *code == "" {
		minted, err := s.mintUnusedCode(ctx)
		if err != nil {
			return nil, err
		}
		code = &minted
	}

	status := entities.OrderAssigned
	modify := entities.OrderModify{
		ID:          &orderID,
		CourierID:   &courierID,
		CourierName: &courier.Name,
		Status:      &status,
		Code:        code,
	}

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	if current.Status != status {
		s.events.OrderStatusChanged(ctx, *updated, current.Status)
	}

	return updated, nil
}

func (s *Order) AdvanceStatus(ctx context.Context, orderID string, next entities.OrderStatusType) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !isAllowedTransition(current.Status, next) {
		return nil, ErrInvalidTransition
	}

	modify := entities.OrderModify{
		ID:     &orderID,
		Status: &next,
	}
	if next == entities.OrderCompleted {
		// Ручное завершение курьером: оценка остается незаполненной.
		now := time.Now().UTC()
		modify.CompletedAt = &now
	}

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	if next.IsTerminal() && current.Code != nil {
		s.codes.Invalidate(*current.Code)
	}

	s.events.OrderStatusChanged(ctx, *updated, current.Status)

	return updated, nil
}

func (s *Order) SubmitRating(ctx context.Context, code string, rating int, feedback *string) (*entities.Order, error) {
	if !isValidRating(rating) {
		return nil, ErrInvalidRating
	}

	normalized, ok := ratingcode.Normalize(code)
	if !ok {
		return nil, ErrInvalidCode
	}

	valid, err := s.codes.IsValid(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("validate code: %w", err)
	}
	if !valid {
		return nil, ErrInvalidCode
	}

	target, err := s.repository.GetByActiveCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("get order by code: %w", err)
	}
	if target.Rating != nil {
		return nil, ErrNotRatable
	}

	now := time.Now().UTC()
	status := entities.OrderCompleted
	isPositive := entities.IsPositiveRating(rating)
	modify := entities.OrderModify{
		ID:          &target.ID,
		Status:      &status,
		CompletedAt: &now,
		Rating:      &rating,
		IsPositive:  &isPositive,
		Feedback:    feedback,
	}

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.codes.Invalidate(normalized)
	s.events.OrderStatusChanged(ctx, *updated, target.Status)

	return updated, nil
}

func (s *Order) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (s *Order) ListOrdersByCourier(ctx context.Context, courierID string) ([]entities.Order, error) {
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	orders, err := s.repository.GetByCourierID(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list courier orders: %w", err)
	}

	return orders, nil
}

// GetOrderByCode возвращает заказ для экрана оценки. Код обязан действовать
// и принадлежать заказу, находящемуся у курьера.
func (s *Order) GetOrderByCode(ctx context.Context, code string) (*entities.Order, error) {
	normalized, ok := ratingcode.Normalize(code)
	if !ok {
		return nil, ErrInvalidCode
	}

	valid, err := s.codes.IsValid(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("validate code: %w", err)
	}
	if !valid {
		return nil, ErrInvalidCode
	}

	orderEntity, err := s.repository.GetByActiveCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("get order by code: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) DeleteOrder(ctx context.Context, id string) error {
	if !isValidID(id) {
		return ErrInvalidOrderID
	}

	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	if current.Code != nil {
		s.codes.Invalidate(*current.Code)
	}

	return nil
}

func (s *Order) mintUnusedCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		code, err := s.codes.Issue()
		if err != nil {
			return "", fmt.Errorf("issue rating code: %w", err)
		}

		used, err := s.repository.ExistsByActiveCode(ctx, code)
		if err != nil {
			s.codes.Invalidate(code)
			return "", fmt.Errorf("check rating code: %w", err)
		}
		if !used {
			return code, nil
		}
		// Код числится за живым заказом: запись в реестре оставляем,
		// чтобы генерация его больше не предлагала.
	}

	return "", fmt.Errorf("mint rating code: %w", ratingcode.ErrCodeSpaceExhausted)
}
