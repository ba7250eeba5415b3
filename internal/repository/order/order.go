package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"courier-rating/internal/entities"
	"courier-rating/internal/repository"
	"courier-rating/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, address, phone_number, delivery_time, comments, courier_id, courier_name,
	status, code, created_at, completed_at, rating, is_positive, feedback`

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) error {
	orderModel := FromDomain(&orderEntity)
	query := `INSERT INTO orders (id, address, phone_number, delivery_time, comments, courier_id,
			courier_name, status, code, created_at, completed_at, rating, is_positive, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.querier.Exec(
		ctx,
		query,
		orderModel.ID,
		orderModel.Address,
		orderModel.PhoneNumber,
		orderModel.DeliveryTime,
		orderModel.Comments,
		orderModel.CourierID,
		orderModel.CourierName,
		orderModel.Status,
		orderModel.Code,
		orderModel.CreatedAt,
		orderModel.CompletedAt,
		orderModel.Rating,
		orderModel.IsPositive,
		orderModel.Feedback,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrConflict
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.Address != nil {
		builder = builder.Set("address", orderModifyModel.Address)
	}
	if orderModifyModel.PhoneNumber != nil {
		builder = builder.Set("phone_number", orderModifyModel.PhoneNumber)
	}
	if orderModifyModel.DeliveryTime != nil {
		builder = builder.Set("delivery_time", orderModifyModel.DeliveryTime)
	}
	if orderModifyModel.Comments != nil {
		builder = builder.Set("comments", orderModifyModel.Comments)
	}
	if orderModifyModel.CourierID != nil {
		builder = builder.Set("courier_id", orderModifyModel.CourierID)
	}
	if orderModifyModel.CourierName != nil {
		builder = builder.Set("courier_name", orderModifyModel.CourierName)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.Code != nil {
		builder = builder.Set("code", orderModifyModel.Code)
	}
	if orderModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", orderModifyModel.CompletedAt)
	}
	if orderModifyModel.Rating != nil {
		builder = builder.Set("rating", orderModifyModel.Rating)
	}
	if orderModifyModel.IsPositive != nil {
		builder = builder.Set("is_positive", orderModifyModel.IsPositive)
	}
	if orderModifyModel.Feedback != nil {
		builder = builder.Set("feedback", orderModifyModel.Feedback)
	}

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM orders WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC`

	return r.queryList(ctx, query)
}

func (r *Repository) GetByCourierID(ctx context.Context, courierID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE courier_id = $1
		ORDER BY created_at DESC`

	return r.queryList(ctx, query, courierID)
}

func (r *Repository) GetByActiveCode(ctx context.Context, code string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE LOWER(code) = LOWER($1) AND status IN ($2, $3)`

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		code,
		entities.OrderAssigned.String(),
		entities.OrderInProgress.String(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyactivecode error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) ExistsByActiveCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM orders
		WHERE LOWER(code) = LOWER($1) AND status IN ($2, $3)
	)`

	var exists bool
	err := r.querier.QueryRow(
		ctx,
		query,
		code,
		entities.OrderAssigned.String(),
		entities.OrderInProgress.String(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository existsbyactivecode error: %w", err)
	}

	return exists, nil
}

func (r *Repository) HasActiveByCourierID(ctx context.Context, courierID string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM orders
		WHERE courier_id = $1 AND status IN ($2, $3)
	)`

	var exists bool
	err := r.querier.QueryRow(
		ctx,
		query,
		courierID,
		entities.OrderAssigned.String(),
		entities.OrderInProgress.String(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository hasactivebycourierid error: %w", err)
	}

	return exists, nil
}

func (r *Repository) queryList(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.Address,
		&orderModel.PhoneNumber,
		&orderModel.DeliveryTime,
		&orderModel.Comments,
		&orderModel.CourierID,
		&orderModel.CourierName,
		&orderModel.Status,
		&orderModel.Code,
		&orderModel.CreatedAt,
		&orderModel.CompletedAt,
		&orderModel.Rating,
		&orderModel.IsPositive,
		&orderModel.Feedback,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
