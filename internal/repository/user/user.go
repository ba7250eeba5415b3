package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"courier-rating/internal/entities"
	"courier-rating/internal/repository"
	"courier-rating/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, username, password, role, name, created_at`

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

func (r *Repository) Create(ctx context.Context, userEntity entities.User) error {
	userModel := FromDomain(&userEntity)
	query := `INSERT INTO users (id, username, password, role, name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.querier.Exec(
		ctx,
		query,
		userModel.ID,
		userModel.Username,
		userModel.Password,
		userModel.Role,
		userModel.Name,
		userModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return user.ErrConflict
		}
		return fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	// опциональные поля
	if userModifyModel.Username != nil {
		builder = builder.Set("username", userModifyModel.Username)
	}
	if userModifyModel.Password != nil {
		builder = builder.Set("password", userModifyModel.Password)
	}
	if userModifyModel.Name != nil {
		builder = builder.Set("name", userModifyModel.Name)
	}
	if userModifyModel.Role != nil {
		builder = builder.Set("role", userModifyModel.Role)
	}

	builder = builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Suffix("RETURNING " + userColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userModel UserDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&userModel.ID,
			&userModel.Username,
			&userModel.Password,
			&userModel.Role,
			&userModel.Name,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrConflict
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected user repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	return r.queryOne(ctx, query, id)
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(username) = LOWER($1)`

	return r.queryOne(ctx, query, username)
}

func (r *Repository) GetByRole(ctx context.Context, role entities.RoleType) ([]entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE role = $1
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, role.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getbyrole error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Username,
			&userModel.Password,
			&userModel.Role,
			&userModel.Name,
			&userModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getbyrole error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getbyrole error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}
	defer rows.Close()

	userModels := make([]UserDB, 0, 8)
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Username,
			&userModel.Password,
			&userModel.Role,
			&userModel.Name,
			&userModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
		}
		userModels = append(userModels, userModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository getall error: %w", err)
	}

	return ToDomainList(userModels), nil
}

func (r *Repository) queryOne(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(
			&userModel.ID,
			&userModel.Username,
			&userModel.Password,
			&userModel.Role,
			&userModel.Name,
			&userModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository query error: %w", err)
	}

	return ToDomain(&userModel), nil
}
