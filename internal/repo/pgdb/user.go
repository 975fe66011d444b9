package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo/repo_errors"
	"gigflow-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getUserReq, args, _ := r.SqlBuilder.
		Select("id, name, email, created_at").
		From("users").
		Where("id = ?", uuidForm).
		ToSql()

	var user entity.User
	var createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getUserReq, args...)
	if err = row.Scan(&user.Id, &user.Name, &user.Email, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	user.CreatedAt = createdAt.Format(time.RFC3339)

	return &user, nil
}

func (r *UserRepo) DoesUserExistById(ctx context.Context, id string) (bool, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return false, err
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select("id").
		From("users").
		Where("id = ?", uuidForm).
		ToSql()

	var uid uuid.UUID
	err = r.Database.QueryRowContext(ctx, sqlReq, args...).Scan(&uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
