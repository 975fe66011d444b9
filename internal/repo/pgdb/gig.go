package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo/repo_errors"
	"gigflow-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type GigRepo struct {
	*postgres.Postgres
}

func NewGigRepo(pgdb *postgres.Postgres) *GigRepo {
	return &GigRepo{pgdb}
}

func (r *GigRepo) CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error) {
	ownerUuid, err := uuid.Parse(input.OwnerId)
	if err != nil {
		return uuid.Nil, err
	}

	createGigReq, args, _ := r.SqlBuilder.
		Insert("gigs").
		Columns("title", "description", "budget", "owner_id", "status").
		Values(input.Title, input.Description, input.Budget, ownerUuid, input.Status).
		Suffix("RETURNING id").
		ToSql()

	var gigId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createGigReq, args...).Scan(&gigId); err != nil {
		return uuid.Nil, err
	}

	return gigId, nil
}

func (r *GigRepo) GetGigById(ctx context.Context, id string) (*entity.Gig, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getGigReq, args, _ := r.SqlBuilder.
		Select("id, title, description, budget, owner_id, status, created_at, updated_at").
		From("gigs").
		Where("id = ?", uuidForm).
		ToSql()

	var gig entity.Gig
	var createdAt, updatedAt time.Time
	row := r.Database.QueryRowContext(ctx, getGigReq, args...)
	err = row.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget,
		&gig.OwnerId, &gig.Status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	gig.CreatedAt = createdAt.Format(time.RFC3339)
	gig.UpdatedAt = updatedAt.Format(time.RFC3339)

	return &gig, nil
}

func (r *GigRepo) GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Gig, error) {
	builder := r.SqlBuilder.
		Select("id, title, description, budget, owner_id, status, created_at, updated_at").
		From("gigs").
		Where("status = ?", common.Open)

	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	getOpenGigsReq, args, _ := builder.
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getOpenGigsReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := make([]entity.Gig, 0)
	for rows.Next() {
		var gig entity.Gig
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget,
			&gig.OwnerId, &gig.Status, &createdAt, &updatedAt); err != nil {
			return gigs, err
		}
		gig.CreatedAt = createdAt.Format(time.RFC3339)
		gig.UpdatedAt = updatedAt.Format(time.RFC3339)
		gigs = append(gigs, gig)
	}
	if err = rows.Err(); err != nil {
		return gigs, err
	}

	return gigs, nil
}
