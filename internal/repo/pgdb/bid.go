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

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

// CreateBid inserts through a SELECT guarded on the gig still being open, so
// a bid can't land pending on a gig that a concurrent hire just assigned.
// Zero rows inserted means the gig closed between read and insert;
// repo_errors.ErrConflict is returned and nothing is written.
func (r *BidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	gigUuid, err := uuid.Parse(input.GigId)
	if err != nil {
		return uuid.Nil, err
	}

	freelancerUuid, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, err
	}

	guardedValues := r.SqlBuilder.
		Select().
		Column("?", gigUuid).
		Column("?", freelancerUuid).
		Column("?", input.Price).
		Column("?", input.Message).
		Column("?", input.Status).
		From("gigs").
		Where("id = ?", gigUuid).
		Where("status = ?", common.Open)

	createBidReq, args, _ := r.SqlBuilder.
		Insert("bids").
		Columns("gig_id", "freelancer_id", "price", "message", "status").
		Select(guardedValues).
		Suffix("RETURNING id").
		ToSql()

	var bidId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createBidReq, args...).Scan(&bidId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, repo_errors.ErrConflict
		}

		return uuid.Nil, err
	}

	return bidId, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getBidReq, args, _ := r.SqlBuilder.
		Select("id, gig_id, freelancer_id, price, message, status, created_at, updated_at").
		From("bids").
		Where("id = ?", uuidForm).
		ToSql()

	var bid entity.Bid
	var createdAt, updatedAt time.Time
	row := r.Database.QueryRowContext(ctx, getBidReq, args...)
	err = row.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Price,
		&bid.Message, &bid.Status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	bid.CreatedAt = createdAt.Format(time.RFC3339)
	bid.UpdatedAt = updatedAt.Format(time.RFC3339)

	return &bid, nil
}

func (r *BidRepo) GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	uuidForm, err := uuid.Parse(gigId)
	if err != nil {
		return nil, err
	}

	getGigBidsReq, args, _ := r.SqlBuilder.
		Select("id, gig_id, freelancer_id, price, message, status, created_at, updated_at").
		From("bids").
		Where("gig_id = ?", uuidForm).
		OrderBy("created_at ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getGigBidsReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		var bid entity.Bid
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Price,
			&bid.Message, &bid.Status, &createdAt, &updatedAt); err != nil {
			return bids, err
		}
		bid.CreatedAt = createdAt.Format(time.RFC3339)
		bid.UpdatedAt = updatedAt.Format(time.RFC3339)
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

// HireBid runs the whole hire as one transaction. The gig row is updated
// first: its conditional UPDATE both takes the row lock that serializes
// competing hires on the same gig and acts as the commit-time guard, so two
// hires on sibling bids queue on the gig row instead of deadlocking on each
// other's bid rows. Every later update carries its expected pre-write status
// in the WHERE clause as well; any guard matching zero rows rolls the unit
// back with repo_errors.ErrConflict and the caller decides whether to re-read
// and retry.
func (r *BidRepo) HireBid(ctx context.Context, bidId string, gigId string) error {
	bidUuid, err := uuid.Parse(bidId)
	if err != nil {
		return err
	}

	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return err
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	assignGigSql, args, _ := r.SqlBuilder.
		Update("gigs").
		Set("status", common.Assigned).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", gigUuid).
		Where("status = ?", common.Open).
		RunWith(tx).
		ToSql()

	res, err := tx.Exec(assignGigSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return classifyTxError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}
	if affected == 0 {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return repo_errors.ErrConflict
	}

	hireBidSql, args, _ := r.SqlBuilder.
		Update("bids").
		Set("status", common.Hired).
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", bidUuid).
		Where("status = ?", common.Pending).
		RunWith(tx).
		ToSql()

	res, err = tx.Exec(hireBidSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return classifyTxError(err)
	}

	affected, err = res.RowsAffected()
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}
	if affected == 0 {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return repo_errors.ErrConflict
	}

	// already-rejected siblings stay as they are, zero matched rows is fine here
	rejectOthersSql, args, _ := r.SqlBuilder.
		Update("bids").
		Set("status", common.Rejected).
		Set("updated_at", squirrel.Expr("now()")).
		Where("gig_id = ?", gigUuid).
		Where("id <> ?", bidUuid).
		Where("status = ?", common.Pending).
		RunWith(tx).
		ToSql()

	if _, err := tx.Exec(rejectOthersSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return classifyTxError(err)
	}

	if err := tx.Commit(); err != nil {
		return classifyTxError(err)
	}

	return nil
}

// classifyTxError folds postgres serialization aborts and deadlock victims
// (SQLSTATE 40001, 40P01) into repo_errors.ErrConflict: the aborted
// transaction applied nothing, which is exactly what a lost conditional
// commit means to the caller.
func classifyTxError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "40001" || pqErr.Code == "40P01" {
			return repo_errors.ErrConflict
		}
	}

	return err
}
