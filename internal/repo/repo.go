package repo

import (
	"context"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo/pgdb"
	"gigflow-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	GetUserById(ctx context.Context, id string) (*entity.User, error)
	DoesUserExistById(ctx context.Context, id string) (bool, error)
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error)
	GetGigById(ctx context.Context, id string) (*entity.Gig, error)
	GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.Gig, error)
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error)
	GetBidById(ctx context.Context, id string) (*entity.Bid, error)
	GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.Bid, error)

	// HireBid applies the three-way hire update as one unit: the target bid
	// becomes hired, its pending siblings become rejected and the gig becomes
	// assigned. Every write is guarded on the pre-write status of its target;
	// a failed guard rolls the whole unit back and returns
	// repo_errors.ErrConflict.
	HireBid(ctx context.Context, bidId string, gigId string) error
}

type Repositories struct {
	Diagnostics
	User
	Gig
	Bid
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		User:        pgdb.NewUserRepo(p),
		Gig:         pgdb.NewGigRepo(p),
		Bid:         pgdb.NewBidRepo(p),
	}
}
