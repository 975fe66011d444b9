package service

import (
	"context"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo"

	"go.uber.org/zap"
)

type Diagnostics interface {
	Ping() error
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error)
	GetGigById(ctx context.Context, gigId string) (*entity.GigOutputModel, error)
	GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.GigOutputModel, error)
}

type Bid interface {
	PlaceBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)

	// HireBid selects the bid as the gig's winner: the bid becomes hired,
	// every other pending bid on the gig becomes rejected and the gig becomes
	// assigned, all of it or none of it. requesterId must be the gig owner.
	HireBid(ctx context.Context, bidId string, requesterId string) (*entity.BidView, error)
}

type Services struct {
	Diagnostics Diagnostics
	Gig         Gig
	Bid         Bid
}

func NewServices(repos *repo.Repositories, log *zap.Logger) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Gig:         NewGigService(repos),
		Bid:         NewBidService(repos, log),
	}
}
