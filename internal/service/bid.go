package service

import (
	"context"
	"errors"
	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo"
	"gigflow-api/internal/repo/repo_errors"

	"go.uber.org/zap"
)

type BidService struct {
	bidRepo  repo.Bid
	gigRepo  repo.Gig
	userRepo repo.User
	log      *zap.Logger
}

func NewBidService(repos *repo.Repositories, log *zap.Logger) *BidService {
	return &BidService{
		bidRepo:  repos.Bid,
		gigRepo:  repos.Gig,
		userRepo: repos.User,
		log:      log,
	}
}

func (s *BidService) PlaceBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, input.GigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	if gig.Status != common.Open {
		return nil, ErrGigNotOpen
	}

	if gig.OwnerId.String() == input.FreelancerId {
		return nil, ErrOwnBidNotAllowed
	}

	exists, err := s.userRepo.DoesUserExistById(ctx, input.FreelancerId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	input.Status = common.Pending
	id, err := s.bidRepo.CreateBid(ctx, input)
	if err != nil {
		// the insert is guarded on the gig still being open, a concurrent
		// hire may have assigned it since the snapshot above
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrGigNotOpen
		}

		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}

func (s *BidService) GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	_, err := s.gigRepo.GetGigById(ctx, gigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	bids, err := s.bidRepo.GetGigBids(ctx, gigId, pg)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}
