package service

import (
	"context"
	"errors"
	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo/repo_errors"

	"go.uber.org/zap"
)

// hireAttemptLimit caps how often a hire is retried after losing its commit
// to a concurrent hire on the same gig. Each retry re-reads and re-validates,
// so a retry that finds the gig already assigned terminates with the usual
// precondition error instead of burning further attempts.
const hireAttemptLimit = 3

func (s *BidService) HireBid(ctx context.Context, bidId string, requesterId string) (*entity.BidView, error) {
	for attempt := 1; ; attempt++ {
		bid, gig, err := s.validateHire(ctx, bidId, requesterId)
		if err != nil {
			return nil, err
		}

		err = s.bidRepo.HireBid(ctx, bidId, gig.Id.String())
		if err == nil {
			s.log.Info("bid hired",
				zap.String("bidId", bidId),
				zap.String("gigId", gig.Id.String()),
				zap.Int("attempt", attempt))

			return s.buildHiredView(ctx, bid, gig), nil
		}

		if !errors.Is(err, repo_errors.ErrConflict) {
			return nil, err
		}

		if attempt == hireAttemptLimit {
			s.log.Warn("hire attempts exhausted",
				zap.String("bidId", bidId),
				zap.Int("attempts", attempt))

			return nil, ErrHireConflict
		}

		s.log.Info("hire commit conflicted, revalidating",
			zap.String("bidId", bidId),
			zap.Int("attempt", attempt))
	}
}

// validateHire checks the hire preconditions against a fresh snapshot. Both
// ownership and openness must hold before any write is attempted; the two
// failure modes share one error on purpose (see ErrUserHasNoAccessToGig).
func (s *BidService) validateHire(ctx context.Context, bidId string, requesterId string) (*entity.Bid, *entity.Gig, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, ErrBidNotFound
		}

		return nil, nil, err
	}

	gig, err := s.gigRepo.GetGigById(ctx, bid.GigId.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil, ErrUserHasNoAccessToGig
		}

		return nil, nil, err
	}

	if gig.Status != common.Open || gig.OwnerId.String() != requesterId {
		return nil, nil, ErrUserHasNoAccessToGig
	}

	if bid.Status != common.Pending {
		return nil, nil, ErrBidNotPending
	}

	return bid, gig, nil
}

// buildHiredView shapes the committed bid for the caller. The freelancer
// profile read is best-effort: the hire is final, a missing profile only
// leaves the enrichment fields empty.
func (s *BidService) buildHiredView(ctx context.Context, bid *entity.Bid, gig *entity.Gig) *entity.BidView {
	// read-after-write for fresh timestamps, falling back to the snapshot
	if updated, err := s.bidRepo.GetBidById(ctx, bid.Id.String()); err == nil {
		bid = updated
	}

	view := mapBidView(bid)
	view.Status = common.Hired
	view.GigTitle = gig.Title

	freelancer, err := s.userRepo.GetUserById(ctx, bid.FreelancerId.String())
	if err != nil {
		s.log.Warn("hired bid view enrichment failed",
			zap.String("bidId", bid.Id.String()),
			zap.Error(err))

		return view
	}

	view.FreelancerName = freelancer.Name
	view.FreelancerEmail = freelancer.Email

	return view
}
