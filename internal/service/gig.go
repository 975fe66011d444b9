package service

import (
	"context"
	"errors"
	"gigflow-api/internal/common"
	"gigflow-api/internal/entity"
	"gigflow-api/internal/repo"
	"gigflow-api/internal/repo/repo_errors"
)

type GigService struct {
	gigRepo  repo.Gig
	userRepo repo.User
}

func NewGigService(repos *repo.Repositories) *GigService {
	return &GigService{
		gigRepo:  repos.Gig,
		userRepo: repos.User,
	}
}

func (s *GigService) CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error) {
	exists, err := s.userRepo.DoesUserExistById(ctx, input.OwnerId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	input.Status = common.Open
	id, err := s.gigRepo.CreateGig(ctx, input)
	if err != nil {
		return nil, err
	}

	gig, err := s.gigRepo.GetGigById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapGig(gig), nil
}

func (s *GigService) GetGigById(ctx context.Context, gigId string) (*entity.GigOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, gigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	return mapGig(gig), nil
}

func (s *GigService) GetOpenGigs(ctx context.Context, search string, pg *entity.PaginationInput) ([]entity.GigOutputModel, error) {
	gigs, err := s.gigRepo.GetOpenGigs(ctx, search, pg)
	if err != nil {
		return nil, err
	}

	return mapGigs(gigs), nil
}
