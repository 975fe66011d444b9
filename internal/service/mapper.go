package service

import (
	"gigflow-api/internal/entity"
)

func mapGig(g *entity.Gig) *entity.GigOutputModel {
	return &entity.GigOutputModel{
		Id:          g.Id.String(),
		Title:       g.Title,
		Description: g.Description,
		Budget:      g.Budget,
		OwnerId:     g.OwnerId.String(),
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func mapGigs(g []entity.Gig) []entity.GigOutputModel {
	s := make([]entity.GigOutputModel, 0)
	for _, gig := range g {
		s = append(s, *mapGig(&gig))
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:           b.Id.String(),
		GigId:        b.GigId.String(),
		FreelancerId: b.FreelancerId.String(),
		Price:        b.Price,
		Message:      b.Message,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func mapBids(b []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, bid := range b {
		s = append(s, *mapBid(&bid))
	}

	return s
}

func mapBidView(b *entity.Bid) *entity.BidView {
	return &entity.BidView{
		Id:           b.Id.String(),
		GigId:        b.GigId.String(),
		FreelancerId: b.FreelancerId.String(),
		Price:        b.Price,
		Message:      b.Message,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
