package entity

import (
	"github.com/google/uuid"
)

// db model
type Bid struct {
	Id           uuid.UUID `json:"id" db:"id"`
	GigId        uuid.UUID `json:"gigId" db:"gig_id"`
	FreelancerId uuid.UUID `json:"freelancerId" db:"freelancer_id"`
	Price        float64   `json:"price" db:"price"`
	Message      string    `json:"message" db:"message"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    string    `json:"createdAt" db:"created_at"`
	UpdatedAt    string    `json:"updatedAt" db:"updated_at"`
}

// service + repo input model
type CreateBidInput struct {
	GigId        string  // given
	FreelancerId string  // given
	Price        float64 // given
	Message      string  // given
	Status       string  // should be set: "pending"
	// Id UUID sets automatically
	// CreatedAt/UpdatedAt set automatically
}

// controller model
type BidOutputModel struct {
	Id           string  `json:"id"`
	GigId        string  `json:"gigId"`
	FreelancerId string  `json:"freelancerId"`
	Price        float64 `json:"price"`
	Message      string  `json:"message"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// controller model for the hire response: the committed bid plus gig and
// freelancer context. Enrichment fields stay empty when the extra reads fail,
// the hire itself is already committed by then.
type BidView struct {
	Id              string  `json:"id"`
	GigId           string  `json:"gigId"`
	GigTitle        string  `json:"gigTitle,omitempty"`
	FreelancerId    string  `json:"freelancerId"`
	FreelancerName  string  `json:"freelancerName,omitempty"`
	FreelancerEmail string  `json:"freelancerEmail,omitempty"`
	Price           float64 `json:"price"`
	Message         string  `json:"message"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}
