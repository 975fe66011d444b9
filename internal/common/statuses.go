package common

// gig statuses
const (
	Open     = "open"
	Assigned = "assigned"
)

// bid statuses
const (
	Pending  = "pending"
	Hired    = "hired"
	Rejected = "rejected"
)
