package service

import "errors"

var (
	ErrGigNotFound  = errors.New("gig not found")
	ErrBidNotFound  = errors.New("bid not found")
	ErrUserNotFound = errors.New("user with given id not found")

	// one class on purpose: once the gig is re-read the system can't tell
	// "not your gig" from "already assigned" apart
	ErrUserHasNoAccessToGig = errors.New("user doesn't have sufficient rights to hire on the gig")

	ErrBidNotPending    = errors.New("bid is no longer pending")
	ErrOwnBidNotAllowed = errors.New("gig owner can't place a bid on their own gig")
	ErrGigNotOpen       = errors.New("gig is not accepting bids")

	// surfaced after every hire attempt lost its commit to a competing hire
	ErrHireConflict = errors.New("hire lost to a concurrent attempt")
)
