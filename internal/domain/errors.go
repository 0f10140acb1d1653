package domain

import "errors"

// Repository-level errors
var (
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrBidConflict     = errors.New("bid conflicts with a concurrent update")
)

// Business rule errors
var (
	ErrValidation    = errors.New("invalid input")
	ErrAuctionClosed = errors.New("auction has ended")
	ErrBidTooLow     = errors.New("bid amount too low")
)
