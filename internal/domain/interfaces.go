package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository interfaces
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *Artwork) error
	GetByID(ctx context.Context, id uuid.UUID) (*Artwork, error)
	List(ctx context.Context) ([]*Artwork, error)
	Update(ctx context.Context, artwork *Artwork) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListExpired returns active artworks whose end time is at or before now.
	// The filter runs in the store, not in application code.
	ListExpired(ctx context.Context, now time.Time) ([]*Artwork, error)

	// Deactivate flips is_active to false. Already-inactive rows are left
	// untouched.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type BidRepository interface {
	// Record persists the bid and advances the artwork's denormalized
	// current_bid/highest_bidder in one transaction. The artwork row is only
	// written when its current_bid still equals priorBid; otherwise nothing
	// is written and ErrBidConflict is returned.
	Record(ctx context.Context, bid *Bid, priorBid decimal.Decimal) error

	// ListForArtwork returns the artwork's bids, newest first.
	ListForArtwork(ctx context.Context, artworkID uuid.UUID) ([]*Bid, error)

	// ListForBidder returns the user's bids with their artwork context,
	// newest first.
	ListForBidder(ctx context.Context, bidderID string) ([]*UserBid, error)
}

type WonRepository interface {
	// CreateIfAbsent inserts the won record unless one already exists for
	// the artwork. Reports whether a row was created.
	CreateIfAbsent(ctx context.Context, won *Won) (bool, error)

	ListForWinner(ctx context.Context, winnerID string) ([]*WonArtwork, error)
}

// Leader election interface
type LeaderElection interface {
	BecomeLeader(ctx context.Context, instanceID string) (bool, error)
	IsLeader(ctx context.Context, instanceID string) (bool, error)
	ReleaseLeadership(ctx context.Context, instanceID string) error
}
