package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

// maxBidAttempts bounds the CAS retry loop when bids race on one artwork.
const maxBidAttempts = 3

// BidService validates and records bids. The store stays the single source
// of truth: every attempt re-reads the artwork, and the write is a
// compare-and-swap on current_bid so a stale read can never land.
type BidService struct {
	artworks domain.ArtworkRepository
	bids     domain.BidRepository
	log      logger.Logger
	now      func() time.Time
}

func NewBidService(artworks domain.ArtworkRepository, bids domain.BidRepository, log logger.Logger) *BidService {
	return &BidService{
		artworks: artworks,
		bids:     bids,
		log:      log,
		now:      time.Now,
	}
}

func (s *BidService) PlaceBid(ctx context.Context, rawArtworkID string, bidder domain.User, amount decimal.Decimal) (*domain.Bid, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: bid amount must be positive", domain.ErrValidation)
	}

	artworkID, err := domain.ResolveArtworkID(rawArtworkID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxBidAttempts; attempt++ {
		artwork, err := s.artworks.GetByID(ctx, artworkID)
		if err != nil {
			return nil, err
		}

		now := s.now()
		if !artwork.IsActive || artwork.Expired(now) {
			return nil, fmt.Errorf("%w: bidding on %q closed at %s",
				domain.ErrAuctionClosed, artwork.Title, artwork.EndTime.Format(time.RFC3339))
		}

		minimum := artwork.MinimumBid()
		if amount.Cmp(minimum) < 0 {
			return nil, fmt.Errorf("%w: minimum acceptable bid is %s",
				domain.ErrBidTooLow, minimum.StringFixed(2))
		}

		bid := &domain.Bid{
			ID:         uuid.New(),
			ArtworkID:  artworkID,
			BidderID:   bidder.ID,
			BidderName: bidder.Name,
			Amount:     amount,
			Timestamp:  now.UTC(),
		}

		err = s.bids.Record(ctx, bid, artwork.CurrentBid)
		if errors.Is(err, domain.ErrBidConflict) {
			s.log.Warn("Concurrent bid detected, retrying",
				"artwork_id", artworkID, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("record bid on artwork %s: %w", artworkID, err)
		}

		s.log.Info("Bid accepted",
			"artwork_id", artworkID, "bidder", bidder.ID, "amount", amount.StringFixed(2))
		return bid, nil
	}

	return nil, fmt.Errorf("%w: artwork %s", domain.ErrBidConflict, artworkID)
}

// BidsForArtwork resolves the artwork with the same id tolerance as the
// catalog and returns its bids, newest first.
func (s *BidService) BidsForArtwork(ctx context.Context, rawArtworkID string) ([]*domain.Bid, error) {
	artworkID, err := domain.ResolveArtworkID(rawArtworkID)
	if err != nil {
		return nil, err
	}

	if _, err := s.artworks.GetByID(ctx, artworkID); err != nil {
		return nil, err
	}

	bids, err := s.bids.ListForArtwork(ctx, artworkID)
	if err != nil {
		return nil, fmt.Errorf("list bids for artwork %s: %w", artworkID, err)
	}
	return bids, nil
}

func (s *BidService) BidsForUser(ctx context.Context, userID string) ([]*domain.UserBid, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrValidation)
	}

	bids, err := s.bids.ListForBidder(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bids for user %s: %w", userID, err)
	}
	return bids, nil
}
