package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

// CloserService finalizes expired auctions: the winner (if any) gets a won
// record, then the artwork is deactivated. Safe to run repeatedly and from
// several instances at once; won creation is a get-or-create keyed by
// artwork.
type CloserService struct {
	artworks domain.ArtworkRepository
	wons     domain.WonRepository
	log      logger.Logger
	now      func() time.Time
}

func NewCloserService(artworks domain.ArtworkRepository, wons domain.WonRepository, log logger.Logger) *CloserService {
	return &CloserService{
		artworks: artworks,
		wons:     wons,
		log:      log,
		now:      time.Now,
	}
}

func (s *CloserService) CloseExpired(ctx context.Context) (*domain.CloseReport, error) {
	expired, err := s.artworks.ListExpired(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list expired artworks: %w", err)
	}

	report := &domain.CloseReport{Status: "ok", Messages: []string{}}
	for _, artwork := range expired {
		message, err := s.closeOne(ctx, artwork)
		if err != nil {
			// One bad record must not block the rest of the sweep.
			s.log.Error("Failed to close auction",
				"artwork_id", artwork.ID, "error", err)
			report.Messages = append(report.Messages,
				fmt.Sprintf("failed to close auction for %q: %v", artwork.Title, err))
			continue
		}
		report.Processed++
		report.Messages = append(report.Messages, message)
	}

	if report.Processed > 0 {
		s.log.Info("Auction sweep finished",
			"processed", report.Processed, "candidates", len(expired))
	}
	return report, nil
}

func (s *CloserService) closeOne(ctx context.Context, artwork *domain.Artwork) (string, error) {
	message := fmt.Sprintf("auction for %q closed with no bids", artwork.Title)

	if artwork.HighestBidder != nil {
		won := &domain.Won{
			ID:        uuid.New(),
			ArtworkID: artwork.ID,
			WinnerID:  *artwork.HighestBidder,
			Amount:    artwork.CurrentBid,
			WonAt:     s.now().UTC(),
		}

		created, err := s.wons.CreateIfAbsent(ctx, won)
		if err != nil {
			return "", fmt.Errorf("record win: %w", err)
		}
		if !created {
			s.log.Debug("Won record already present", "artwork_id", artwork.ID)
		}
		message = fmt.Sprintf("auction for %q closed: won by %s at %s",
			artwork.Title, *artwork.HighestBidder, artwork.CurrentBid.StringFixed(2))
	}

	if err := s.artworks.Deactivate(ctx, artwork.ID); err != nil {
		return "", fmt.Errorf("deactivate artwork: %w", err)
	}

	return message, nil
}
