package services

import (
	"context"
	"fmt"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

// WinService exposes a user's won artworks.
type WinService struct {
	wons domain.WonRepository
	log  logger.Logger
}

func NewWinService(wons domain.WonRepository, log logger.Logger) *WinService {
	return &WinService{
		wons: wons,
		log:  log,
	}
}

func (s *WinService) WinsForUser(ctx context.Context, userID string) ([]*domain.WonArtwork, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrValidation)
	}

	wins, err := s.wons.ListForWinner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wins for user %s: %w", userID, err)
	}
	return wins, nil
}
