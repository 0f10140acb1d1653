package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

const (
	maxTitleLen       = 100
	maxArtistLen      = 50
	maxDescriptionLen = 500
)

// CatalogService owns the artwork listing lifecycle.
type CatalogService struct {
	artworks domain.ArtworkRepository
	log      logger.Logger
	now      func() time.Time
}

func NewCatalogService(artworks domain.ArtworkRepository, log logger.Logger) *CatalogService {
	return &CatalogService{
		artworks: artworks,
		log:      log,
		now:      time.Now,
	}
}

type CreateArtworkInput struct {
	Title        string
	Artist       string
	Description  string
	Category     string
	ImageURL     string
	StartingBid  decimal.Decimal
	MinIncrement decimal.Decimal
	EndTime      time.Time
}

func (s *CatalogService) Create(ctx context.Context, input CreateArtworkInput) (*domain.Artwork, error) {
	category, err := validateArtworkFields(input)
	if err != nil {
		return nil, err
	}
	if !input.EndTime.After(s.now()) {
		return nil, fmt.Errorf("%w: end time must be in the future", domain.ErrValidation)
	}

	artwork := &domain.Artwork{
		ID:           uuid.New(),
		Title:        input.Title,
		Artist:       input.Artist,
		Description:  input.Description,
		Category:     category,
		ImageURL:     input.ImageURL,
		StartingBid:  input.StartingBid,
		CurrentBid:   input.StartingBid,
		MinIncrement: input.MinIncrement,
		EndTime:      input.EndTime,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.artworks.Create(ctx, artwork); err != nil {
		return nil, fmt.Errorf("create artwork: %w", err)
	}

	s.log.Info("Artwork created", "artwork_id", artwork.ID, "title", artwork.Title)
	return artwork, nil
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Artwork, error) {
	artworks, err := s.artworks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	return artworks, nil
}

// Get resolves the raw id across the accepted encodings before loading.
func (s *CatalogService) Get(ctx context.Context, rawID string) (*domain.Artwork, error) {
	id, err := domain.ResolveArtworkID(rawID)
	if err != nil {
		return nil, err
	}
	return s.artworks.GetByID(ctx, id)
}

type UpdateArtworkInput struct {
	Title        *string
	Artist       *string
	Description  *string
	Category     *string
	ImageURL     *string
	StartingBid  *decimal.Decimal
	MinIncrement *decimal.Decimal
	EndTime      *time.Time
}

func (s *CatalogService) Update(ctx context.Context, rawID string, input UpdateArtworkInput) (*domain.Artwork, error) {
	artwork, err := s.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		artwork.Title = *input.Title
	}
	if input.Artist != nil {
		artwork.Artist = *input.Artist
	}
	if input.Description != nil {
		artwork.Description = *input.Description
	}
	if input.Category != nil {
		category, err := domain.ParseCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		artwork.Category = category
	}
	if input.ImageURL != nil {
		artwork.ImageURL = *input.ImageURL
	}
	if input.StartingBid != nil {
		if input.StartingBid.Sign() < 0 {
			return nil, fmt.Errorf("%w: starting bid must not be negative", domain.ErrValidation)
		}
		artwork.StartingBid = *input.StartingBid
	}
	if input.MinIncrement != nil {
		if input.MinIncrement.Sign() <= 0 {
			return nil, fmt.Errorf("%w: minimum increment must be positive", domain.ErrValidation)
		}
		artwork.MinIncrement = *input.MinIncrement
	}
	if input.EndTime != nil {
		artwork.EndTime = *input.EndTime
	}

	if err := checkLengths(artwork.Title, artwork.Artist, artwork.Description); err != nil {
		return nil, err
	}

	if err := s.artworks.Update(ctx, artwork); err != nil {
		return nil, fmt.Errorf("update artwork %s: %w", artwork.ID, err)
	}

	s.log.Info("Artwork updated", "artwork_id", artwork.ID)
	return artwork, nil
}

func (s *CatalogService) Delete(ctx context.Context, rawID string) error {
	id, err := domain.ResolveArtworkID(rawID)
	if err != nil {
		return err
	}

	if err := s.artworks.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Artwork deleted", "artwork_id", id)
	return nil
}

func validateArtworkFields(input CreateArtworkInput) (domain.Category, error) {
	if input.Title == "" || input.Artist == "" || input.Category == "" || input.ImageURL == "" {
		return "", fmt.Errorf("%w: title, artist, category and image_url are required", domain.ErrValidation)
	}
	if err := checkLengths(input.Title, input.Artist, input.Description); err != nil {
		return "", err
	}

	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return "", err
	}

	if input.StartingBid.Sign() < 0 {
		return "", fmt.Errorf("%w: starting bid must not be negative", domain.ErrValidation)
	}
	if input.MinIncrement.Sign() <= 0 {
		return "", fmt.Errorf("%w: minimum increment must be positive", domain.ErrValidation)
	}
	if input.EndTime.IsZero() {
		return "", fmt.Errorf("%w: end time is required", domain.ErrValidation)
	}

	return category, nil
}

func checkLengths(title, artist, description string) error {
	if len(title) > maxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", domain.ErrValidation, maxTitleLen)
	}
	if len(artist) > maxArtistLen {
		return fmt.Errorf("%w: artist exceeds %d characters", domain.ErrValidation, maxArtistLen)
	}
	if len(description) > maxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, maxDescriptionLen)
	}
	return nil
}
